package dto

import "time"

// CreateEventRequest is the payload for creating a placement event.
// Status defaults to UPCOMING when omitted.
type CreateEventRequest struct {
	Name                string    `json:"eventName" binding:"required"`
	OrganizingCompany   string    `json:"organizingCompany" binding:"required"`
	ExpectedCGPA        float64   `json:"expectedCgpa"`
	JobRole             string    `json:"jobRole"`
	RegistrationStart   time.Time `json:"registrationStart" binding:"required"`
	RegistrationEnd     time.Time `json:"registrationEnd" binding:"required"`
	Mode                string    `json:"eventMode"`
	ExpectedPackage     string    `json:"expectedPackage"`
	Description         string    `json:"eventDescription"`
	EligibleDepartments string    `json:"eligibleDepartments"`
	Status              string    `json:"status"`
}

// UpdateEventRequest is the full-row overwrite payload for an event.
type UpdateEventRequest struct {
	Name                string    `json:"eventName" binding:"required"`
	OrganizingCompany   string    `json:"organizingCompany" binding:"required"`
	ExpectedCGPA        float64   `json:"expectedCgpa"`
	JobRole             string    `json:"jobRole"`
	RegistrationStart   time.Time `json:"registrationStart" binding:"required"`
	RegistrationEnd     time.Time `json:"registrationEnd" binding:"required"`
	Mode                string    `json:"eventMode"`
	ExpectedPackage     string    `json:"expectedPackage"`
	Description         string    `json:"eventDescription"`
	EligibleDepartments string    `json:"eligibleDepartments"`
	Status              string    `json:"status" binding:"required"`
}
