package dto

import "time"

// RegisterParticipationRequest registers a student for an event.
type RegisterParticipationRequest struct {
	StudentAdmissionNumber string `json:"studentAdmissionNumber" binding:"required"`
	EventID                int64  `json:"eventId" binding:"required"`
}

// UpdateParticipationRequest overwrites the status and description of an
// application. The status must be a recognized value and the move must be
// allowed by the transition table.
type UpdateParticipationRequest struct {
	Status      string `json:"status" binding:"required"`
	Description string `json:"eventDescription"`
}

// StudentParticipation is a participation row joined with event display fields.
type StudentParticipation struct {
	StudentAdmissionNumber string    `json:"studentAdmissionNumber"`
	EventID                int64     `json:"eventId"`
	Status                 string    `json:"participationStatus"`
	Description            string    `json:"eventDescription"`
	CreatedAt              time.Time `json:"createdAt"`
	EventName              string    `json:"eventName"`
	OrganizingCompany      string    `json:"organizingCompany"`
	JobRole                string    `json:"jobRole"`
	ExpectedPackage        string    `json:"expectedPackage"`
	EventStatus            string    `json:"eventStatus"`
}

// EventParticipation is a participation row joined with student display fields.
type EventParticipation struct {
	StudentAdmissionNumber string    `json:"studentAdmissionNumber"`
	EventID                int64     `json:"eventId"`
	Status                 string    `json:"participationStatus"`
	Description            string    `json:"eventDescription"`
	CreatedAt              time.Time `json:"createdAt"`
	StudentFirstName       string    `json:"studentFirstName"`
	StudentLastName        string    `json:"studentLastName"`
	Department             string    `json:"department"`
	CGPA                   float64   `json:"cgpa"`
	Batch                  string    `json:"batch"`
}

// FullParticipation is a participation row joined with both student and
// event display fields, used by the full listing and the dashboard.
type FullParticipation struct {
	StudentAdmissionNumber string    `json:"studentAdmissionNumber"`
	EventID                int64     `json:"eventId"`
	Status                 string    `json:"participationStatus"`
	Description            string    `json:"eventDescription"`
	CreatedAt              time.Time `json:"createdAt"`
	StudentFirstName       string    `json:"studentFirstName"`
	StudentLastName        string    `json:"studentLastName"`
	Department             string    `json:"department"`
	CGPA                   float64   `json:"cgpa"`
	Batch                  string    `json:"batch"`
	EventName              string    `json:"eventName"`
	OrganizingCompany      string    `json:"organizingCompany"`
	JobRole                string    `json:"jobRole"`
	ExpectedPackage        string    `json:"expectedPackage"`
}
