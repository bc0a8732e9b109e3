package models

import "time"

// EventStatus is the closed set of lifecycle states for a placement event.
type EventStatus string

const (
	EventUpcoming  EventStatus = "UPCOMING"
	EventOngoing   EventStatus = "ONGOING"
	EventCompleted EventStatus = "COMPLETED"
)

// IsValid reports whether the status is a recognized event state.
func (s EventStatus) IsValid() bool {
	switch s {
	case EventUpcoming, EventOngoing, EventCompleted:
		return true
	}
	return false
}

// eventTransitions lists the allowed forward moves between event states.
var eventTransitions = map[EventStatus][]EventStatus{
	EventUpcoming:  {EventOngoing, EventCompleted},
	EventOngoing:   {EventCompleted},
	EventCompleted: {},
}

// CanTransitionTo reports whether the event may move from its current state
// to the target state. Staying in the same state is always allowed.
func (s EventStatus) CanTransitionTo(target EventStatus) bool {
	if s == target {
		return true
	}
	for _, next := range eventTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Event defines the event model based on the 'events' table.
type Event struct {
	ID                  int64       `json:"eventId" db:"event_id"`
	Name                string      `json:"eventName" db:"event_name"`
	OrganizingCompany   string      `json:"organizingCompany" db:"organizing_company"`
	ExpectedCGPA        float64     `json:"expectedCgpa" db:"expected_cgpa"`
	JobRole             string      `json:"jobRole" db:"job_role"`
	RegistrationStart   time.Time   `json:"registrationStart" db:"registration_start"`
	RegistrationEnd     time.Time   `json:"registrationEnd" db:"registration_end"`
	Mode                string      `json:"eventMode" db:"event_mode"`
	ExpectedPackage     string      `json:"expectedPackage" db:"expected_package"`
	Description         string      `json:"eventDescription" db:"event_description"`
	EligibleDepartments string      `json:"eligibleDepartments" db:"eligible_departments"`
	Status              EventStatus `json:"status" db:"status"`
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
}

// OpenForRegistration reports whether students may still register: the event
// must be upcoming or ongoing and its registration window must not be closed.
func (e *Event) OpenForRegistration(now time.Time) bool {
	if e.Status != EventUpcoming && e.Status != EventOngoing {
		return false
	}
	return e.RegistrationEnd.After(now)
}
