package models

import "time"

// ParticipationStatus is the closed set of lifecycle states for a student's
// application to an event.
type ParticipationStatus string

const (
	ParticipationRegistered  ParticipationStatus = "REGISTERED"
	ParticipationShortlisted ParticipationStatus = "SHORTLISTED"
	ParticipationSelected    ParticipationStatus = "SELECTED"
	ParticipationRejected    ParticipationStatus = "REJECTED"
	ParticipationWithdrawn   ParticipationStatus = "WITHDRAWN"
)

// IsValid reports whether the status is a recognized participation state.
func (s ParticipationStatus) IsValid() bool {
	switch s {
	case ParticipationRegistered, ParticipationShortlisted, ParticipationSelected,
		ParticipationRejected, ParticipationWithdrawn:
		return true
	}
	return false
}

// participationTransitions lists the allowed moves between application states.
// SELECTED, REJECTED and WITHDRAWN are terminal.
var participationTransitions = map[ParticipationStatus][]ParticipationStatus{
	ParticipationRegistered:  {ParticipationShortlisted, ParticipationRejected, ParticipationWithdrawn},
	ParticipationShortlisted: {ParticipationSelected, ParticipationRejected, ParticipationWithdrawn},
	ParticipationSelected:    {},
	ParticipationRejected:    {},
	ParticipationWithdrawn:   {},
}

// CanTransitionTo reports whether the application may move from its current
// state to the target state. Staying in the same state is always allowed.
func (s ParticipationStatus) CanTransitionTo(target ParticipationStatus) bool {
	if s == target {
		return true
	}
	for _, next := range participationTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Participation defines a row of the 'participation' join table linking one
// student to one event. The pair (admission number, event id) is the
// composite primary key.
type Participation struct {
	StudentAdmissionNumber string              `json:"studentAdmissionNumber" db:"student_admission_number"`
	EventID                int64               `json:"eventId" db:"event_id"`
	Status                 ParticipationStatus `json:"participationStatus" db:"participation_status"`
	Description            string              `json:"eventDescription" db:"event_description"`
	CreatedAt              time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time           `json:"updatedAt" db:"updated_at"`
}
