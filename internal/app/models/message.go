package models

import "time"

// MessageStatus is the closed set of review states for a contact message.
type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageRead     MessageStatus = "read"
	MessageResolved MessageStatus = "resolved"
)

// IsValid reports whether the status is a recognized message state.
func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageNew, MessageRead, MessageResolved:
		return true
	}
	return false
}

// messageTransitions lists the allowed moves between review states.
var messageTransitions = map[MessageStatus][]MessageStatus{
	MessageNew:      {MessageRead, MessageResolved},
	MessageRead:     {MessageResolved},
	MessageResolved: {},
}

// CanTransitionTo reports whether the message may move from its current state
// to the target state. Staying in the same state is always allowed.
func (s MessageStatus) CanTransitionTo(target MessageStatus) bool {
	if s == target {
		return true
	}
	for _, next := range messageTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Message defines a contact-form submission based on the 'messages' table.
type Message struct {
	ID          int64         `json:"id" db:"id"`
	SenderName  string        `json:"senderName" db:"sender_name"`
	SenderEmail string        `json:"senderEmail" db:"sender_email"`
	Subject     string        `json:"subject" db:"subject"`
	Body        string        `json:"message" db:"message"`
	Status      MessageStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
}
