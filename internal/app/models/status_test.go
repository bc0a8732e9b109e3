package models

import (
	"testing"
	"time"
)

func TestEventStatusIsValid(t *testing.T) {
	for _, s := range []EventStatus{EventUpcoming, EventOngoing, EventCompleted} {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	for _, s := range []EventStatus{"", "upcoming", "CANCELLED", "DONE"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestEventStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to EventStatus
		want     bool
	}{
		{EventUpcoming, EventOngoing, true},
		{EventUpcoming, EventCompleted, true},
		{EventOngoing, EventCompleted, true},
		{EventOngoing, EventUpcoming, false},
		{EventCompleted, EventUpcoming, false},
		{EventCompleted, EventOngoing, false},
		{EventCompleted, EventCompleted, true},
		{EventUpcoming, EventUpcoming, true},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParticipationStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ParticipationStatus
		want     bool
	}{
		{ParticipationRegistered, ParticipationShortlisted, true},
		{ParticipationRegistered, ParticipationRejected, true},
		{ParticipationRegistered, ParticipationWithdrawn, true},
		{ParticipationRegistered, ParticipationSelected, false},
		{ParticipationShortlisted, ParticipationSelected, true},
		{ParticipationShortlisted, ParticipationRejected, true},
		{ParticipationSelected, ParticipationRegistered, false},
		{ParticipationRejected, ParticipationShortlisted, false},
		{ParticipationWithdrawn, ParticipationRegistered, false},
		{ParticipationSelected, ParticipationSelected, true},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParticipationStatusIsValid(t *testing.T) {
	if ParticipationStatus("PENDING").IsValid() {
		t.Error("expected PENDING to be invalid")
	}
	if !ParticipationWithdrawn.IsValid() {
		t.Error("expected WITHDRAWN to be valid")
	}
}

func TestMessageStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to MessageStatus
		want     bool
	}{
		{MessageNew, MessageRead, true},
		{MessageNew, MessageResolved, true},
		{MessageRead, MessageResolved, true},
		{MessageRead, MessageNew, false},
		{MessageResolved, MessageNew, false},
		{MessageResolved, MessageRead, false},
		{MessageResolved, MessageResolved, true},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestEventOpenForRegistration(t *testing.T) {
	now := time.Now()

	open := &Event{Status: EventUpcoming, RegistrationEnd: now.Add(24 * time.Hour)}
	if !open.OpenForRegistration(now) {
		t.Error("expected upcoming event with open window to accept registrations")
	}

	ongoing := &Event{Status: EventOngoing, RegistrationEnd: now.Add(time.Hour)}
	if !ongoing.OpenForRegistration(now) {
		t.Error("expected ongoing event with open window to accept registrations")
	}

	completed := &Event{Status: EventCompleted, RegistrationEnd: now.Add(24 * time.Hour)}
	if completed.OpenForRegistration(now) {
		t.Error("expected completed event to reject registrations")
	}

	closedWindow := &Event{Status: EventUpcoming, RegistrationEnd: now.Add(-time.Minute)}
	if closedWindow.OpenForRegistration(now) {
		t.Error("expected event with expired window to reject registrations")
	}
}

func TestStudentFullName(t *testing.T) {
	s := &Student{FirstName: "Asha", LastName: "Patel"}
	if got := s.FullName(); got != "Asha Patel" {
		t.Errorf("FullName() = %q, want %q", got, "Asha Patel")
	}

	single := &Student{FirstName: "Asha"}
	if got := single.FullName(); got != "Asha" {
		t.Errorf("FullName() = %q, want %q", got, "Asha")
	}
}
