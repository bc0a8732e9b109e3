package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

type stubStudentLookup struct {
	student *models.Student
	err     error
}

func (s stubStudentLookup) GetByAdmissionNumber(context.Context, string) (*models.Student, error) {
	return s.student, s.err
}

type stubEventLookup struct {
	event *models.Event
	err   error
}

func (s stubEventLookup) GetByID(context.Context, int64) (*models.Event, error) {
	return s.event, s.err
}

func registrationRequest() *dto.RegisterParticipationRequest {
	return &dto.RegisterParticipationRequest{StudentAdmissionNumber: "CS2021001", EventID: 7}
}

func TestRegisterUnknownEventReadsAsNotOpen(t *testing.T) {
	svc := &participationServiceImpl{
		studentRepo: stubStudentLookup{student: &models.Student{AdmissionNumber: "CS2021001"}},
		eventRepo:   stubEventLookup{err: apperrors.ErrEventNotFound},
		now:         time.Now,
	}

	_, err := svc.Register(context.Background(), registrationRequest())
	if !errors.Is(err, apperrors.ErrEventNotOpen) {
		t.Errorf("expected ErrEventNotOpen for an unknown event id, got %v", err)
	}
}

func TestRegisterClosedWindow(t *testing.T) {
	now := time.Now()
	svc := &participationServiceImpl{
		studentRepo: stubStudentLookup{student: &models.Student{AdmissionNumber: "CS2021001"}},
		eventRepo: stubEventLookup{event: &models.Event{
			ID:              7,
			Status:          models.EventUpcoming,
			RegistrationEnd: now.Add(-time.Hour),
		}},
		now: func() time.Time { return now },
	}

	_, err := svc.Register(context.Background(), registrationRequest())
	if !errors.Is(err, apperrors.ErrEventNotOpen) {
		t.Errorf("expected ErrEventNotOpen for a closed window, got %v", err)
	}
}

func TestRegisterCompletedEvent(t *testing.T) {
	now := time.Now()
	svc := &participationServiceImpl{
		studentRepo: stubStudentLookup{student: &models.Student{AdmissionNumber: "CS2021001"}},
		eventRepo: stubEventLookup{event: &models.Event{
			ID:              7,
			Status:          models.EventCompleted,
			RegistrationEnd: now.Add(time.Hour),
		}},
		now: func() time.Time { return now },
	}

	_, err := svc.Register(context.Background(), registrationRequest())
	if !errors.Is(err, apperrors.ErrEventNotOpen) {
		t.Errorf("expected ErrEventNotOpen for a completed event, got %v", err)
	}
}

func TestRegisterUnknownStudent(t *testing.T) {
	svc := &participationServiceImpl{
		studentRepo: stubStudentLookup{err: apperrors.ErrStudentNotFound},
		eventRepo:   stubEventLookup{},
		now:         time.Now,
	}

	_, err := svc.Register(context.Background(), registrationRequest())
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestParticipationUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewParticipationService(nil, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), "CS2021001", 1, &dto.UpdateParticipationRequest{Status: "PENDING"})
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}
