package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

func validCreateEventRequest() *dto.CreateEventRequest {
	now := time.Now()
	return &dto.CreateEventRequest{
		Name:              "Campus Drive 2026",
		OrganizingCompany: "TechNova Solutions",
		JobRole:           "Software Engineer",
		RegistrationStart: now,
		RegistrationEnd:   now.Add(7 * 24 * time.Hour),
	}
}

func TestCreateEventRejectsUnknownStatus(t *testing.T) {
	svc := NewEventService(nil)

	req := validCreateEventRequest()
	req.Status = "CANCELLED"

	_, err := svc.CreateEvent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateEventRejectsInvertedWindow(t *testing.T) {
	svc := NewEventService(nil)

	req := validCreateEventRequest()
	req.RegistrationEnd = req.RegistrationStart.Add(-time.Hour)

	_, err := svc.CreateEvent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrInvalidEventWindow) {
		t.Errorf("expected ErrInvalidEventWindow, got %v", err)
	}
}

func TestCreateEventRejectsZeroLengthWindow(t *testing.T) {
	svc := NewEventService(nil)

	req := validCreateEventRequest()
	req.RegistrationEnd = req.RegistrationStart

	_, err := svc.CreateEvent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrInvalidEventWindow) {
		t.Errorf("expected ErrInvalidEventWindow, got %v", err)
	}
}

func TestUpdateEventRejectsUnknownStatus(t *testing.T) {
	svc := NewEventService(nil)

	now := time.Now()
	req := &dto.UpdateEventRequest{
		Name:              "Campus Drive 2026",
		OrganizingCompany: "TechNova Solutions",
		Status:            "DONE",
		RegistrationStart: now,
		RegistrationEnd:   now.Add(time.Hour),
	}

	_, err := svc.UpdateEvent(context.Background(), 1, req)
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestGetEventsByStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewEventService(nil)

	_, err := svc.GetEventsByStatus(context.Background(), "archived")
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSearchEventsByCompanyRequiresName(t *testing.T) {
	svc := NewEventService(nil)

	_, err := svc.SearchEventsByCompany(context.Background(), "")
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
}
