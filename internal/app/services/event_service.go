package services

import (
	"context"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

// EventService handles placement event lifecycle and queries
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	GetEventsByStatus(ctx context.Context, status string) ([]*models.Event, error)
	SearchEventsByCompany(ctx context.Context, company string) ([]*models.Event, error)
	GetEventsByCompany(ctx context.Context, companyName string) ([]*models.Event, error)
	GetUpcomingEvents(ctx context.Context) ([]*models.Event, error)
	GetOngoingEvents(ctx context.Context) ([]*models.Event, error)
	GetPastEvents(ctx context.Context) ([]*models.Event, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repositories.EventRepository) EventService {
	return &eventServiceImpl{eventRepo: eventRepo}
}

// CreateEvent validates and inserts a placement event. The status defaults
// to UPCOMING and the registration window must be ordered.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	status := models.EventStatus(req.Status)
	if req.Status == "" {
		status = models.EventUpcoming
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if !req.RegistrationEnd.After(req.RegistrationStart) {
		return nil, apperrors.ErrInvalidEventWindow
	}

	event := &models.Event{
		Name:                req.Name,
		OrganizingCompany:   req.OrganizingCompany,
		ExpectedCGPA:        req.ExpectedCGPA,
		JobRole:             req.JobRole,
		RegistrationStart:   req.RegistrationStart,
		RegistrationEnd:     req.RegistrationEnd,
		Mode:                req.Mode,
		ExpectedPackage:     req.ExpectedPackage,
		Description:         req.Description,
		EligibleDepartments: req.EligibleDepartments,
		Status:              status,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetAllEvents retrieves all events, newest first.
func (s *eventServiceImpl) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx)
}

// GetEvent retrieves an event by id.
func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// UpdateEvent overwrites an event after checking the registration window and
// that the status move is allowed from the stored state.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	status := models.EventStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if !req.RegistrationEnd.After(req.RegistrationStart) {
		return nil, apperrors.ErrInvalidEventWindow
	}

	current, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	event := &models.Event{
		ID:                  id,
		Name:                req.Name,
		OrganizingCompany:   req.OrganizingCompany,
		ExpectedCGPA:        req.ExpectedCGPA,
		JobRole:             req.JobRole,
		RegistrationStart:   req.RegistrationStart,
		RegistrationEnd:     req.RegistrationEnd,
		Mode:                req.Mode,
		ExpectedPackage:     req.ExpectedPackage,
		Description:         req.Description,
		EligibleDepartments: req.EligibleDepartments,
		Status:              status,
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, id)
}

// DeleteEvent removes an event and, through the cascading foreign key, the
// applications registered against it.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

// GetEventsByStatus retrieves events in a given lifecycle state.
func (s *eventServiceImpl) GetEventsByStatus(ctx context.Context, status string) ([]*models.Event, error) {
	eventStatus := models.EventStatus(status)
	if !eventStatus.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	return s.eventRepo.GetByStatus(ctx, eventStatus)
}

// SearchEventsByCompany retrieves events whose organizing company matches
// the given fragment.
func (s *eventServiceImpl) SearchEventsByCompany(ctx context.Context, company string) ([]*models.Event, error) {
	if company == "" {
		return nil, apperrors.NewBadRequestError("company name is required")
	}

	return s.eventRepo.SearchByCompany(ctx, company)
}

// GetEventsByCompany retrieves events organized by an exact company name.
func (s *eventServiceImpl) GetEventsByCompany(ctx context.Context, companyName string) ([]*models.Event, error) {
	return s.eventRepo.GetByCompany(ctx, companyName)
}

// GetUpcomingEvents retrieves events open for future registration.
func (s *eventServiceImpl) GetUpcomingEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetUpcoming(ctx)
}

// GetOngoingEvents retrieves events currently in progress.
func (s *eventServiceImpl) GetOngoingEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetOngoing(ctx)
}

// GetPastEvents retrieves completed events.
func (s *eventServiceImpl) GetPastEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetPast(ctx)
}
