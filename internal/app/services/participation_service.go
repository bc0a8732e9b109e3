package services

import (
	"context"
	"errors"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

// ParticipationService handles student applications to events
type ParticipationService interface {
	Register(ctx context.Context, req *dto.RegisterParticipationRequest) (*models.Participation, error)
	GetByStudent(ctx context.Context, admissionNumber string) ([]*dto.StudentParticipation, error)
	GetByEvent(ctx context.Context, eventID int64) ([]*dto.EventParticipation, error)
	GetAll(ctx context.Context) ([]*dto.FullParticipation, error)
	UpdateStatus(ctx context.Context, admissionNumber string, eventID int64, req *dto.UpdateParticipationRequest) (*models.Participation, error)
	Withdraw(ctx context.Context, admissionNumber string, eventID int64) error
}

// studentLookup is the slice of the student repository this service reads.
type studentLookup interface {
	GetByAdmissionNumber(ctx context.Context, admissionNumber string) (*models.Student, error)
}

// eventLookup is the slice of the event repository this service reads.
type eventLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Event, error)
}

// participationServiceImpl implements ParticipationService
type participationServiceImpl struct {
	participationRepo *repositories.ParticipationRepository
	studentRepo       studentLookup
	eventRepo         eventLookup
	now               func() time.Time
}

// NewParticipationService creates a new participation service instance
func NewParticipationService(
	participationRepo *repositories.ParticipationRepository,
	studentRepo *repositories.StudentRepository,
	eventRepo *repositories.EventRepository,
) ParticipationService {
	return &participationServiceImpl{
		participationRepo: participationRepo,
		studentRepo:       studentRepo,
		eventRepo:         eventRepo,
		now:               time.Now,
	}
}

// Register creates an application for a student against an event. The event
// must still be open for registration and the student must not already hold
// an application for it.
func (s *participationServiceImpl) Register(ctx context.Context, req *dto.RegisterParticipationRequest) (*models.Participation, error) {
	if _, err := s.studentRepo.GetByAdmissionNumber(ctx, req.StudentAdmissionNumber); err != nil {
		return nil, err
	}

	// An unknown event id reads the same as a closed one to the caller:
	// there is no open event to register against.
	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, apperrors.ErrEventNotOpen
		}
		return nil, err
	}

	if !event.OpenForRegistration(s.now()) {
		return nil, apperrors.ErrEventNotOpen
	}

	participation := &models.Participation{
		StudentAdmissionNumber: req.StudentAdmissionNumber,
		EventID:                req.EventID,
		Status:                 models.ParticipationRegistered,
	}

	if err := s.participationRepo.Create(ctx, participation); err != nil {
		return nil, err
	}

	return participation, nil
}

// GetByStudent retrieves a student's applications joined with event fields.
func (s *participationServiceImpl) GetByStudent(ctx context.Context, admissionNumber string) ([]*dto.StudentParticipation, error) {
	if _, err := s.studentRepo.GetByAdmissionNumber(ctx, admissionNumber); err != nil {
		return nil, err
	}

	return s.participationRepo.ListByStudent(ctx, admissionNumber)
}

// GetByEvent retrieves an event's applications joined with student fields.
func (s *participationServiceImpl) GetByEvent(ctx context.Context, eventID int64) ([]*dto.EventParticipation, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	return s.participationRepo.ListByEvent(ctx, eventID)
}

// GetAll retrieves every application joined with student and event fields.
func (s *participationServiceImpl) GetAll(ctx context.Context) ([]*dto.FullParticipation, error) {
	return s.participationRepo.ListAll(ctx)
}

// UpdateStatus moves an application between states. The target must be a
// recognized status and reachable from the stored state.
func (s *participationServiceImpl) UpdateStatus(ctx context.Context, admissionNumber string, eventID int64, req *dto.UpdateParticipationRequest) (*models.Participation, error) {
	status := models.ParticipationStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	current, err := s.participationRepo.GetByKey(ctx, admissionNumber, eventID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	if err := s.participationRepo.UpdateStatus(ctx, admissionNumber, eventID, status, req.Description); err != nil {
		return nil, err
	}

	return s.participationRepo.GetByKey(ctx, admissionNumber, eventID)
}

// Withdraw removes an application row.
func (s *participationServiceImpl) Withdraw(ctx context.Context, admissionNumber string, eventID int64) error {
	return s.participationRepo.Delete(ctx, admissionNumber, eventID)
}
