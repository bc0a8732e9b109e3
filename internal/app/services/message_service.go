package services

import (
	"context"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

// MessageService handles contact-form messages
type MessageService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error)
	GetAllMessages(ctx context.Context) ([]*models.Message, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateMessageStatusRequest) error
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messageRepo *repositories.MessageRepository
}

// NewMessageService creates a new message service instance
func NewMessageService(messageRepo *repositories.MessageRepository) MessageService {
	return &messageServiceImpl{messageRepo: messageRepo}
}

// SendMessage records a contact-form submission in the new state.
func (s *messageServiceImpl) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	message := &models.Message{
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Subject:     req.Subject,
		Body:        req.Body,
		Status:      models.MessageNew,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

// GetAllMessages retrieves all messages, newest first.
func (s *messageServiceImpl) GetAllMessages(ctx context.Context) ([]*models.Message, error) {
	return s.messageRepo.GetAll(ctx)
}

// UpdateStatus moves a message through its review lifecycle. The target must
// be a recognized status and reachable from the stored state.
func (s *messageServiceImpl) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateMessageStatusRequest) error {
	status := models.MessageStatus(req.Status)
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus
	}

	current, err := s.messageRepo.GetStatus(ctx, id)
	if err != nil {
		return err
	}

	if !current.CanTransitionTo(status) {
		return apperrors.ErrInvalidStatusTransition
	}

	return s.messageRepo.UpdateStatus(ctx, id, status)
}
