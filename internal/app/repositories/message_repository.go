package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
)

// MessageRepository handles database operations for contact messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a contact message and fills in the generated id.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (sender_name, sender_email, subject, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderName, message.SenderEmail, message.Subject, message.Body, message.Status,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// GetAll retrieves all messages, newest first.
func (r *MessageRepository) GetAll(ctx context.Context) ([]*models.Message, error) {
	query := `
		SELECT id, sender_name, sender_email, subject, message, status, created_at
		FROM messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderName, &m.SenderEmail, &m.Subject, &m.Body, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// GetStatus retrieves the current review status of a message.
func (r *MessageRepository) GetStatus(ctx context.Context, id int64) (models.MessageStatus, error) {
	var status models.MessageStatus
	err := r.db.QueryRow(ctx, `SELECT status FROM messages WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrMessageNotFound
		}
		return "", fmt.Errorf("error retrieving message status: %w", err)
	}
	return status, nil
}

// UpdateStatus overwrites the review status of a message.
func (r *MessageRepository) UpdateStatus(ctx context.Context, id int64, status models.MessageStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE messages SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating message status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}

	return nil
}
