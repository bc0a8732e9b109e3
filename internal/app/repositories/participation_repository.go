package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/dberrors"
)

// ParticipationRepository handles database operations for the
// student-event join table.
type ParticipationRepository struct {
	db *pgxpool.Pool
}

// NewParticipationRepository creates a new participation repository
func NewParticipationRepository(db *pgxpool.Pool) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

// Create inserts a participation row. The composite primary key makes
// duplicate registrations surface as a unique violation, mapped to
// ErrAlreadyRegistered; this replaces a racy check-then-insert.
func (r *ParticipationRepository) Create(ctx context.Context, p *models.Participation) error {
	query := `
		INSERT INTO participation (student_admission_number, event_id, participation_status, event_description)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, p.StudentAdmissionNumber, p.EventID, p.Status, p.Description)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyRegistered
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("error creating participation: %w", err)
	}

	return nil
}

// GetByKey retrieves a participation row by its composite key.
func (r *ParticipationRepository) GetByKey(ctx context.Context, admissionNumber string, eventID int64) (*models.Participation, error) {
	query := `
		SELECT student_admission_number, event_id, participation_status, event_description, created_at, updated_at
		FROM participation
		WHERE student_admission_number = $1 AND event_id = $2
	`

	var p models.Participation
	err := r.db.QueryRow(ctx, query, admissionNumber, eventID).Scan(
		&p.StudentAdmissionNumber, &p.EventID, &p.Status, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParticipationNotFound
		}
		return nil, fmt.Errorf("error retrieving participation: %w", err)
	}

	return &p, nil
}

// ListByStudent retrieves a student's applications joined with event fields.
func (r *ParticipationRepository) ListByStudent(ctx context.Context, admissionNumber string) ([]*dto.StudentParticipation, error) {
	query := `
		SELECT p.student_admission_number, p.event_id, p.participation_status, p.event_description, p.created_at,
			e.event_name, e.organizing_company, e.job_role, e.expected_package, e.status
		FROM participation p
		JOIN events e ON p.event_id = e.event_id
		WHERE p.student_admission_number = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, admissionNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participations []*dto.StudentParticipation
	for rows.Next() {
		var p dto.StudentParticipation
		if err := rows.Scan(
			&p.StudentAdmissionNumber, &p.EventID, &p.Status, &p.Description, &p.CreatedAt,
			&p.EventName, &p.OrganizingCompany, &p.JobRole, &p.ExpectedPackage, &p.EventStatus,
		); err != nil {
			return nil, err
		}
		participations = append(participations, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participations, nil
}

// ListByEvent retrieves an event's applications joined with student fields.
func (r *ParticipationRepository) ListByEvent(ctx context.Context, eventID int64) ([]*dto.EventParticipation, error) {
	query := `
		SELECT p.student_admission_number, p.event_id, p.participation_status, p.event_description, p.created_at,
			s.student_first_name, s.student_last_name, s.department, s.cgpa, s.batch
		FROM participation p
		JOIN students s ON p.student_admission_number = s.student_admission_number
		WHERE p.event_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participations []*dto.EventParticipation
	for rows.Next() {
		var p dto.EventParticipation
		if err := rows.Scan(
			&p.StudentAdmissionNumber, &p.EventID, &p.Status, &p.Description, &p.CreatedAt,
			&p.StudentFirstName, &p.StudentLastName, &p.Department, &p.CGPA, &p.Batch,
		); err != nil {
			return nil, err
		}
		participations = append(participations, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participations, nil
}

// ListAll retrieves every application joined with both student and event
// display fields, newest first.
func (r *ParticipationRepository) ListAll(ctx context.Context) ([]*dto.FullParticipation, error) {
	return r.listJoined(ctx, 0)
}

// ListRecent retrieves the most recent applications for the dashboard.
func (r *ParticipationRepository) ListRecent(ctx context.Context, limit int) ([]*dto.FullParticipation, error) {
	return r.listJoined(ctx, limit)
}

func (r *ParticipationRepository) listJoined(ctx context.Context, limit int) ([]*dto.FullParticipation, error) {
	query := `
		SELECT p.student_admission_number, p.event_id, p.participation_status, p.event_description, p.created_at,
			s.student_first_name, s.student_last_name, s.department, s.cgpa, s.batch,
			e.event_name, e.organizing_company, e.job_role, e.expected_package
		FROM participation p
		JOIN students s ON p.student_admission_number = s.student_admission_number
		JOIN events e ON p.event_id = e.event_id
		ORDER BY p.created_at DESC
	`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(ctx, query+" LIMIT $1", limit)
	} else {
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participations []*dto.FullParticipation
	for rows.Next() {
		var p dto.FullParticipation
		if err := rows.Scan(
			&p.StudentAdmissionNumber, &p.EventID, &p.Status, &p.Description, &p.CreatedAt,
			&p.StudentFirstName, &p.StudentLastName, &p.Department, &p.CGPA, &p.Batch,
			&p.EventName, &p.OrganizingCompany, &p.JobRole, &p.ExpectedPackage,
		); err != nil {
			return nil, err
		}
		participations = append(participations, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participations, nil
}

// UpdateStatus overwrites the status and description of an application.
func (r *ParticipationRepository) UpdateStatus(ctx context.Context, admissionNumber string, eventID int64, status models.ParticipationStatus, description string) error {
	query := `
		UPDATE participation SET participation_status = $1, event_description = $2, updated_at = NOW()
		WHERE student_admission_number = $3 AND event_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, status, description, admissionNumber, eventID)
	if err != nil {
		return fmt.Errorf("error updating participation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipationNotFound
	}

	return nil
}

// Delete removes a participation row by its composite key.
func (r *ParticipationRepository) Delete(ctx context.Context, admissionNumber string, eventID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM participation WHERE student_admission_number = $1 AND event_id = $2`,
		admissionNumber, eventID)
	if err != nil {
		return fmt.Errorf("error deleting participation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParticipationNotFound
	}

	return nil
}

// Count returns the number of participation rows.
func (r *ParticipationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM participation`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting participation: %w", err)
	}
	return count, nil
}
