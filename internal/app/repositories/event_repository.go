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

const eventColumns = `
	event_id, event_name, organizing_company, expected_cgpa, job_role,
	registration_start, registration_end, event_mode, expected_package,
	event_description, eligible_departments, status, created_at`

// EventRepository handles database operations for placement events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.OrganizingCompany, &e.ExpectedCGPA, &e.JobRole,
		&e.RegistrationStart, &e.RegistrationEnd, &e.Mode, &e.ExpectedPackage,
		&e.Description, &e.EligibleDepartments, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]*models.Event, error) {
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Create inserts a new event and fills in the generated id and timestamp.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (
			event_name, organizing_company, expected_cgpa, job_role, registration_start,
			registration_end, event_mode, expected_package, event_description,
			eligible_departments, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING event_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Name, event.OrganizingCompany, event.ExpectedCGPA, event.JobRole,
		event.RegistrationStart, event.RegistrationEnd, event.Mode, event.ExpectedPackage,
		event.Description, event.EligibleDepartments, event.Status,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetAll retrieves all events, newest first.
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectEvents(rows)
}

// GetByID retrieves an event by ID.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE event_id = $1`

	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// Update overwrites the full field set of an event row.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events SET
			event_name = $1, organizing_company = $2, expected_cgpa = $3, job_role = $4,
			registration_start = $5, registration_end = $6, event_mode = $7,
			expected_package = $8, event_description = $9, eligible_departments = $10, status = $11
		WHERE event_id = $12
	`

	cmdTag, err := r.db.Exec(ctx, query,
		event.Name, event.OrganizingCompany, event.ExpectedCGPA, event.JobRole,
		event.RegistrationStart, event.RegistrationEnd, event.Mode, event.ExpectedPackage,
		event.Description, event.EligibleDepartments, event.Status, event.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event; participation rows referencing it are removed by
// the cascading foreign key.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// GetByStatus retrieves events in a given lifecycle state, newest first.
func (r *EventRepository) GetByStatus(ctx context.Context, status models.EventStatus) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}

	return collectEvents(rows)
}

// SearchByCompany retrieves events whose organizing company contains the
// given fragment, case-insensitively.
func (r *EventRepository) SearchByCompany(ctx context.Context, company string) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE organizing_company ILIKE $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, "%"+company+"%")
	if err != nil {
		return nil, err
	}

	return collectEvents(rows)
}

// GetByCompany retrieves events organized by an exact company name.
func (r *EventRepository) GetByCompany(ctx context.Context, companyName string) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE organizing_company = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, companyName)
	if err != nil {
		return nil, err
	}

	return collectEvents(rows)
}

// GetUpcoming retrieves upcoming events ordered by registration start.
func (r *EventRepository) GetUpcoming(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE status = $1 ORDER BY registration_start ASC`

	rows, err := r.db.Query(ctx, query, models.EventUpcoming)
	if err != nil {
		return nil, err
	}

	return collectEvents(rows)
}

// GetOngoing retrieves ongoing events ordered by registration start.
func (r *EventRepository) GetOngoing(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE status = $1 ORDER BY registration_start ASC`

	rows, err := r.db.Query(ctx, query, models.EventOngoing)
	if err != nil {
		return nil, err
	}

	return collectEvents(rows)
}

// GetPast retrieves completed events, most recently closed first.
func (r *EventRepository) GetPast(ctx context.Context) ([]*models.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE status = $1 ORDER BY registration_end DESC`

	rows, err := r.db.Query(ctx, query, models.EventCompleted)
	if err != nil {
		return nil, err
	}

	return collectEvents(rows)
}

// CountByStatus returns the number of events in a given state.
func (r *EventRepository) CountByStatus(ctx context.Context, status models.EventStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}
