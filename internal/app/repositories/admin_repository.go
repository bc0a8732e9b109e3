package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/dberrors"
)

const adminColumns = `
	admin_id, admin_name, email_address, phone_number, city, department,
	date_of_birth, password, last_login, created_at`

// adminEmailConstraint is the unique constraint on admins.email_address.
const adminEmailConstraint = "admins_email_address_key"

// AdminRepository handles database operations for admins
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var a models.Admin
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.PhoneNumber, &a.City, &a.Department,
		&a.DateOfBirth, &a.Password, &a.LastLoginAt, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new admin row. The unique email constraint surfaces
// duplicates as ErrAdminAlreadyExists.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (admin_name, email_address, phone_number, city, department, date_of_birth, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING admin_id
	`

	err := r.db.QueryRow(ctx, query,
		admin.Name, admin.Email, admin.PhoneNumber, admin.City,
		admin.Department, admin.DateOfBirth, admin.Password,
	).Scan(&admin.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, adminEmailConstraint) {
			return apperrors.ErrAdminAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetAll retrieves all admins ordered by name.
func (r *AdminRepository) GetAll(ctx context.Context) ([]*models.Admin, error) {
	query := `SELECT` + adminColumns + ` FROM admins ORDER BY admin_name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	query := `SELECT` + adminColumns + ` FROM admins WHERE admin_id = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// GetByIdentifier retrieves an admin by email address or numeric id, the two
// identifiers accepted at login.
func (r *AdminRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Admin, error) {
	query := `SELECT` + adminColumns + ` FROM admins WHERE email_address = $1 OR admin_id::text = $1`

	admin, err := scanAdmin(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return admin, nil
}

// Update overwrites the profile fields of an admin row.
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	query := `
		UPDATE admins SET admin_name = $1, email_address = $2, phone_number = $3, city = $4, department = $5
		WHERE admin_id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		admin.Name, admin.Email, admin.PhoneNumber, admin.City, admin.Department, admin.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, adminEmailConstraint) {
			return apperrors.ErrAdminAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error updating admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// Delete removes an admin row.
func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE admin_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE admins SET password = $1 WHERE admin_id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}

	return nil
}

// UpdateLastLogin stamps the admin's last login time.
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE admins SET last_login = NOW() WHERE admin_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}
