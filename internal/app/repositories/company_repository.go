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

const companyColumns = `company_id, company_name, hr_name, hr_email, hr_phone, password, created_at`

// CompanyRepository handles database operations for companies. Companies
// have no CRUD surface; rows come from seeding and are read at login.
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.HRName, &c.HREmail, &c.HRPhone, &c.Password, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a company row, used by seeding.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (company_name, hr_name, hr_email, hr_phone, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING company_id
	`

	err := r.db.QueryRow(ctx, query,
		company.Name, company.HRName, company.HREmail, company.HRPhone, company.Password,
	).Scan(&company.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}

// GetByIdentifier retrieves a company by numeric id or HR email, the two
// identifiers accepted at login.
func (r *CompanyRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id::text = $1 OR hr_email = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return company, nil
}

// Count returns the number of company rows.
func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting companies: %w", err)
	}
	return count, nil
}
