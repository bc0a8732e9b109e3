// Package seed creates the default records a fresh installation needs.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/config"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/auth"
)

// CreateDefaultData seeds the default admin account and a couple of sample
// companies so a fresh database is immediately usable. Existing rows are
// left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)
	companyRepo := repositories.NewCompanyRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default admin account --- //
	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("No seed admin password configured, skipping default admin")
	} else {
		_, err := adminRepo.GetByIdentifier(ctx, cfg.Seed.AdminEmail)
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			hash, hashErr := auth.HashPassword(cfg.Seed.AdminPassword)
			if hashErr != nil {
				lgr.Error().Err(hashErr).Msg("Error hashing default admin password")
				finalErr = errors.Join(finalErr, hashErr)
			} else {
				admin := &models.Admin{
					Name:     "Placement Admin",
					Email:    cfg.Seed.AdminEmail,
					Password: hash,
				}
				if createErr := adminRepo.Create(ctx, admin); createErr != nil && !errors.Is(createErr, apperrors.ErrAdminAlreadyExists) {
					lgr.Error().Err(createErr).Msg("Error creating default admin")
					finalErr = errors.Join(finalErr, createErr)
				} else {
					lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin created")
				}
			}
		} else if err != nil {
			lgr.Error().Err(err).Msg("Error checking for default admin")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Sample companies --- //
	count, err := companyRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting companies")
		return errors.Join(finalErr, err)
	}

	if count == 0 {
		hash, hashErr := auth.HashPassword("company@123")
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing sample company password")
			return errors.Join(finalErr, hashErr)
		}

		companies := []*models.Company{
			{Name: "TechNova Solutions", HRName: "Priya Sharma", HREmail: "hr@technova.example", HRPhone: "9000000001", Password: hash},
			{Name: "Quantel Systems", HRName: "Rahul Verma", HREmail: "hr@quantel.example", HRPhone: "9000000002", Password: hash},
		}

		for _, company := range companies {
			if createErr := companyRepo.Create(ctx, company); createErr != nil {
				lgr.Error().Err(createErr).Str("company", company.Name).Msg("Error creating sample company")
				finalErr = errors.Join(finalErr, createErr)
			}
		}
	}

	return finalErr
}
