package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/auth"
)

// recentApplicationLimit caps the dashboard's recent application list.
const recentApplicationLimit = 10

// AdminService handles admin accounts and the dashboard
type AdminService interface {
	GetAllAdmins(ctx context.Context) ([]*models.Admin, error)
	GetAdmin(ctx context.Context, id int64) (*models.Admin, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error)
	UpdateAdmin(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, id int64, req *dto.ChangePasswordRequest) error
	TouchLastLogin(ctx context.Context, id int64) error
	GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error)
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	adminRepo         *repositories.AdminRepository
	studentRepo       *repositories.StudentRepository
	companyRepo       *repositories.CompanyRepository
	eventRepo         *repositories.EventRepository
	participationRepo *repositories.ParticipationRepository
	logger            zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	adminRepo *repositories.AdminRepository,
	studentRepo *repositories.StudentRepository,
	companyRepo *repositories.CompanyRepository,
	eventRepo *repositories.EventRepository,
	participationRepo *repositories.ParticipationRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		adminRepo:         adminRepo,
		studentRepo:       studentRepo,
		companyRepo:       companyRepo,
		eventRepo:         eventRepo,
		participationRepo: participationRepo,
		logger:            logger,
	}
}

// GetAllAdmins retrieves all admin accounts.
func (s *adminServiceImpl) GetAllAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.adminRepo.GetAll(ctx)
}

// GetAdmin retrieves an admin account by id.
func (s *adminServiceImpl) GetAdmin(ctx context.Context, id int64) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

// CreateAdmin creates an admin account with a hashed password. Duplicate
// email addresses surface as a conflict.
func (s *adminServiceImpl) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:        req.AdminName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Department:  req.Department,
		DateOfBirth: req.DateOfBirth,
		Password:    hash,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return s.adminRepo.GetByID(ctx, admin.ID)
}

// UpdateAdmin overwrites the profile fields of an admin account and returns
// the post-update row.
func (s *adminServiceImpl) UpdateAdmin(ctx context.Context, id int64, req *dto.UpdateAdminRequest) (*models.Admin, error) {
	admin := &models.Admin{
		ID:          id,
		Name:        req.AdminName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Department:  req.Department,
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	return s.adminRepo.GetByID(ctx, id)
}

// DeleteAdmin removes an admin account.
func (s *adminServiceImpl) DeleteAdmin(ctx context.Context, id int64) error {
	return s.adminRepo.Delete(ctx, id)
}

// ChangePassword replaces the admin's password after verifying the current
// one.
func (s *adminServiceImpl) ChangePassword(ctx context.Context, id int64, req *dto.ChangePasswordRequest) error {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(admin.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.adminRepo.UpdatePassword(ctx, id, hash)
}

// TouchLastLogin stamps the admin's last login time.
func (s *adminServiceImpl) TouchLastLogin(ctx context.Context, id int64) error {
	if _, err := s.adminRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.adminRepo.UpdateLastLogin(ctx, id)
}

// GetDashboardStats assembles the dashboard counters and the most recent
// applications.
func (s *adminServiceImpl) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	students, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.eventRepo.CountByStatus(ctx, models.EventUpcoming)
	if err != nil {
		return nil, err
	}

	applications, err := s.participationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.participationRepo.ListRecent(ctx, recentApplicationLimit)
	if err != nil {
		return nil, err
	}

	recentApps := make([]dto.RecentApplication, 0, len(recent))
	for _, p := range recent {
		recentApps = append(recentApps, dto.RecentApplication{
			StudentAdmissionNumber: p.StudentAdmissionNumber,
			StudentFirstName:       p.StudentFirstName,
			StudentLastName:        p.StudentLastName,
			EventID:                p.EventID,
			EventName:              p.EventName,
			OrganizingCompany:      p.OrganizingCompany,
			Status:                 p.Status,
			CreatedAt:              p.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return &dto.DashboardStats{
		Stats: dto.DashboardCounts{
			TotalStudents:     students,
			TotalCompanies:    companies,
			UpcomingEvents:    upcoming,
			TotalApplications: applications,
		},
		RecentApplications: recentApps,
	}, nil
}
