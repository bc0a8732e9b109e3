package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/campushub/placement-portal/internal/app/models"
	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/repositories"
	"github.com/campushub/placement-portal/internal/pkg/apperrors"
	"github.com/campushub/placement-portal/internal/pkg/auth"
	"github.com/campushub/placement-portal/internal/pkg/validation"
)

// defaultStudentPassword is the fallback credential assigned when a student
// registers without supplying one. It is hashed like any other password.
const defaultStudentPassword = "campus@123"

// AuthService handles authentication and student registration
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error
	ForgotPassword(ctx context.Context, userID string) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	studentRepo *repositories.StudentRepository
	adminRepo   *repositories.AdminRepository
	companyRepo *repositories.CompanyRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	studentRepo *repositories.StudentRepository,
	adminRepo *repositories.AdminRepository,
	companyRepo *repositories.CompanyRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		companyRepo: companyRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login looks up the user row in the store selected by the caller-supplied
// role, verifies the password against the stored hash and issues a token
// with a role-shaped public projection of the row.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewBadRequestError("role must be one of student, admin or company")
	}

	var (
		storedHash string
		userID     string
		email      string
		name       string
		projection interface{}
	)

	switch req.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByAdmissionNumber(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		storedHash = student.Password
		userID = student.AdmissionNumber
		email = student.CollegeEmailID
		name = student.FullName()
		projection = dto.NewStudentProfile(student)

	case models.RoleAdmin:
		admin, err := s.adminRepo.GetByIdentifier(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		storedHash = admin.Password
		userID = strconv.FormatInt(admin.ID, 10)
		email = admin.Email
		name = admin.Name
		projection = dto.NewAdminProfile(admin)

	case models.RoleCompany:
		company, err := s.companyRepo.GetByIdentifier(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		storedHash = company.Password
		userID = strconv.FormatInt(company.ID, 10)
		email = company.HREmail
		name = company.Name
		projection = dto.NewCompanyProfile(company)
	}

	if !auth.CheckPassword(storedHash, req.Password) {
		s.logger.Warn().Str("userId", req.UserID).Str("role", string(req.Role)).Msg("Password mismatch on login")
		return nil, apperrors.ErrInvalidCredentials
	}

	// Companies carry no last-login column
	switch req.Role {
	case models.RoleStudent:
		if err := s.studentRepo.UpdateLastLogin(ctx, req.UserID); err != nil {
			s.logger.Error().Err(err).Str("userId", req.UserID).Msg("Failed to update student last login")
		}
	case models.RoleAdmin:
		id, _ := strconv.ParseInt(userID, 10, 64)
		if err := s.adminRepo.UpdateLastLogin(ctx, id); err != nil {
			s.logger.Error().Err(err).Str("userId", userID).Msg("Failed to update admin last login")
		}
	}

	token, expiresIn, err := s.jwtService.GenerateToken(userID, email, name, req.Role)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: projection,
	}, nil
}

// validateRegistration checks the domain formats gin binding does not cover.
func validateRegistration(req *dto.RegisterStudentRequest) error {
	if !validation.CompiledPatterns.AdmissionNumber.MatchString(req.AdmissionNumber) {
		return apperrors.NewBadRequestError("admission number must be 4 to 20 alphanumeric characters")
	}

	emailCheck := validation.NewStringValidation(req.EmailID).
		WithRequired(false).
		WithPattern(validation.CompiledPatterns.Email)
	if !emailCheck.Validate() {
		return apperrors.NewBadRequestError("invalid email address")
	}

	if req.Password != "" {
		passwordCheck := validation.NewStringValidation(req.Password).
			WithMinLength(validation.PasswordMinLength)
		if !passwordCheck.Validate() {
			return apperrors.NewBadRequestError("password must be at least 6 characters")
		}
	}

	return nil
}

// RegisterStudent creates a new student account. The admission number
// primary key enforces uniqueness; a duplicate insert surfaces as
// ErrStudentAlreadyExists.
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error {
	if err := validateRegistration(req); err != nil {
		return err
	}

	password := req.Password
	if password == "" {
		password = defaultStudentPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		AdmissionNumber:   req.AdmissionNumber,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		FatherName:        req.FatherName,
		MotherName:        req.MotherName,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		MobileNo:          req.MobileNo,
		EmailID:           req.EmailID,
		CollegeEmailID:    req.CollegeEmailID,
		Department:        req.Department,
		Batch:             req.Batch,
		Course:            req.Course,
		UniversityRollNo:  req.UniversityRollNo,
		EnrollmentNo:      req.EnrollmentNo,
		CGPA:              req.CGPA,
		TenthPercentage:   req.TenthPercentage,
		TwelfthPercentage: req.TwelfthPercentage,
		Password:          hash,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	s.logger.Info().Str("admissionNumber", req.AdmissionNumber).Msg("Student registered")
	return nil
}

// ForgotPassword verifies the admission number exists. No reset token or
// email is issued; the caller gets a generic success message.
func (s *authServiceImpl) ForgotPassword(ctx context.Context, userID string) error {
	if _, err := s.studentRepo.GetByAdmissionNumber(ctx, userID); err != nil {
		return err
	}
	return nil
}
