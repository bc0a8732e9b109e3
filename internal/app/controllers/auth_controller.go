// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/services"
	"github.com/campushub/placement-portal/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a student, admin or company and returns a signed token
// with the role-shaped profile.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if !req.Role.IsValid() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid role")
		errorDetail = errorDetail.WithDetails("Role must be one of student, admin or company").WithField("role")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	authResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("role", string(req.Role)).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userId", req.UserID).Str("role", string(req.Role)).Msg("User logged in")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse, "Login successful"))
}

// Register creates a student account.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.RegisterStudent(ctx.Request.Context(), &req); err != nil {
		c.logger.Error().Err(err).Str("admissionNumber", req.AdmissionNumber).Msg("Failed to register student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("admissionNumber", req.AdmissionNumber).Msg("Student registered")

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student registered successfully"))
}

// ForgotPassword acknowledges a password reset request. No reset token or
// mail is issued yet; the account is only checked for existence.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.ForgotPassword(ctx.Request.Context(), req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("If the account exists, reset instructions will be sent"))
}
