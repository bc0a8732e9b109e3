package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/services"
	"github.com/campushub/placement-portal/internal/middleware"
)

// AdminController handles admin account operations and the dashboard
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

func parseAdminID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admin ID")
		errorDetail = errorDetail.WithDetails("Admin ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetAllAdmins lists every admin account.
func (c *AdminController) GetAllAdmins(ctx *gin.Context) {
	admins, err := c.adminService.GetAllAdmins(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admins, ""))
}

// GetAdmin retrieves one admin account by id.
func (c *AdminController) GetAdmin(ctx *gin.Context) {
	id, ok := parseAdminID(ctx)
	if !ok {
		return
	}

	admin, err := c.adminService.GetAdmin(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admin, ""))
}

// CreateAdmin creates an admin account.
func (c *AdminController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admin data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admin, err := c.adminService.CreateAdmin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(admin, "Admin created successfully"))
}

// UpdateAdmin overwrites an admin's profile fields.
func (c *AdminController) UpdateAdmin(ctx *gin.Context) {
	id, ok := parseAdminID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid admin data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	admin, err := c.adminService.UpdateAdmin(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admin, "Admin updated successfully"))
}

// DeleteAdmin removes an admin account.
func (c *AdminController) DeleteAdmin(ctx *gin.Context) {
	id, ok := parseAdminID(ctx)
	if !ok {
		return
	}

	if err := c.adminService.DeleteAdmin(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Admin deleted successfully"))
}

// ChangePassword replaces an admin's password after verifying the current one.
func (c *AdminController) ChangePassword(ctx *gin.Context) {
	id, ok := parseAdminID(ctx)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid password change request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.ChangePassword(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Password changed successfully"))
}

// TouchLastLogin stamps the admin's last login time.
func (c *AdminController) TouchLastLogin(ctx *gin.Context) {
	id, ok := parseAdminID(ctx)
	if !ok {
		return
	}

	if err := c.adminService.TouchLastLogin(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Last login updated"))
}

// GetDashboardStats reports the dashboard counters and recent applications.
func (c *AdminController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.adminService.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}
