package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/services"
	"github.com/campushub/placement-portal/internal/middleware"
)

// ParticipationController handles student applications to events
type ParticipationController struct {
	participationService services.ParticipationService
}

// NewParticipationController creates a new ParticipationController
func NewParticipationController(participationService services.ParticipationService) *ParticipationController {
	return &ParticipationController{participationService: participationService}
}

func parseParticipationKey(ctx *gin.Context) (string, int64, bool) {
	admissionNumber := ctx.Param("studentId")

	eventID, err := strconv.ParseInt(ctx.Param("eventId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")
		errorDetail = errorDetail.WithDetails("Event ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", 0, false
	}

	return admissionNumber, eventID, true
}

// Register creates an application for a student against an open event.
func (c *ParticipationController) Register(ctx *gin.Context) {
	var req dto.RegisterParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	participation, err := c.participationService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(participation, "Registered for event successfully"))
}

// GetByStudent lists a student's applications with event display fields.
func (c *ParticipationController) GetByStudent(ctx *gin.Context) {
	participations, err := c.participationService.GetByStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(participations, ""))
}

// GetByEvent lists an event's applications with student display fields.
func (c *ParticipationController) GetByEvent(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")
		errorDetail = errorDetail.WithDetails("Event ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	participations, err := c.participationService.GetByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(participations, ""))
}

// GetAll lists every application joined with student and event fields.
func (c *ParticipationController) GetAll(ctx *gin.Context) {
	participations, err := c.participationService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(participations, ""))
}

// UpdateStatus moves an application between lifecycle states.
func (c *ParticipationController) UpdateStatus(ctx *gin.Context) {
	admissionNumber, eventID, ok := parseParticipationKey(ctx)
	if !ok {
		return
	}

	var req dto.UpdateParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status update")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	participation, err := c.participationService.UpdateStatus(ctx.Request.Context(), admissionNumber, eventID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(participation, "Participation status updated"))
}

// Withdraw removes an application.
func (c *ParticipationController) Withdraw(ctx *gin.Context) {
	admissionNumber, eventID, ok := parseParticipationKey(ctx)
	if !ok {
		return
	}

	if err := c.participationService.Withdraw(ctx.Request.Context(), admissionNumber, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Participation removed successfully"))
}
