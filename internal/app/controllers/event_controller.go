package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/placement-portal/internal/app/models/dto"
	"github.com/campushub/placement-portal/internal/app/services"
	"github.com/campushub/placement-portal/internal/middleware"
)

// EventController handles placement event operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

func parseEventID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event ID")
		errorDetail = errorDetail.WithDetails("Event ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateEvent creates a placement event.
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(event, "Event created successfully"))
}

// GetAllEvents lists every event.
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	events, err := c.eventService.GetAllEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events, ""))
}

// GetEvent retrieves one event by id.
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := parseEventID(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(event, ""))
}

// UpdateEvent overwrites an event.
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseEventID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid event data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(event, "Event updated successfully"))
}

// DeleteEvent removes an event and its applications.
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseEventID(ctx)
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted successfully"))
}

// GetEventsByStatus lists events in a given lifecycle state.
func (c *EventController) GetEventsByStatus(ctx *gin.Context) {
	events, err := c.eventService.GetEventsByStatus(ctx.Request.Context(), ctx.Param("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events, ""))
}

// SearchEventsByCompany lists events whose organizing company matches the
// 'company' query fragment.
func (c *EventController) SearchEventsByCompany(ctx *gin.Context) {
	events, err := c.eventService.SearchEventsByCompany(ctx.Request.Context(), ctx.Query("company"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events, ""))
}

// GetEventsByCompany lists events organized by an exact company name.
func (c *EventController) GetEventsByCompany(ctx *gin.Context) {
	events, err := c.eventService.GetEventsByCompany(ctx.Request.Context(), ctx.Param("companyName"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events, ""))
}

// GetUpcomingEvents lists upcoming events ordered by registration start.
func (c *EventController) GetUpcomingEvents(ctx *gin.Context) {
	events, err := c.eventService.GetUpcomingEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events, ""))
}

// GetOngoingEvents lists events currently in progress.
func (c *EventController) GetOngoingEvents(ctx *gin.Context) {
	events, err := c.eventService.GetOngoingEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events, ""))
}

// GetPastEvents lists completed events, most recently closed first.
func (c *EventController) GetPastEvents(ctx *gin.Context) {
	events, err := c.eventService.GetPastEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events, ""))
}
