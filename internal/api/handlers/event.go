package handlers

import (
	"net/http"
	"strconv"
	"time"

	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventHandler handles HTTP requests for event operations
type EventHandler struct {
	eventService   *service.EventService
	pairingService *service.PairingService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService, pairingService *service.PairingService) *EventHandler {
	return &EventHandler{
		eventService:   eventService,
		pairingService: pairingService,
	}
}

// ScheduleEventRequest is the body of POST /events/:id/schedule
type ScheduleEventRequest struct {
	EmployeeID    uuid.UUID `json:"employee_id" binding:"required"`
	StartDatetime time.Time `json:"start_datetime" binding:"required"`
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	resp, err := h.eventService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetEvent handles GET /events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// GetUnstaffedEvents handles GET /events/unstaffed?from=2026-08-01&to=2026-08-31
func (h *EventHandler) GetUnstaffedEvents(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from parameter is required in YYYY-MM-DD format"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to parameter is required in YYYY-MM-DD format"})
		return
	}

	events, err := h.eventService.GetUnstaffedInWindow(from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "total": len(events)})
}

// ScheduleEvent handles POST /events/:id/schedule. For core events this also
// auto-schedules an unstaffed supervisor companion when possible; both
// assignments commit or roll back together.
func (h *EventHandler) ScheduleEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ScheduleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := h.pairingService.ScheduleEvent(id, req.EmployeeID, req.StartDatetime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
