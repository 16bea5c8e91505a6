package handlers

import (
	"net/http"
	"time"

	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleHandler handles HTTP requests for schedule operations
type ScheduleHandler struct {
	conflictService *service.ConflictService
	pairingService  *service.PairingService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(conflictService *service.ConflictService, pairingService *service.PairingService) *ScheduleHandler {
	return &ScheduleHandler{
		conflictService: conflictService,
		pairingService:  pairingService,
	}
}

// CheckScheduleRequest is the body of POST /schedules/check
type CheckScheduleRequest struct {
	EmployeeID        uuid.UUID  `json:"employee_id" binding:"required"`
	EventID           uuid.UUID  `json:"event_id" binding:"required"`
	StartDatetime     time.Time  `json:"start_datetime" binding:"required"`
	ExcludeScheduleID *uuid.UUID `json:"exclude_schedule_id"`
}

// RescheduleRequest is the body of POST /schedules/:id/reschedule
type RescheduleRequest struct {
	StartDatetime time.Time `json:"start_datetime" binding:"required"`
}

// CheckSchedule handles POST /schedules/check. A dry run: reports conflicts
// and warnings for a candidate assignment without changing anything.
func (h *ScheduleHandler) CheckSchedule(c *gin.Context) {
	var req CheckScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	report, err := h.conflictService.Detect(req.EmployeeID, req.EventID, req.StartDatetime, req.ExcludeScheduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Reschedule handles POST /schedules/:id/reschedule. Core events move
// together with their scheduled supervisor companion.
func (h *ScheduleHandler) Reschedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := h.pairingService.Reschedule(id, req.StartDatetime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Unschedule handles DELETE /schedules/:id. Core events are cleared together
// with their scheduled supervisor companion.
func (h *ScheduleHandler) Unschedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.pairingService.Unschedule(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
