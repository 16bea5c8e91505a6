package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"
	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EngineHandler handles HTTP requests for engine runs
type EngineHandler struct {
	engineService *service.EngineService
	runRepo       repository.EngineRunRepositoryInterface
	proposalRepo  repository.PendingProposalRepositoryInterface
}

// NewEngineHandler creates a new engine handler
func NewEngineHandler(
	engineService *service.EngineService,
	runRepo repository.EngineRunRepositoryInterface,
	proposalRepo repository.PendingProposalRepositoryInterface,
) *EngineHandler {
	return &EngineHandler{
		engineService: engineService,
		runRepo:       runRepo,
		proposalRepo:  proposalRepo,
	}
}

// TriggerRunRequest is the optional body of POST /engine/runs. When omitted
// the configured default window is used.
type TriggerRunRequest struct {
	WindowStart *time.Time `json:"window_start"`
	WindowEnd   *time.Time `json:"window_end"`
}

// TriggerRun handles POST /engine/runs
func (h *EngineHandler) TriggerRun(c *gin.Context) {
	var req TriggerRunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
			return
		}
	}

	var windowStart, windowEnd time.Time
	if req.WindowStart != nil {
		windowStart = *req.WindowStart
	}
	if req.WindowEnd != nil {
		windowEnd = *req.WindowEnd
	}

	run, err := h.engineService.RunOnce(windowStart, windowEnd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

// ListRuns handles GET /engine/runs
func (h *EngineHandler) ListRuns(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	runs, total, err := h.runRepo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"runs":  runs,
		"total": total,
	})
}

// GetRun handles GET /engine/runs/:id
func (h *EngineHandler) GetRun(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	run, err := h.runRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.ErrEngineRunNotFound)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

// GetRunProposals handles GET /engine/runs/:id/proposals
func (h *EngineHandler) GetRunProposals(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	proposals, err := h.proposalRepo.GetByEngineRunID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"proposals": proposals,
		"total":     len(proposals),
	})
}
