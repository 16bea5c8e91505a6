package handlers

import (
	"net/http"
	"strconv"

	"staffing-backend/internal/database/models"
	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProposalHandler handles HTTP requests for the proposal review workflow
type ProposalHandler struct {
	reviewService *service.ReviewService
}

// NewProposalHandler creates a new proposal handler
func NewProposalHandler(reviewService *service.ReviewService) *ProposalHandler {
	return &ProposalHandler{
		reviewService: reviewService,
	}
}

// ListProposals handles GET /proposals?status=proposed
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	status := models.ProposalStatus(c.Query("status"))
	proposals, total, err := h.reviewService.List(status, pageSize, (page-1)*pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"proposals": proposals,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetProposal handles GET /proposals/:id
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	proposal, err := h.reviewService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// EditProposal handles PUT /proposals/:id
func (h *ProposalHandler) EditProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.EditProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	proposal, err := h.reviewService.Edit(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// ApproveProposal handles POST /proposals/:id/approve
func (h *ProposalHandler) ApproveProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.ProposalDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	proposal, err := h.reviewService.Approve(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// ApproveProposals handles POST /proposals/approve for batch approval
func (h *ProposalHandler) ApproveProposals(c *gin.Context) {
	var req service.ApproveManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	results, err := h.reviewService.ApproveMany(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// RejectProposal handles POST /proposals/:id/reject
func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req service.ProposalDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	proposal, err := h.reviewService.Reject(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// SubmitProposal handles POST /proposals/:id/submit
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	proposal, err := h.reviewService.Submit(id)
	if err != nil {
		// A failed submission still updates the proposal; the error response
		// tells the caller the push did not reach the external system.
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}
