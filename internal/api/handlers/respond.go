package handlers

import (
	"errors"
	"net/http"

	apperrors "staffing-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service-layer errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsConcurrentModification(err):
		status = http.StatusConflict
	case apperrors.IsSyncFailure(err):
		status = http.StatusBadGateway
	case errors.Is(err, apperrors.ErrEventAlreadyScheduled),
		errors.Is(err, apperrors.ErrEventNotScheduled),
		errors.Is(err, apperrors.ErrIllegalProposalTransition),
		errors.Is(err, apperrors.ErrProposalFlagged),
		errors.Is(err, apperrors.ErrScheduleConflict):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidPaginationParams):
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}
