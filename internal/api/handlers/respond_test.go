package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "staffing-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		respondError(c, err)
	})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.ErrEventNotFound, http.StatusNotFound},
		{"validation", apperrors.NewValidationError("field", "bad"), http.StatusBadRequest},
		{"concurrent modification", apperrors.NewConcurrentModificationError("schedule"), http.StatusConflict},
		{"sync failure", apperrors.NewSyncFailureError("submit", "REF-1", errors.New("timeout")), http.StatusBadGateway},
		{"already scheduled", apperrors.ErrEventAlreadyScheduled, http.StatusConflict},
		{"not scheduled", apperrors.ErrEventNotScheduled, http.StatusConflict},
		{"illegal transition", apperrors.ErrIllegalProposalTransition, http.StatusConflict},
		{"flagged proposal", apperrors.ErrProposalFlagged, http.StatusConflict},
		{"invalid time range", apperrors.ErrInvalidTimeRange, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := performWithError(tt.err)
			assert.Equal(t, tt.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "error")
		})
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/things/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/things/not-a-uuid", nil)
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/things/7a1e62f4-3f4d-4cbb-9b25-2b1a7e9d8c01", nil)
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
