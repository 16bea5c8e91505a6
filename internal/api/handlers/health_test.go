package handlers

import (
	"testing"

	"staffing-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	*testutils.BaseTestSuite
	http *testutils.HTTPTestSuite
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, &HealthHandlerTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}

func (s *HealthHandlerTestSuite) SetupTest() {
	s.http = testutils.SetupHTTPTest()
	handler := NewHealthHandler(s.DB)
	s.http.Router.GET("/health", handler.Health)
	s.http.Router.GET("/health/ready", handler.Ready)
	s.http.Router.GET("/health/live", handler.Live)
}

func (s *HealthHandlerTestSuite) TestHealth() {
	recorder := s.http.MakeRequest("GET", "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(s.T(), recorder, 200, &response)
	s.Equal("healthy", response.Status)
	s.Equal("healthy", response.Services["database"])
}

func (s *HealthHandlerTestSuite) TestReady() {
	recorder := s.http.MakeRequest("GET", "/health/ready", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, 200, &response)
	s.Equal(true, response["ready"])
}

func (s *HealthHandlerTestSuite) TestLive() {
	recorder := s.http.MakeRequest("GET", "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, 200, &response)
	s.Equal(true, response["alive"])
}
