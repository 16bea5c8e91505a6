package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"staffing-backend/internal/config"
)

//go:generate mockgen -source=sync.go -destination=../mocks/sync_mocks.go -package=mocks

// ExternalSchedulerInterface is the boundary contract with the external
// retail-scheduling system. The pairing transaction manager treats these calls
// as the commit point of its transactions; a timeout is a failure, never an
// assumed success.
type ExternalSchedulerInterface interface {
	ScheduleEvent(ctx context.Context, employeeNumber, eventRef string, start time.Time) (string, error)
	UnscheduleEvent(ctx context.Context, externalID string) error
}

// SyncClient talks to the external retail-scheduling API over HTTP with an
// explicit authenticate/refresh session lifecycle.
type SyncClient struct {
	cfg        *config.Config
	httpClient *http.Client

	// Session token management
	token       string
	tokenExpiry time.Time
	tokenMu     sync.Mutex
}

// NewSyncClient creates a new external scheduler client
func NewSyncClient(cfg *config.Config) *SyncClient {
	timeout := time.Duration(cfg.SyncTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SyncClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type sessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type scheduleEventRequest struct {
	EmployeeNumber string `json:"employee_number"`
	EventRef       string `json:"event_ref"`
	StartDatetime  string `json:"start_datetime"`
}

type scheduleEventResponse struct {
	Success    bool   `json:"success"`
	ScheduleID string `json:"schedule_id"`
	Error      string `json:"error"`
}

// baseURL parses and normalizes the configured sync endpoint
func (c *SyncClient) baseURL() (*url.URL, error) {
	base := c.cfg.SyncBaseURL
	if base == "" {
		return nil, fmt.Errorf("external scheduler is not configured")
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return url.Parse(strings.TrimRight(base, "/"))
}

// ensureSession authenticates when no session token is held or the current
// one expires within a minute.
func (c *SyncClient) ensureSession(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.token, nil
	}

	base, err := c.baseURL()
	if err != nil {
		return "", err
	}

	body, _ := json.Marshal(map[string]string{
		"username": c.cfg.SyncUsername,
		"password": c.cfg.SyncPassword,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base.String()+"/api/v1/session", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("session request failed: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}

	c.token = session.Token
	c.tokenExpiry = time.Now().Add(30 * time.Minute)
	if session.ExpiresAt != "" {
		if expiry, err := time.Parse(time.RFC3339, session.ExpiresAt); err == nil {
			c.tokenExpiry = expiry
		}
	}
	return c.token, nil
}

// ScheduleEvent pushes one assignment to the external system and returns the
// external schedule ID.
func (c *SyncClient) ScheduleEvent(ctx context.Context, employeeNumber, eventRef string, start time.Time) (string, error) {
	token, err := c.ensureSession(ctx)
	if err != nil {
		return "", err
	}

	base, err := c.baseURL()
	if err != nil {
		return "", err
	}

	body, _ := json.Marshal(scheduleEventRequest{
		EmployeeNumber: employeeNumber,
		EventRef:       eventRef,
		StartDatetime:  start.Format(time.RFC3339),
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base.String()+"/api/v1/schedules", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create schedule request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("schedule request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("schedule request failed: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var result scheduleEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode schedule response: %w", err)
	}
	if !result.Success {
		return "", fmt.Errorf("external system rejected schedule for %s: %s", eventRef, result.Error)
	}
	return result.ScheduleID, nil
}

// UnscheduleEvent clears one assignment in the external system
func (c *SyncClient) UnscheduleEvent(ctx context.Context, externalID string) error {
	token, err := c.ensureSession(ctx)
	if err != nil {
		return err
	}

	base, err := c.baseURL()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, base.String()+"/api/v1/schedules/"+url.PathEscape(externalID), nil)
	if err != nil {
		return fmt.Errorf("failed to create unschedule request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("unschedule request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unschedule request failed: status=%d body=%s", resp.StatusCode, string(payload))
	}
	return nil
}
