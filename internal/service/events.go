package service

import (
	"errors"
	"fmt"
	"time"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService provides event catalog business logic
type EventService struct {
	eventRepo repository.EventRepositoryInterface
	validator *validator.Validate
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepositoryInterface, validator *validator.Validate) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		validator: validator,
	}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	RefNum           string           `json:"ref_num" validate:"required,max=40"`
	DisplayName      string           `json:"display_name" validate:"required,max=200"`
	EventType        models.EventType `json:"event_type" validate:"required"`
	StartWindow      time.Time        `json:"start_window" validate:"required"`
	DueDate          time.Time        `json:"due_date" validate:"required"`
	EstimatedMinutes int              `json:"estimated_minutes" validate:"omitempty,min=1"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events   []models.Event `json:"events"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new event
func (s *EventService) Create(req *CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if !req.EventType.IsValid() {
		return nil, apperrors.NewValidationError("event_type", fmt.Sprintf("invalid event type: %s", req.EventType))
	}
	if req.DueDate.Before(req.StartWindow) {
		return nil, apperrors.NewValidationError("due_date", "due date is before the start window")
	}

	event := &models.Event{
		RefNum:           req.RefNum,
		DisplayName:      req.DisplayName,
		EventType:        req.EventType,
		StartWindow:      req.StartWindow,
		DueDate:          req.DueDate,
		EstimatedMinutes: req.EstimatedMinutes,
		Status:           models.EventStatusUnstaffed,
	}
	if event.EstimatedMinutes == 0 {
		event.EstimatedMinutes = 120
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// GetByID retrieves an event by ID
func (s *EventService) GetByID(id uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// GetAll retrieves events with pagination
func (s *EventService) GetAll(page, pageSize int) (*EventListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	events, total, err := s.eventRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return &EventListResponse{
		Events:   events,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetUnstaffedInWindow retrieves unstaffed events whose valid scheduling
// window intersects [windowStart, windowEnd].
func (s *EventService) GetUnstaffedInWindow(windowStart, windowEnd time.Time) ([]models.Event, error) {
	if windowEnd.Before(windowStart) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	return s.eventRepo.GetUnstaffedInWindow(windowStart, windowEnd)
}
