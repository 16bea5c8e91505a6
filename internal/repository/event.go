package repository

import (
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByRefNum retrieves an event by its external reference number
func (r *EventRepository) GetByRefNum(refNum string) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "ref_num = ?", refNum).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves all events with pagination
func (r *EventRepository) GetAll(limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	if err := r.db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("due_date ASC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// GetUnstaffedInWindow retrieves unstaffed events whose valid scheduling
// window intersects [windowStart, windowEnd], tightest due date first.
func (r *EventRepository) GetUnstaffedInWindow(windowStart, windowEnd time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.
		Where("status = ?", models.EventStatusUnstaffed).
		Where("start_window <= ? AND due_date >= ?", windowEnd, windowStart).
		Order("due_date ASC, ref_num ASC").
		Find(&events).Error
	return events, err
}

// FindByEventNumber retrieves events whose display name contains the given
// event-number token, in a stable order. Callers re-parse the display names;
// the ILIKE match only narrows the candidate set.
func (r *EventRepository) FindByEventNumber(number string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.
		Where("display_name ILIKE ?", "%"+number+"%").
		Order("display_name ASC, ref_num ASC").
		Find(&events).Error
	return events, err
}

// Update updates an event
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}
