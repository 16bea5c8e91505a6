package repository

import (
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityOverrideRepository handles database operations for availability overrides
type AvailabilityOverrideRepository struct {
	db *gorm.DB
}

// NewAvailabilityOverrideRepository creates a new availability override repository
func NewAvailabilityOverrideRepository(db *gorm.DB) *AvailabilityOverrideRepository {
	return &AvailabilityOverrideRepository{db: db}
}

// Create creates a new availability override
func (r *AvailabilityOverrideRepository) Create(override *models.AvailabilityOverride) error {
	return r.db.Create(override).Error
}

// GetForDate retrieves the override for an exact date, or
// gorm.ErrRecordNotFound when none exists.
func (r *AvailabilityOverrideRepository) GetForDate(employeeID uuid.UUID, date time.Time) (*models.AvailabilityOverride, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var override models.AvailabilityOverride
	err := r.db.First(&override, "employee_id = ? AND date = ?", employeeID, day).Error
	if err != nil {
		return nil, err
	}
	return &override, nil
}
