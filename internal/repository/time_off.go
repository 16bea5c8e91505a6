package repository

import (
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOffRepository handles database operations for time-off requests
type TimeOffRepository struct {
	db *gorm.DB
}

// NewTimeOffRepository creates a new time-off repository
func NewTimeOffRepository(db *gorm.DB) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

// Create creates a new time-off request
func (r *TimeOffRepository) Create(request *models.TimeOffRequest) error {
	return r.db.Create(request).Error
}

// GetApprovedForDate retrieves approved time-off ranges containing the date
func (r *TimeOffRepository) GetApprovedForDate(employeeID uuid.UUID, date time.Time) ([]models.TimeOffRequest, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var requests []models.TimeOffRequest
	err := r.db.
		Where("employee_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			employeeID, models.TimeOffStatusApproved, day, day).
		Find(&requests).Error
	return requests, err
}

// GetByEmployeeID retrieves all time-off requests for an employee
func (r *TimeOffRepository) GetByEmployeeID(employeeID uuid.UUID, limit, offset int) ([]models.TimeOffRequest, int64, error) {
	var requests []models.TimeOffRequest
	var total int64

	if err := r.db.Model(&models.TimeOffRequest{}).Where("employee_id = ?", employeeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	return requests, total, err
}
