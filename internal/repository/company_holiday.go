package repository

import (
	"time"

	"staffing-backend/internal/database/models"

	"gorm.io/gorm"
)

// CompanyHolidayRepository handles database operations for company holidays
type CompanyHolidayRepository struct {
	db *gorm.DB
}

// NewCompanyHolidayRepository creates a new company holiday repository
func NewCompanyHolidayRepository(db *gorm.DB) *CompanyHolidayRepository {
	return &CompanyHolidayRepository{db: db}
}

// IsHoliday reports whether the date is a company holiday
func (r *CompanyHolidayRepository) IsHoliday(date time.Time) (bool, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var count int64
	err := r.db.Model(&models.CompanyHoliday{}).Where("date = ?", day).Count(&count).Error
	return count > 0, err
}

// FirstOrCreate inserts the holiday unless one already exists for the date
func (r *CompanyHolidayRepository) FirstOrCreate(holiday *models.CompanyHoliday) error {
	return r.db.Where("date = ?", holiday.Date).FirstOrCreate(holiday).Error
}

// GetAll retrieves all company holidays ordered by date
func (r *CompanyHolidayRepository) GetAll() ([]models.CompanyHoliday, error) {
	var holidays []models.CompanyHoliday
	err := r.db.Order("date ASC").Find(&holidays).Error
	return holidays, err
}
