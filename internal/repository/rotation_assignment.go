package repository

import (
	"time"

	"staffing-backend/internal/database/models"

	"gorm.io/gorm"
)

// RotationAssignmentRepository handles database operations for rotation assignments
type RotationAssignmentRepository struct {
	db *gorm.DB
}

// NewRotationAssignmentRepository creates a new rotation assignment repository
func NewRotationAssignmentRepository(db *gorm.DB) *RotationAssignmentRepository {
	return &RotationAssignmentRepository{db: db}
}

// GetByDateAndCategory retrieves the designated rotation employee for a date,
// or gorm.ErrRecordNotFound when no one is designated.
func (r *RotationAssignmentRepository) GetByDateAndCategory(date time.Time, category models.RotationCategory) (*models.RotationAssignment, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var assignment models.RotationAssignment
	err := r.db.Preload("Employee").
		First(&assignment, "date = ? AND category = ?", day, category).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Create creates a new rotation assignment
func (r *RotationAssignmentRepository) Create(assignment *models.RotationAssignment) error {
	return r.db.Create(assignment).Error
}
