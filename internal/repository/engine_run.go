package repository

import (
	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EngineRunRepository handles database operations for engine run records
type EngineRunRepository struct {
	db *gorm.DB
}

// NewEngineRunRepository creates a new engine run repository
func NewEngineRunRepository(db *gorm.DB) *EngineRunRepository {
	return &EngineRunRepository{db: db}
}

// Create creates a new engine run record
func (r *EngineRunRepository) Create(run *models.EngineRun) error {
	return r.db.Create(run).Error
}

// GetByID retrieves an engine run by ID
func (r *EngineRunRepository) GetByID(id uuid.UUID) (*models.EngineRun, error) {
	var run models.EngineRun
	err := r.db.First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// GetAll retrieves engine runs with pagination, newest first
func (r *EngineRunRepository) GetAll(limit, offset int) ([]models.EngineRun, int64, error) {
	var runs []models.EngineRun
	var total int64

	if err := r.db.Model(&models.EngineRun{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("started_at DESC").Limit(limit).Offset(offset).Find(&runs).Error
	return runs, total, err
}

// Update updates an engine run record
func (r *EngineRunRepository) Update(run *models.EngineRun) error {
	return r.db.Save(run).Error
}
