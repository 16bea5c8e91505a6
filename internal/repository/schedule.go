package repository

import (
	"time"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleRepository handles database operations for schedules
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create creates a new schedule
func (r *ScheduleRepository) Create(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a schedule by ID with its event and employee preloaded
func (r *ScheduleRepository) GetByID(id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.Preload("Event").Preload("Employee").First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetActiveByEventID retrieves the active schedule for an event
func (r *ScheduleRepository) GetActiveByEventID(eventID uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.Preload("Event").Preload("Employee").First(&schedule, "event_id = ?", eventID).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetByEmployeeAndDate retrieves an employee's schedules starting on the given
// calendar date, events preloaded, earliest first.
func (r *ScheduleRepository) GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) ([]models.Schedule, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var schedules []models.Schedule
	err := r.db.Preload("Event").
		Where("employee_id = ? AND start_datetime >= ? AND start_datetime < ?", employeeID, dayStart, dayEnd).
		Order("start_datetime ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetByEmployeeBetween retrieves an employee's schedules in [from, to)
func (r *ScheduleRepository) GetByEmployeeBetween(employeeID uuid.UUID, from, to time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("Event").
		Where("employee_id = ? AND start_datetime >= ? AND start_datetime < ?", employeeID, from, to).
		Order("start_datetime ASC").
		Find(&schedules).Error
	return schedules, err
}

// CountActiveOnDate counts an employee's active schedules on a calendar date
func (r *ScheduleRepository) CountActiveOnDate(employeeID uuid.UUID, date time.Time) (int64, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	err := r.db.Model(&models.Schedule{}).
		Where("employee_id = ? AND start_datetime >= ? AND start_datetime < ?", employeeID, dayStart, dayEnd).
		Count(&count).Error
	return count, err
}

// CountActiveInRange counts an employee's active schedules in [from, to)
func (r *ScheduleRepository) CountActiveInRange(employeeID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Schedule{}).
		Where("employee_id = ? AND start_datetime >= ? AND start_datetime < ?", employeeID, from, to).
		Count(&count).Error
	return count, err
}

// CountActiveBetweenForEmployees counts active schedules per employee in
// [from, to). Used by the engine to order candidates by current workload.
func (r *ScheduleRepository) CountActiveBetweenForEmployees(from, to time.Time) (map[uuid.UUID]int64, error) {
	type row struct {
		EmployeeID uuid.UUID
		Total      int64
	}
	var rows []row
	err := r.db.Model(&models.Schedule{}).
		Select("employee_id, COUNT(*) AS total").
		Where("start_datetime >= ? AND start_datetime < ?", from, to).
		Group("employee_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.EmployeeID] = r.Total
	}
	return counts, nil
}

// Update updates a schedule
func (r *ScheduleRepository) Update(schedule *models.Schedule) error {
	return r.db.Save(schedule).Error
}

// UpdateVersioned updates a schedule guarded by its optimistic version stamp.
// A stale version yields a ConcurrentModificationError.
func (r *ScheduleRepository) UpdateVersioned(schedule *models.Schedule) error {
	current := schedule.Version
	schedule.Version = current + 1

	result := r.db.Model(&models.Schedule{}).
		Where("id = ? AND version = ?", schedule.ID, current).
		Updates(map[string]interface{}{
			"employee_id":    schedule.EmployeeID,
			"start_datetime": schedule.StartDatetime,
			"external_id":    schedule.ExternalID,
			"version":        schedule.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConcurrentModificationError("schedule")
	}
	return nil
}

// Delete deletes a schedule
func (r *ScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Schedule{}, "id = ?", id).Error
}
