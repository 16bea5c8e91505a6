package repository

import (
	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetByEmployeeNumber retrieves an employee by their stable employee number
func (r *EmployeeRepository) GetByEmployeeNumber(number string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "employee_number = ?", number).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees with pagination
func (r *EmployeeRepository) GetAll(limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := r.db.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("employee_number ASC").Limit(limit).Offset(offset).Find(&employees).Error
	return employees, total, err
}

// GetActive retrieves all active employees ordered by employee number.
// The stable order matters for deterministic engine tie-breaks.
func (r *EmployeeRepository) GetActive() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("is_active = ?", true).Order("employee_number ASC").Find(&employees).Error
	return employees, err
}

// Update updates an employee
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}
