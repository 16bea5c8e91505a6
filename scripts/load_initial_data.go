package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database"
	"staffing-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type EmployeeData struct {
	EmployeeNumber         string   `yaml:"employee_number"`
	FirstName              string   `yaml:"first_name"`
	LastName               string   `yaml:"last_name"`
	Email                  string   `yaml:"email,omitempty"`
	PhoneNumber            string   `yaml:"phone_number,omitempty"`
	IsActive               *bool    `yaml:"is_active,omitempty"`
	CanJuicer              bool     `yaml:"can_juicer"`
	CanPrimaryLead         bool     `yaml:"can_primary_lead"`
	DisallowedEventTypes   []string `yaml:"disallowed_event_types,omitempty"`
	MaxEventsPerDay        int      `yaml:"max_events_per_day,omitempty"`
	MaxEventsPerWeek       int      `yaml:"max_events_per_week,omitempty"`
	PreferredEventsPerWeek int      `yaml:"preferred_events_per_week,omitempty"`
	PreferredTimeOfDay     string   `yaml:"preferred_time_of_day,omitempty"`
	AvailableDays          []string `yaml:"available_days,omitempty"`
}

type EventData struct {
	RefNum           string `yaml:"ref_num"`
	DisplayName      string `yaml:"display_name"`
	EventType        string `yaml:"event_type"`
	StartWindow      string `yaml:"start_window"`
	DueDate          string `yaml:"due_date"`
	EstimatedMinutes int    `yaml:"estimated_minutes,omitempty"`
}

type RotationData struct {
	Date           string `yaml:"date"`
	Category       string `yaml:"category"`
	EmployeeNumber string `yaml:"employee_number"`
}

type HolidayData struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// File structures
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type EventsFile struct {
	Events []EventData `yaml:"events"`
}

type RotationsFile struct {
	Rotations []RotationData `yaml:"rotations"`
}

type HolidaysFile struct {
	Holidays []HolidayData `yaml:"holidays"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress SQL noise and "record not found" logs during loading
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	events, err := loadEvents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	rotations, err := loadRotations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load rotations: %w", err)
	}

	holidays, err := loadHolidays(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}

	// Create employees first; rotations reference them by employee number.
	employeeMap := make(map[string]*models.Employee)
	employeeCreated := 0
	for _, employeeData := range employees {
		employee, created, err := createEmployee(db, employeeData)
		if err != nil {
			return fmt.Errorf("failed to create employee %s: %w", employeeData.EmployeeNumber, err)
		}
		employeeMap[employeeData.EmployeeNumber] = employee
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(employees))

	eventCreated := 0
	for _, eventData := range events {
		created, err := createEvent(db, eventData)
		if err != nil {
			return fmt.Errorf("failed to create event %s: %w", eventData.RefNum, err)
		}
		if created {
			eventCreated++
		}
	}
	log.Printf("📋 Events: %d created, %d total", eventCreated, len(events))

	rotationCreated := 0
	for _, rotationData := range rotations {
		created, err := createRotation(db, rotationData, employeeMap)
		if err != nil {
			return fmt.Errorf("failed to create rotation %s/%s: %w", rotationData.Date, rotationData.Category, err)
		}
		if created {
			rotationCreated++
		}
	}
	log.Printf("📋 Rotations: %d created, %d total", rotationCreated, len(rotations))

	holidayCreated := 0
	for _, holidayData := range holidays {
		created, err := createHoliday(db, holidayData)
		if err != nil {
			return fmt.Errorf("failed to create holiday %s: %w", holidayData.Date, err)
		}
		if created {
			holidayCreated++
		}
	}
	log.Printf("📋 Holidays: %d created, %d total", holidayCreated, len(holidays))

	return nil
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var allEmployees []EmployeeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "employees") {
			var file EmployeesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEmployees = append(allEmployees, file.Employees...)
		}
		return nil
	})

	return allEmployees, err
}

func loadEvents(dataDir string) ([]EventData, error) {
	var allEvents []EventData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "events") {
			var file EventsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEvents = append(allEvents, file.Events...)
		}
		return nil
	})

	return allEvents, err
}

func loadRotations(dataDir string) ([]RotationData, error) {
	var allRotations []RotationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "rotations") {
			var file RotationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allRotations = append(allRotations, file.Rotations...)
		}
		return nil
	})

	return allRotations, err
}

func loadHolidays(dataDir string) ([]HolidayData, error) {
	var allHolidays []HolidayData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "holidays") {
			var file HolidaysFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allHolidays = append(allHolidays, file.Holidays...)
		}
		return nil
	})

	return allHolidays, err
}

func createEmployee(db *gorm.DB, employeeData EmployeeData) (*models.Employee, bool, error) {
	var employee models.Employee
	if err := db.Where("employee_number = ?", employeeData.EmployeeNumber).First(&employee).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, err
		}

		active := true
		if employeeData.IsActive != nil {
			active = *employeeData.IsActive
		}

		timeOfDay := models.TimeOfDayAny
		if employeeData.PreferredTimeOfDay != "" {
			timeOfDay = models.TimeOfDay(employeeData.PreferredTimeOfDay)
			if !timeOfDay.IsValid() {
				return nil, false, fmt.Errorf("invalid preferred_time_of_day %q", employeeData.PreferredTimeOfDay)
			}
		}

		disallowed := models.EventTypeList{}
		for _, entry := range employeeData.DisallowedEventTypes {
			eventType := models.EventType(entry)
			if !eventType.IsValid() {
				return nil, false, fmt.Errorf("invalid disallowed event type %q", entry)
			}
			disallowed = append(disallowed, eventType)
		}

		availability, err := weeklyAvailabilityFrom(employeeData.AvailableDays)
		if err != nil {
			return nil, false, err
		}

		employee = models.Employee{
			EmployeeNumber:         employeeData.EmployeeNumber,
			FirstName:              employeeData.FirstName,
			LastName:               employeeData.LastName,
			Email:                  employeeData.Email,
			PhoneNumber:            employeeData.PhoneNumber,
			IsActive:               active,
			CanJuicer:              employeeData.CanJuicer,
			CanPrimaryLead:         employeeData.CanPrimaryLead,
			DisallowedEventTypes:   disallowed,
			MaxEventsPerDay:        valueOrDefault(employeeData.MaxEventsPerDay, 2),
			MaxEventsPerWeek:       valueOrDefault(employeeData.MaxEventsPerWeek, 5),
			PreferredEventsPerWeek: employeeData.PreferredEventsPerWeek,
			PreferredTimeOfDay:     timeOfDay,
			WeeklyAvailability:     availability,
		}
		if err := db.Create(&employee).Error; err != nil {
			return nil, false, err
		}
		return &employee, true, nil
	}
	return &employee, false, nil
}

func createEvent(db *gorm.DB, eventData EventData) (bool, error) {
	var event models.Event
	if err := db.Where("ref_num = ?", eventData.RefNum).First(&event).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return false, err
		}

		eventType := models.EventType(eventData.EventType)
		if !eventType.IsValid() {
			return false, fmt.Errorf("invalid event type %q", eventData.EventType)
		}

		startWindow, err := parseDate(eventData.StartWindow)
		if err != nil {
			return false, fmt.Errorf("invalid start_window: %w", err)
		}
		dueDate, err := parseDate(eventData.DueDate)
		if err != nil {
			return false, fmt.Errorf("invalid due_date: %w", err)
		}

		event = models.Event{
			RefNum:           eventData.RefNum,
			DisplayName:      eventData.DisplayName,
			EventType:        eventType,
			StartWindow:      startWindow,
			DueDate:          dueDate,
			EstimatedMinutes: valueOrDefault(eventData.EstimatedMinutes, 120),
			Status:           models.EventStatusUnstaffed,
		}
		if err := db.Create(&event).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func createRotation(db *gorm.DB, rotationData RotationData, employeeMap map[string]*models.Employee) (bool, error) {
	employee, ok := employeeMap[rotationData.EmployeeNumber]
	if !ok {
		return false, fmt.Errorf("unknown employee number %q", rotationData.EmployeeNumber)
	}

	category := models.RotationCategory(rotationData.Category)
	if !category.IsValid() {
		return false, fmt.Errorf("invalid rotation category %q", rotationData.Category)
	}

	date, err := parseDate(rotationData.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date: %w", err)
	}

	var rotation models.RotationAssignment
	if err := db.Where("date = ? AND category = ?", date, category).First(&rotation).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return false, err
		}

		rotation = models.RotationAssignment{
			Date:       date,
			Category:   category,
			EmployeeID: employee.ID,
		}
		if err := db.Create(&rotation).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func createHoliday(db *gorm.DB, holidayData HolidayData) (bool, error) {
	date, err := parseDate(holidayData.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date: %w", err)
	}

	var holiday models.CompanyHoliday
	if err := db.Where("date = ?", date).First(&holiday).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return false, err
		}

		holiday = models.CompanyHoliday{Date: date, Name: holidayData.Name}
		if err := db.Create(&holiday).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// weeklyAvailabilityFrom builds the pattern from weekday names. An empty list
// means available every day.
func weeklyAvailabilityFrom(days []string) (models.WeeklyAvailability, error) {
	var week models.WeeklyAvailability
	if len(days) == 0 {
		for i := range week {
			week[i] = models.DaySlot{Available: true}
		}
		return week, nil
	}

	names := map[string]int{
		"sunday":    0,
		"monday":    1,
		"tuesday":   2,
		"wednesday": 3,
		"thursday":  4,
		"friday":    5,
		"saturday":  6,
	}
	for _, day := range days {
		index, ok := names[strings.ToLower(day)]
		if !ok {
			return week, fmt.Errorf("invalid weekday %q", day)
		}
		week[index] = models.DaySlot{Available: true}
	}
	return week, nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func valueOrDefault(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}
