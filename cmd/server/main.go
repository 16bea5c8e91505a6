package main

import (
	"log"
	"os"
	"time"

	"staffing-backend/internal/api/routes"
	"staffing-backend/internal/config"
	"staffing-backend/internal/database"
	"staffing-backend/internal/database/models"
	"staffing-backend/internal/repository"
	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Seed the company holiday calendar
	if err := loadHolidayCalendar(db, cfg.HolidayCalendarFile); err != nil {
		logrus.Warnf("Holiday calendar load failed: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	sync := service.NewSyncClient(cfg)
	router := routes.SetupRoutes(db, cfg, sync)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

type holidayCalendar struct {
	Holidays []struct {
		Date string `yaml:"date"`
		Name string `yaml:"name"`
	} `yaml:"holidays"`
}

// loadHolidayCalendar upserts the configured holiday YAML file into the
// company_holidays table. A missing file is not an error.
func loadHolidayCalendar(db *gorm.DB, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Infof("No holiday calendar at %s, skipping", path)
			return nil
		}
		return err
	}

	var calendar holidayCalendar
	if err := yaml.Unmarshal(data, &calendar); err != nil {
		return err
	}

	repo := repository.NewCompanyHolidayRepository(db)
	for _, entry := range calendar.Holidays {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			logrus.Warnf("Skipping holiday %q: bad date %q", entry.Name, entry.Date)
			continue
		}
		if err := repo.FirstOrCreate(&models.CompanyHoliday{Date: date, Name: entry.Name}); err != nil {
			return err
		}
	}
	logrus.Infof("Loaded %d company holidays", len(calendar.Holidays))
	return nil
}
