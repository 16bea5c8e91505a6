package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Holiday policy values for HOLIDAY_POLICY.
const (
	HolidayPolicyClosed = "closed" // all employees unavailable on company holidays
	HolidayPolicyOpen   = "open"   // holidays do not affect availability
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Scheduling policy
	HolidayPolicy          string `mapstructure:"HOLIDAY_POLICY"`
	SupervisorOffsetHours  int    `mapstructure:"SUPERVISOR_OFFSET_HOURS"`
	MinRestHours           int    `mapstructure:"MIN_REST_HOURS"`
	EngineWindowDays       int    `mapstructure:"ENGINE_WINDOW_DAYS"`
	DefaultEventStartHour  int    `mapstructure:"DEFAULT_EVENT_START_HOUR"`
	HolidayCalendarFile    string `mapstructure:"HOLIDAY_CALENDAR_FILE"`

	// External scheduling system
	SyncBaseURL    string `mapstructure:"SYNC_BASE_URL"`
	SyncUsername   string `mapstructure:"SYNC_USERNAME"`
	SyncPassword   string `mapstructure:"SYNC_PASSWORD"`
	SyncTimeoutSec int    `mapstructure:"SYNC_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "staffing")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Scheduling defaults
	viper.SetDefault("HOLIDAY_POLICY", HolidayPolicyClosed)
	viper.SetDefault("SUPERVISOR_OFFSET_HOURS", 2)
	viper.SetDefault("MIN_REST_HOURS", 12)
	viper.SetDefault("ENGINE_WINDOW_DAYS", 21)
	viper.SetDefault("DEFAULT_EVENT_START_HOUR", 10)
	viper.SetDefault("HOLIDAY_CALENDAR_FILE", "config/holidays.yaml")

	// External sync defaults
	viper.SetDefault("SYNC_BASE_URL", "")
	viper.SetDefault("SYNC_USERNAME", "")
	viper.SetDefault("SYNC_PASSWORD", "")
	viper.SetDefault("SYNC_TIMEOUT_SEC", 15)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.HolidayPolicy != HolidayPolicyClosed && config.HolidayPolicy != HolidayPolicyOpen {
		return fmt.Errorf("HOLIDAY_POLICY must be %q or %q", HolidayPolicyClosed, HolidayPolicyOpen)
	}

	if config.SupervisorOffsetHours < 0 {
		return fmt.Errorf("SUPERVISOR_OFFSET_HOURS must not be negative")
	}

	if config.EngineWindowDays < 1 {
		return fmt.Errorf("ENGINE_WINDOW_DAYS must be at least 1")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
