// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration, loadable from a JSON file with
// environment variable overrides. All fields are optional; missing values
// use defaults or must be provided via CLI flags.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key

	// Paths
	DatasetPath string `json:"dataset_path,omitempty"` // Job catalog JSON file

	// Limits
	MaxFileSize int64 `json:"max_file_size,omitempty"` // Upload size limit in bytes
	TopN        int   `json:"top_n,omitempty" validate:"omitempty,gte=1,lte=20"`

	// Auth
	JWTSecret          string `json:"jwt_secret,omitempty"`
	JWTExpirationHours int    `json:"jwt_expiration_hours,omitempty" validate:"omitempty,gte=1"`
	BcryptCost         int    `json:"bcrypt_cost,omitempty" validate:"omitempty,gte=10,lte=14"`
	PasswordPepper     string `json:"password_pepper,omitempty"`

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`
	JSONLogs bool `json:"json_logs,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a config populated from environment variables. Meant to be
// called after godotenv has loaded any .env file.
func FromEnv() Config {
	cfg := Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		DatasetPath:    os.Getenv("JOB_DATASET_PATH"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		PasswordPepper: os.Getenv("PASSWORD_PEPPER"),
	}
	if hours := os.Getenv("JWT_EXPIRATION_HOURS"); hours != "" {
		if parsed, err := strconv.Atoi(hours); err == nil {
			cfg.JWTExpirationHours = parsed
		}
	}
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		if parsed, err := strconv.Atoi(cost); err == nil {
			cfg.BcryptCost = parsed
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("config error: 'max_file_size' must be non-negative")
	}
	if c.DatasetPath != "" {
		if _, err := os.Stat(c.DatasetPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset file not found: %s", c.DatasetPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to apply config file values underneath CLI flags and
// environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatasetPath == "" {
		result.DatasetPath = defaults.DatasetPath
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}
	if result.PasswordPepper == "" {
		result.PasswordPepper = defaults.PasswordPepper
	}
	if result.MaxFileSize == 0 {
		result.MaxFileSize = defaults.MaxFileSize
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.JWTExpirationHours == 0 {
		result.JWTExpirationHours = defaults.JWTExpirationHours
	}
	if result.BcryptCost == 0 {
		result.BcryptCost = defaults.BcryptCost
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags win.

	return result
}
