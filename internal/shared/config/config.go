package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultStaffSheet = "Staff Data"
	DefaultScaleSheet = "20-21 Salary Scale"
)

type WorkbookOptions struct {
	Path       string `env:"WORKBOOK_PATH" envDefault:"Data Specialist Perf Task.xlsx"`
	StaffSheet string `env:"STAFF_SHEET" envDefault:"Staff Data"`
	ScaleSheet string `env:"SCALE_SHEET" envDefault:"20-21 Salary Scale"`

	// Loading at startup is best effort; uploads can replace it later.
	LoadOnStart bool `env:"WORKBOOK_LOAD_ON_START" envDefault:"true"`

	// Zero disables polling the file for changes.
	PollInterval time.Duration `env:"WORKBOOK_POLL_INTERVAL" envDefault:"0s"`
}

type ServerOptions struct {
	Port         string        `env:"PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

type UploadOptions struct {
	MaxBytes   int64   `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	RatePerSec float64 `env:"UPLOAD_RATE_PER_SEC" envDefault:"0.2"`
	Burst      int     `env:"UPLOAD_BURST" envDefault:"2"`
	ReadRate   float64 `env:"READ_RATE_PER_SEC" envDefault:"20"`
	ReadBurst  int     `env:"READ_BURST" envDefault:"40"`
}

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Server   ServerOptions
	Workbook WorkbookOptions
	Upload   UploadOptions
}

// Load reads the given .env files (missing ones are skipped) and parses the
// environment into a Config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("load env files: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Workbook.StaffSheet == "" || c.Workbook.ScaleSheet == "" {
		return errors.New("STAFF_SHEET and SCALE_SHEET must not be empty")
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	if c.Workbook.PollInterval < 0 {
		return errors.New("WORKBOOK_POLL_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
