package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/erca/internal/curriculum"
	"github.com/alexanderramin/erca/internal/scheduler"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the per-deployment settings of the planner.
type Config struct {
	// DBPath is the SQLite file holding imported curriculum sources.
	// Empty means ~/.erca/erca.db.
	DBPath string `env:"ERCA_DB"`

	// AreaCode is the leading letter of skill codes ("M" for mathematics).
	AreaCode string `env:"ERCA_AREA_CODE" env-default:"M"`
	// BGUPrefixes is a comma list of code prefixes accepted for the advanced
	// track. Empty leaves that track unfiltered.
	BGUPrefixes string `env:"ERCA_BGU_PREFIXES"`

	MinDuration     int `env:"ERCA_MIN_DURATION" env-default:"20"`
	MaxDuration     int `env:"ERCA_MAX_DURATION" env-default:"200"`
	DefaultDuration int `env:"ERCA_DEFAULT_DURATION" env-default:"40"`

	LogUseCases bool   `env:"ERCA_LOG_USE_CASES" env-default:"false"`
	HTTPAddr    string `env:"ERCA_HTTP_ADDR" env-default:":8080"`
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		AreaCode:        "M",
		MinDuration:     scheduler.DefaultBounds.MinMin,
		MaxDuration:     scheduler.DefaultBounds.MaxMin,
		DefaultDuration: 40,
		HTTPAddr:        ":8080",
	}
}

// Load reads the configuration from the environment over Default.
func Load() (Config, error) {
	cfg := Default()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot work with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.AreaCode) == "" {
		errs = append(errs, fmt.Errorf("ERCA_AREA_CODE must not be empty"))
	}
	if c.MinDuration < 0 {
		errs = append(errs, fmt.Errorf("ERCA_MIN_DURATION must be >= 0, got %d", c.MinDuration))
	}
	if c.MaxDuration < c.MinDuration {
		errs = append(errs, fmt.Errorf("ERCA_MAX_DURATION (%d) must be >= ERCA_MIN_DURATION (%d)", c.MaxDuration, c.MinDuration))
	}
	if c.DefaultDuration <= 0 {
		errs = append(errs, fmt.Errorf("ERCA_DEFAULT_DURATION must be positive, got %d", c.DefaultDuration))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Bounds returns the lesson length range.
func (c Config) Bounds() scheduler.Bounds {
	return scheduler.Bounds{MinMin: c.MinDuration, MaxMin: c.MaxDuration}
}

// Taxonomy builds the prefix filter for the configured area.
func (c Config) Taxonomy() *curriculum.Taxonomy {
	return curriculum.NewTaxonomy(curriculum.DefaultPrefixRules(strings.TrimSpace(c.AreaCode), strings.Split(c.BGUPrefixes, ",")...))
}

// ResolveDBPath returns DBPath, defaulting to ~/.erca/erca.db.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".erca", "erca.db"), nil
}
