package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment returns the default configuration with environment
// overrides applied. Used when no config file is given.
func FromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	switch cfg.Mode {
	case ModeBucket, ModeProcess:
	default:
		return fmt.Errorf("mode: invalid mode %q (must be bucket or process)", cfg.Mode)
	}

	if cfg.OutputDir == "" {
		return errors.New("output_dir: must not be empty")
	}

	if err := validateFileName(cfg.FilePrefix); err != nil {
		return fmt.Errorf("file_prefix: %w", err)
	}

	if cfg.Mode == ModeBucket {
		if err := validateBucket(&cfg.Bucket); err != nil {
			return fmt.Errorf("bucket: %w", err)
		}
	}

	switch cfg.Report {
	case ReportAuto, ReportText, ReportJSON, ReportNone:
	case "":
		cfg.Report = DefaultReport
	default:
		return fmt.Errorf("report: invalid format %q (must be auto, text, json, or none)", cfg.Report)
	}

	return nil
}

func validateBucket(b *BucketConfig) error {
	if b.Other == "" {
		return errors.New("other is required")
	}

	if err := validateFileName(b.Other); err != nil {
		return fmt.Errorf("other: %w", err)
	}

	if b.Other == strconv.Itoa(b.PID) {
		return fmt.Errorf("other %q collides with pid %d", b.Other, b.PID)
	}

	return nil
}

func validateFileName(s string) error {
	if s == "" {
		return errors.New("must not be empty")
	}
	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("%q must not contain a path separator", s)
	}
	return nil
}
