package config

import (
	"os"
)

// Default values for configuration.
const (
	DefaultMode       = ModeBucket
	DefaultOutputDir  = "."
	DefaultFilePrefix = "stat_"
	DefaultBucketPID  = 3
	DefaultBucketRest = "4"
	DefaultReport     = ReportAuto
)

// Environment variable names.
const (
	EnvMode      = "TRACESPLIT_MODE"
	EnvOutputDir = "TRACESPLIT_OUTPUT_DIR"
)

// DefaultConfig returns a configuration that reproduces the stat_3/stat_4 split.
func DefaultConfig() *Config {
	return &Config{
		Mode:       DefaultMode,
		OutputDir:  DefaultOutputDir,
		FilePrefix: DefaultFilePrefix,
		Bucket: BucketConfig{
			PID:   DefaultBucketPID,
			Other: DefaultBucketRest,
		},
		Report: DefaultReport,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if mode := os.Getenv(EnvMode); mode != "" {
		c.Mode = Mode(mode)
	}
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputDir = dir
	}
}
