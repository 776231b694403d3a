// Package config provides configuration loading and validation for tracesplit.
package config

// Mode selects how trace lines are grouped into output files.
type Mode string

const (
	// ModeBucket routes one process identifier to its own file and every
	// other identifier to a second file.
	ModeBucket Mode = "bucket"

	// ModeProcess writes one file per distinct process identifier.
	ModeProcess Mode = "process"
)

// ReportFormat selects how the run report is printed.
type ReportFormat string

const (
	// ReportAuto prints the process identifiers in process mode and nothing
	// in bucket mode.
	ReportAuto ReportFormat = "auto"
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
	ReportNone ReportFormat = "none"
)

// Config is the root configuration structure loaded from YAML or TOML.
type Config struct {
	// Mode is the grouping mode (bucket or process).
	Mode Mode `yaml:"mode" toml:"mode"`

	// OutputDir is where stat files are written.
	OutputDir string `yaml:"output_dir" toml:"output_dir"`

	// FilePrefix is prepended to each group suffix to form the file name.
	FilePrefix string `yaml:"file_prefix" toml:"file_prefix"`

	// Bucket configures bucket mode.
	Bucket BucketConfig `yaml:"bucket" toml:"bucket"`

	// Report is the report format printed after a run.
	Report ReportFormat `yaml:"report" toml:"report"`
}

// BucketConfig defines the two-way split used in bucket mode.
type BucketConfig struct {
	// PID is the process identifier that gets its own file.
	PID int `yaml:"pid" toml:"pid"`

	// Other is the file suffix shared by every other process identifier.
	Other string `yaml:"other" toml:"other"`
}
