// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/roster-summary/internal/schemas"
)

// Environment variables read by ApplyEnv.
const (
	EnvRosterPath = "ROSTER_PATH"
	EnvReportPath = "REPORT_PATH"
	EnvDelimiter  = "ROSTER_DELIMITER"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional in the file; missing values come from the
// environment, CLI flags or defaults.
type Config struct {
	RosterPath string `json:"roster_path,omitempty" validate:"required"`     // Path to the roster CSV file
	ReportPath string `json:"report_path,omitempty" validate:"required"`     // Path the report is written to
	Delimiter  string `json:"delimiter,omitempty" validate:"required,len=1"` // Roster field separator
	Verbose    bool   `json:"verbose,omitempty"`                             // Print load and export summaries
}

// ConfigError represents an invalid configuration
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Defaults returns the built-in configuration: the roster is read from
// Corp_Summary.csv and the report written to Report.csv.
func Defaults() Config {
	return Config{
		RosterPath: "Corp_Summary.csv",
		ReportPath: "Report.csv",
		Delimiter:  ";",
	}
}

// LoadConfig loads configuration from a JSON file. Files that decode but do
// not match the shipped config schema (unknown keys, wrong types) are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	if err := schemas.ValidateConfig(data); err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("%s does not match schema", path), Cause: err}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from environment variables that are set and
// non-empty. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvRosterPath); ok && v != "" {
		c.RosterPath = v
	}
	if v, ok := lookup(EnvReportPath); ok && v != "" {
		c.ReportPath = v
	}
	if v, ok := lookup(EnvDelimiter); ok && v != "" {
		c.Delimiter = v
	}
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.RosterPath == "" {
		result.RosterPath = defaults.RosterPath
	}
	if result.ReportPath == "" {
		result.ReportPath = defaults.ReportPath
	}
	if result.Delimiter == "" {
		result.Delimiter = defaults.Delimiter
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Validate checks that all required fields are set and well formed.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ConfigError{Message: "validation failed", Cause: err}
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return &ConfigError{Message: strings.Join(problems, ", ")}
}

// DelimiterRune returns the delimiter as a rune. It assumes Validate passed.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// String renders the config for verbose output.
func (c Config) String() string {
	return fmt.Sprintf("roster=%s report=%s delimiter=%s verbose=%s",
		c.RosterPath, c.ReportPath, strconv.Quote(c.Delimiter), strconv.FormatBool(c.Verbose))
}
