package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "repl.history_size")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of built-in TUI themes
func ValidThemes() []string {
	return []string{"default", "mono"}
}

// Upper bounds that keep a typo from exhausting memory.
const (
	maxHistorySize    = 100000
	maxOutputLines    = 100000
	maxLogSizeMB      = 1024
	maxLogBackupFiles = 100
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateREPL()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateREPL validates the REPLConfig
func (c *Config) validateREPL() []ValidationError {
	var errors []ValidationError

	if strings.ContainsAny(c.REPL.Prompt, "\r\n") {
		errors = append(errors, ValidationError{
			Field:   "repl.prompt",
			Value:   c.REPL.Prompt,
			Message: "must not contain line breaks",
		})
	}

	errors = append(errors, checkRange("repl.history_size", c.REPL.HistorySize, 0, maxHistorySize)...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	errors = append(errors, checkRange("tui.max_output_lines", c.TUI.MaxOutputLines, 0, maxOutputLines)...)

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	errors = append(errors, checkRange("logging.max_size_mb", c.Logging.MaxSizeMB, 0, maxLogSizeMB)...)
	errors = append(errors, checkRange("logging.max_backups", c.Logging.MaxBackups, 0, maxLogBackupFiles)...)

	if c.Logging.Enabled && c.Logging.Dir == "" {
		errors = append(errors, ValidationError{
			Field:   "logging.dir",
			Value:   c.Logging.Dir,
			Message: "must be set when logging is enabled",
		})
	}

	return errors
}

func checkRange(field string, value, lo, hi int) []ValidationError {
	switch {
	case value < lo:
		return []ValidationError{{
			Field:   field,
			Value:   value,
			Message: "must be non-negative",
		}}
	case value > hi:
		return []ValidationError{{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("exceeds maximum of %d", hi),
		}}
	}
	return nil
}
