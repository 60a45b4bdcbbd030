package configloader

import (
	"fmt"
	"strings"

	"github.com/inkfold/mdsurface/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "folds.max_scan_lines").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// knownThemes lists valid theme values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownThemes = map[config.Theme]bool{
	config.ThemeAuto:  true,
	config.ThemeDark:  true,
	config.ThemeLight: true,
	config.ThemeNoTTY: true,
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:   true,
	config.FormatTable:  true,
	config.FormatJSON:   true,
	config.FormatPretty: true,
}

// knownLogLevels lists valid log level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Theme != "" && !knownThemes[cfg.Theme] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "theme",
			Value:   cfg.Theme,
			Message: fmt.Sprintf("invalid theme %q; must be one of: auto, dark, light, notty", cfg.Theme),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json, pretty", cfg.Format),
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[cfg.LogLevel] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Width < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "width",
			Value:   cfg.Width,
			Message: "width must be >= 0 (0 means detect from terminal)",
		})
	}

	if cfg.Folds.MaxScanLines < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "folds.max_scan_lines",
			Value:   cfg.Folds.MaxScanLines,
			Message: "folds.max_scan_lines must be >= 0 (0 means default)",
		})
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidTheme returns true if the theme is valid.
func IsValidTheme(t config.Theme) bool {
	return knownThemes[t]
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
