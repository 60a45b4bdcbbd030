// Package config defines core configuration types for mdsurface.
// These types are pure data structures with no dependency on the loader.
package config

import "github.com/inkfold/mdsurface/pkg/section"

// OutputFormat specifies the output format for CLI results.
type OutputFormat string

const (
	FormatText   OutputFormat = "text"
	FormatTable  OutputFormat = "table"
	FormatJSON   OutputFormat = "json"
	FormatPretty OutputFormat = "pretty"
)

// Theme selects the glamour style used by the preview command.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeNoTTY Theme = "notty"
)

// FoldsConfig controls fold-state persistence.
type FoldsConfig struct {
	// MaxScanLines disables section derivation above this line count.
	// 0 selects the built-in default.
	MaxScanLines int `yaml:"max_scan_lines"`

	// KeyPrefix namespaces fold-state keys in the store.
	KeyPrefix string `yaml:"key_prefix"`

	// StoreDir is the directory fold state persists to. Empty disables
	// persistence.
	StoreDir string `yaml:"store_dir"`
}

// Config is the root configuration structure for mdsurface.
type Config struct {
	// Folds configures fold derivation and persistence.
	Folds FoldsConfig `yaml:"folds"`

	// Theme selects the preview rendering style.
	Theme Theme `yaml:"theme"`

	// Width is the preview wrap width in columns. 0 means detect from the
	// terminal.
	Width int `yaml:"width"`

	// LogLevel sets the logger verbosity: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Watch re-runs the command when the input file changes.
	Watch bool `yaml:"-"`

	// ShowHidden includes hidden ranges in decoration output.
	ShowHidden bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Folds: FoldsConfig{
			MaxScanLines: section.DefaultMaxLines,
			KeyPrefix:    section.DefaultKeyPrefix,
		},
		Theme:    ThemeAuto,
		LogLevel: "info",
		Format:   FormatText,
	}
}
