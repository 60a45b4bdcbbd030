package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/inkfold/mdsurface/pkg/config"
)

// envVarPrefix is the prefix for all mdsurface environment variables.
const envVarPrefix = "MDSURFACE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"THEME":                {field: "theme", typ: envTypeString},
	"WIDTH":                {field: "width", typ: envTypeInt},
	"LOG_LEVEL":            {field: "log_level", typ: envTypeString},
	"FORMAT":               {field: "format", typ: envTypeString},
	"FOLDS_MAX_SCAN_LINES": {field: "folds.max_scan_lines", typ: envTypeInt},
	"FOLDS_KEY_PREFIX":     {field: "folds.key_prefix", typ: envTypeString},
	"FOLDS_STORE_DIR":      {field: "folds.store_dir", typ: envTypeString},
	"WATCH":                {field: "watch", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDSURFACE_ (e.g., MDSURFACE_THEME).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "theme":
		cfg.Theme = config.Theme(value)
	case "log_level":
		cfg.LogLevel = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "folds.key_prefix":
		cfg.Folds.KeyPrefix = value
	case "folds.store_dir":
		cfg.Folds.StoreDir = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "watch":
		cfg.Watch = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "width":
		cfg.Width = value
	case "folds.max_scan_lines":
		cfg.Folds.MaxScanLines = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MDSURFACE_THEME":                "Preview theme: auto, dark, light, or notty",
		"MDSURFACE_WIDTH":                "Preview wrap width in columns (0 = detect)",
		"MDSURFACE_LOG_LEVEL":            "Log level: debug, info, warn, or error",
		"MDSURFACE_FORMAT":               "Output format: text, table, json, or pretty",
		"MDSURFACE_FOLDS_MAX_SCAN_LINES": "Disable folding above this line count (0 = default)",
		"MDSURFACE_FOLDS_KEY_PREFIX":     "Fold-state key prefix in the store",
		"MDSURFACE_FOLDS_STORE_DIR":      "Directory fold state persists to",
		"MDSURFACE_WATCH":                "Re-run on file changes: true or false",
	}
}
