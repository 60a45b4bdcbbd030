package configloader

import "github.com/inkfold/mdsurface/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	if override.Folds.MaxScanLines != 0 {
		result.Folds.MaxScanLines = override.Folds.MaxScanLines
	}
	if override.Folds.KeyPrefix != "" {
		result.Folds.KeyPrefix = override.Folds.KeyPrefix
	}
	if override.Folds.StoreDir != "" {
		result.Folds.StoreDir = override.Folds.StoreDir
	}

	// Booleans: false is the zero value, so a config file cannot unset a
	// true from a lower-precedence source.
	if override.Watch {
		result.Watch = override.Watch
	}
	if override.ShowHidden {
		result.ShowHidden = override.ShowHidden
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
