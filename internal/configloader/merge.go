package configloader

import "github.com/yaklabco/rangelight/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Strings: override overwrites base if override is non-empty
//   - Integers: override overwrites base if override is non-zero
//   - Booleans: override can set but not unset (false is the zero value)
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Lang != "" {
		result.Lang = override.Lang
	}
	if override.BlockPrefix != "" {
		result.BlockPrefix = override.BlockPrefix
	}
	if override.OutDir != "" {
		result.OutDir = override.OutDir
	}
	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.NumberStart != 0 {
		result.NumberStart = override.NumberStart
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans: a CLI flag or config file can turn these on, but a
	// lower-precedence "true" cannot be unset by a higher "false".
	if override.LineNumbers {
		result.LineNumbers = true
	}
	if override.Standalone {
		result.Standalone = true
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
