package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/rangelight/pkg/config"
)

// envVarPrefix is the prefix for all rangelight environment variables.
const envVarPrefix = "RANGELIGHT_"

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
	"THEME":        {field: "theme", typ: envTypeString},
	"LANG":         {field: "lang", typ: envTypeString},
	"LINE_NUMBERS": {field: "line_numbers", typ: envTypeBool},
	"NUMBER_START": {field: "number_start", typ: envTypeInt},
	"BLOCK_PREFIX": {field: "block_prefix", typ: envTypeString},
	"OUT_DIR":      {field: "out_dir", typ: envTypeString},
	"FLAVOR":       {field: "flavor", typ: envTypeString},
	"JOBS":         {field: "jobs", typ: envTypeInt},
	"STANDALONE":   {field: "standalone", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with RANGELIGHT_ (e.g., RANGELIGHT_THEME).
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
		cfg.Theme = value
	case "lang":
		cfg.Lang = value
	case "block_prefix":
		cfg.BlockPrefix = value
	case "out_dir":
		cfg.OutDir = value
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "line_numbers":
		cfg.LineNumbers = value
	case "standalone":
		cfg.Standalone = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "number_start":
		cfg.NumberStart = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"RANGELIGHT_THEME":        "Color theme for rendered blocks",
		"RANGELIGHT_LANG":         "Default language (auto = detect from content)",
		"RANGELIGHT_LINE_NUMBERS": "Enable line numbering: true or false",
		"RANGELIGHT_NUMBER_START": "First line number when numbering is enabled",
		"RANGELIGHT_BLOCK_PREFIX": "Prefix for generated block element ids",
		"RANGELIGHT_OUT_DIR":      "Directory rendered artifacts are written to",
		"RANGELIGHT_FLAVOR":       "Markdown flavor: commonmark or gfm",
		"RANGELIGHT_JOBS":         "Number of parallel workers (0 = auto)",
		"RANGELIGHT_STANDALONE":   "Emit self-contained HTML documents: true or false",
	}
}
