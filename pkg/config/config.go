// Package config defines core configuration types for rangelight.
// These types are pure data structures with no dependency on config
// loaders or the rendering engine.
package config

// Flavor specifies the Markdown flavor used when rendering documents.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is supported.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// DefaultTheme is the color theme applied when none is configured.
const DefaultTheme = "github-dark"

// LangAuto selects content-based language detection.
const LangAuto = "auto"

// Config is the root configuration structure for rangelight.
type Config struct {
	// Theme is the color theme applied to rendered blocks.
	Theme string `mapstructure:"theme" yaml:"theme"`

	// Lang is the language assumed for input that does not name one.
	// "auto" selects content-based detection.
	Lang string `mapstructure:"lang" yaml:"lang"`

	// LineNumbers enables line numbering on every block.
	LineNumbers bool `mapstructure:"line_numbers" yaml:"line_numbers"`

	// NumberStart is the first line number when numbering is enabled.
	NumberStart int `mapstructure:"number_start" yaml:"number_start"`

	// BlockPrefix seeds generated block element ids. Empty means
	// auto-generated ids.
	BlockPrefix string `mapstructure:"block_prefix" yaml:"block_prefix"`

	// OutDir is the directory rendered artifacts are written to.
	// Empty means next to the input file.
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`

	// Flavor is the Markdown flavor for document rendering.
	Flavor Flavor `mapstructure:"flavor" yaml:"flavor"`

	// CLI-level options (not persisted to config files).

	// Standalone emits one self-contained HTML document per input.
	Standalone bool `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel render workers.
	Jobs int `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Theme:  DefaultTheme,
		Lang:   LangAuto,
		Flavor: FlavorCommonMark,
		Jobs:   0, // 0 means one worker per CPU
	}
}
