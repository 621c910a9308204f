package config

import (
	"bytes"
	"fmt"
	"strings"
)

// listWrapWidth is the maximum width for wrapped lists in templates.
const listWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every option with its default; otherwise a minimal
	// commented template is generated.
	Full bool

	// Themes lists theme names documented in the full template. When
	// empty, DefaultThemeProvider supplies them.
	Themes []string
}

// ThemeProvider returns theme names for template documentation.
// This allows decoupling from the engine package to avoid circular
// imports.
type ThemeProvider func() []string

// DefaultThemeProvider is set by the cli package during init.
//
//nolint:gochecknoglobals // Intentional extension point for theme info.
var DefaultThemeProvider ThemeProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate()
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	return []byte(`# rangelight configuration
# See: https://github.com/yaklabco/rangelight

# Color theme for rendered blocks
theme: github-dark

# Default language for untagged input ("auto" detects from content)
lang: auto

# Line numbering
# line_numbers: false
# number_start: 1

# Prefix for generated block element ids
# block_prefix: code

# Directory rendered artifacts are written to (empty: next to input)
# out_dir: dist

# Markdown flavor for the md command: commonmark or gfm
# flavor: commonmark
`)
}

// generateFullTemplate creates a template with all options set to
// their defaults and the available themes documented.
func generateFullTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(`# rangelight configuration - Full Template
# See: https://github.com/yaklabco/rangelight
#
# All options are listed with their default values.

# Color theme for rendered blocks
theme: github-dark

# Default language for untagged input ("auto" detects from content)
lang: auto

# Line numbering for every block
line_numbers: false

# First line number when numbering is enabled (0 = 1)
number_start: 0

# Prefix for generated block element ids (empty = auto-generated)
block_prefix: ""

# Directory rendered artifacts are written to (empty = next to input)
out_dir: ""

# Markdown flavor for the md command: commonmark or gfm
flavor: commonmark
`)

	themes := opts.Themes
	if len(themes) == 0 {
		themes = themeNames()
	}
	if len(themes) > 0 {
		buf.WriteString("\n# Available themes:\n")
		buf.WriteString(wrapList(themes, listWrapWidth))
	}

	return buf.Bytes()
}

// themeNames returns the theme names known to the provider, or a
// static list of common themes when no provider is registered.
func themeNames() []string {
	if DefaultThemeProvider != nil {
		return DefaultThemeProvider()
	}

	return []string{
		"dracula", "github", "github-dark", "monokai", "nord",
		"solarized-dark", "solarized-light", "vim", "xcode",
	}
}

// wrapList renders names as comment lines wrapped at maxWidth.
func wrapList(names []string, maxWidth int) string {
	var lines []string
	current := ""

	for _, name := range names {
		switch {
		case current == "":
			current = name
		case len(current)+2+len(name) <= maxWidth:
			current += ", " + name
		default:
			lines = append(lines, current)
			current = name
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	var buf bytes.Buffer
	for _, line := range lines {
		fmt.Fprintf(&buf, "#   %s\n", line)
	}
	return buf.String()
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return strings.Join([]string{
		"# rangelight configuration",
		"# See: https://github.com/yaklabco/rangelight",
	}, "\n")
}
