package engine

import (
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Languages returns the names of all registered grammars, sorted.
func Languages() []string {
	return lexers.Names(false)
}

// Themes returns the names of all registered color themes, sorted.
func Themes() []string {
	return styles.Names()
}

// HasLanguage reports whether a grammar is registered under name or
// one of its aliases.
func HasLanguage(name string) bool {
	return lexers.Get(name) != nil
}

// HasTheme reports whether a theme is registered under name.
// Unlike theme lookup during rendering, this does not fall back.
func HasTheme(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}
