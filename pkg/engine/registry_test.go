package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/rangelight/pkg/engine"
)

func TestLanguagesListsCommonGrammars(t *testing.T) {
	t.Parallel()

	langs := engine.Languages()

	assert.NotEmpty(t, langs)
	assert.Contains(t, langs, "Go")
	assert.Contains(t, langs, "Python")
}

func TestThemesListsCommonStyles(t *testing.T) {
	t.Parallel()

	themes := engine.Themes()

	assert.NotEmpty(t, themes)
	assert.Contains(t, themes, "github-dark")
	assert.Contains(t, themes, "monokai")
}

func TestHasLanguage(t *testing.T) {
	t.Parallel()

	assert.True(t, engine.HasLanguage("go"))
	assert.True(t, engine.HasLanguage("golang"), "aliases resolve")
	assert.False(t, engine.HasLanguage("qzxnotalang"))
	assert.False(t, engine.HasLanguage(""))
}

func TestHasTheme(t *testing.T) {
	t.Parallel()

	assert.True(t, engine.HasTheme("github-dark"))
	assert.False(t, engine.HasTheme("qzxnotatheme"))
}
