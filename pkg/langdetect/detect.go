// Package langdetect resolves the language of untagged source snippets.
// It backs the CLI's "--lang auto" mode and fenced code blocks without an
// info string, returning a fence tag the highlighting engine accepts.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when no language can be determined with
// confidence. The engine renders it as uncolored plain text.
const Fallback = "text"

// classifierCandidates bounds the enry classifier to languages the
// rendering pipeline is commonly fed.
//
//nolint:gochecknoglobals // fixed candidate list
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the fence tag for snippet. Detection tries, in order,
// the shebang line, a set of high-signal structural patterns, and the
// enry classifier; it returns Fallback when none is confident.
func Detect(snippet []byte) string {
	if len(bytes.TrimSpace(snippet)) == 0 {
		return Fallback
	}

	if lang, safe := enry.GetLanguageByShebang(snippet); safe {
		return fenceTag(lang)
	}

	if lang := detectByPattern(snippet); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(snippet, classifierCandidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return Fallback
}

// DetectString is Detect for string input.
func DetectString(snippet string) string {
	return Detect([]byte(snippet))
}

// DetectFile returns the fence tag for a named file. The file name is
// consulted first; extensions and well-known names (Makefile, Dockerfile)
// are far stronger signals than content heuristics. Ambiguous or unknown
// names fall through to Detect on the content.
func DetectFile(name string, content []byte) string {
	if lang, safe := enry.GetLanguageByFilename(name); safe {
		return fenceTag(lang)
	}
	if lang, safe := enry.GetLanguageByExtension(name); safe {
		return fenceTag(lang)
	}
	return Detect(content)
}

// pattern is one structural heuristic. Patterns run before the
// classifier because they are cheaper and more precise on short
// snippets, where the classifier tends to guess.
type pattern struct {
	tag   string
	match func(trimmed []byte, text string) bool
}

// Table order is specificity order: the first matching pattern wins,
// so narrow signals (Go package clauses, doctypes) come before broad
// ones (const declarations, key: value counting).
//
//nolint:gochecknoglobals // fixed heuristic table
var patterns = []pattern{
	{"go", func(trimmed []byte, _ string) bool {
		return bytes.HasPrefix(trimmed, []byte("package ")) ||
			bytes.Contains(trimmed, []byte("func main()"))
	}},
	{"python", func(_ []byte, text string) bool {
		if strings.Contains(text, "def ") && strings.Contains(text, "):") {
			return true
		}
		return strings.Contains(text, "__name__") || strings.Contains(text, "__main__")
	}},
	{"html", func(trimmed []byte, _ string) bool {
		lower := bytes.ToLower(trimmed)
		return bytes.Contains(lower, []byte("<!doctype html")) ||
			bytes.Contains(lower, []byte("<html")) ||
			bytes.Contains(lower, []byte("<body>"))
	}},
	{"json", func(trimmed []byte, _ string) bool {
		starts := bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))
		return starts && bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(trimmed []byte, text string) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(strings.Contains(text, "\nFROM ") && strings.Contains(text, "\nRUN "))
	}},
	{"sql", func(trimmed []byte, _ string) bool {
		upper := strings.ToUpper(string(trimmed))
		for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, verb) {
				return true
			}
		}
		return false
	}},
	{"rust", func(_ []byte, text string) bool {
		return strings.Contains(text, "fn main()") ||
			strings.Contains(text, "println!") ||
			strings.Contains(text, "let mut ")
	}},
	{"javascript", func(_ []byte, text string) bool {
		return strings.Contains(text, "console.log") ||
			strings.Contains(text, "=>") ||
			strings.Contains(text, "const ")
	}},
	{"yaml", func(_ []byte, text string) bool {
		return looksLikeYAML(text)
	}},
}

// detectByPattern runs the heuristic table and returns the first match.
func detectByPattern(snippet []byte) string {
	trimmed := bytes.TrimSpace(snippet)
	text := string(snippet)

	for _, p := range patterns {
		if p.match(trimmed, text) {
			return p.tag
		}
	}
	return ""
}

// looksLikeYAML counts plain "key: value" and root list lines; two or
// more reads as YAML rather than prose or code.
func looksLikeYAML(text string) bool {
	keyLines := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "- ") {
			keyLines++
			continue
		}
		// Lines with parens or braces look like code, not config.
		if strings.Contains(line, ": ") &&
			!strings.ContainsAny(line, "({") &&
			!strings.HasPrefix(line, `"`) {
			keyLines++
		}
	}
	return keyLines >= 2
}

// fenceTag converts an enry language name to the fence tag the engine
// accepts.
func fenceTag(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
