package cli

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/yaklabco/rangelight/pkg/fsutil"
	"github.com/yaklabco/rangelight/pkg/render"
)

// artifactSet lists the output files for one rendered input. Standalone
// runs set Doc; regular runs set the HTML/CSS/JS triple.
type artifactSet struct {
	Title string
	HTML  string
	CSS   string
	JS    string
	Doc   string
}

// paths returns the set's output paths.
func (a artifactSet) paths() []string {
	if a.Doc != "" {
		return []string{a.Doc}
	}
	return []string{a.HTML, a.CSS, a.JS}
}

// planArtifacts maps each input file to its output files. Inputs whose
// outputs collide with each other, or with an input, fail the whole plan
// so nothing is rendered or overwritten.
func planArtifacts(files []string, outDir string, standalone bool) (map[string]artifactSet, error) {
	inputs := make(map[string]struct{}, len(files))
	for _, path := range files {
		inputs[path] = struct{}{}
	}

	plan := make(map[string]artifactSet, len(files))
	claimed := make(map[string]string, len(files))

	for _, path := range files {
		set := artifactsFor(path, outDir, standalone)
		for _, out := range set.paths() {
			if _, ok := inputs[out]; ok {
				return nil, fmt.Errorf("rendering %s would overwrite input %s; use --out-dir", path, out)
			}
			if prev, ok := claimed[out]; ok {
				return nil, fmt.Errorf("%s and %s both produce %s; rename one or render them separately",
					prev, path, out)
			}
			claimed[out] = path
		}
		plan[path] = set
	}

	return plan, nil
}

// artifactsFor derives the output paths for one input from its name stem.
func artifactsFor(path, outDir string, standalone bool) artifactSet {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// Dotfiles like .bashrc have no stem; keep the full name.
		stem = base
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}

	set := artifactSet{Title: base}
	if standalone {
		set.Doc = filepath.Join(dir, stem+".html")
		return set
	}

	set.HTML = filepath.Join(dir, stem+".html")
	set.CSS = filepath.Join(dir, stem+".css")
	set.JS = filepath.Join(dir, stem+".js")
	return set
}

// writeArtifacts writes a result to its planned output files and returns
// the primary path. Files are written atomically and only touched when
// their content changed, so repeated runs over unchanged sources do not
// dirty modification times.
func writeArtifacts(ctx context.Context, set artifactSet, result *render.Result) (string, error) {
	if set.Doc != "" {
		doc := htmlDocument(set.Title, embedFragment(result))
		if _, err := fsutil.WriteAtomicIfChanged(ctx, set.Doc, doc, fsutil.DefaultFileMode); err != nil {
			return "", err
		}
		return set.Doc, nil
	}

	outputs := []struct {
		path    string
		content string
	}{
		{set.HTML, result.HTML},
		{set.CSS, result.CSS},
		{set.JS, result.Script},
	}
	for _, output := range outputs {
		if _, err := fsutil.WriteAtomicIfChanged(ctx, output.path, []byte(output.content), fsutil.DefaultFileMode); err != nil {
			return "", err
		}
	}
	return set.HTML, nil
}

// embedFragment composes a result into its embeddable form: the scoped
// stylesheet, the markup, and the range-registration script.
func embedFragment(result *render.Result) []byte {
	var b bytes.Buffer
	b.WriteString("<style>\n")
	b.WriteString(result.CSS)
	b.WriteString("</style>\n")
	b.WriteString(result.HTML)
	b.WriteString("\n<script>\n")
	b.WriteString(result.Script)
	b.WriteString("</script>\n")
	return b.Bytes()
}

// htmlDocument wraps body markup in a minimal complete document.
func htmlDocument(title string, body []byte) []byte {
	var b bytes.Buffer
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n</head>\n<body>\n")
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return b.Bytes()
}
