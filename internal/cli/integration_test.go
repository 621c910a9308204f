package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rangelight/internal/cli"
)

// testGoSource is the Go snippet the render tests feed the pipeline.
const testGoSource = "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n"

// testInfo is the build info used by every integration test.
var testInfo = cli.BuildInfo{ //nolint:gochecknoglobals // shared test fixture
	Version: "test",
	Commit:  "test",
	Date:    "test",
}

// writeTestConfig writes a minimal config that overrides any project
// config discovered from the working directory.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".rangelight.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("theme: github-dark\n"), 0644))
	return cfgFile
}

func TestIntegration_RenderFileArtifacts(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "main.go")
	require.NoError(t, os.WriteFile(input, []byte(testGoSource), 0644))

	outDir := filepath.Join(tmpDir, "dist")

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"render",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--out-dir", outDir,
		input,
	})

	require.NoError(t, cmd.Execute())

	html, err := os.ReadFile(filepath.Join(outDir, "main.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `<pre id="main" class="rangelight">`)
	assert.Contains(t, string(html), `id="main-L0"`)

	css, err := os.ReadFile(filepath.Join(outDir, "main.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "::highlight(main-c0)")
	assert.Contains(t, string(css), "#main {")

	script, err := os.ReadFile(filepath.Join(outDir, "main.js"))
	require.NoError(t, err)
	assert.Contains(t, string(script), `"blockId":"main"`)
	assert.Contains(t, string(script), "CSS.highlights")

	output := stdout.String()
	assert.Contains(t, output, "Rendered 1 file")
	assert.Contains(t, output, "-> ")
	assert.Contains(t, output, "[go]")
}

func TestIntegration_RenderStandalone(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "main.go")
	require.NoError(t, os.WriteFile(input, []byte(testGoSource), 0644))

	outDir := filepath.Join(tmpDir, "dist")

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"render",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--standalone",
		"--out-dir", outDir,
		input,
	})

	require.NoError(t, cmd.Execute())

	doc, err := os.ReadFile(filepath.Join(outDir, "main.html"))
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<!doctype html>")
	assert.Contains(t, string(doc), "<style>")
	assert.Contains(t, string(doc), "<script>")
	assert.Contains(t, string(doc), `<pre id="main" class="rangelight">`)

	// The triple is replaced by the single document.
	_, err = os.Stat(filepath.Join(outDir, "main.css"))
	assert.True(t, os.IsNotExist(err), "standalone run should not write a stylesheet file")
	_, err = os.Stat(filepath.Join(outDir, "main.js"))
	assert.True(t, os.IsNotExist(err), "standalone run should not write a script file")
}

func TestIntegration_RenderHighlightAndNumbers(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "main.go")
	require.NoError(t, os.WriteFile(input, []byte(testGoSource), 0644))

	outDir := filepath.Join(tmpDir, "dist")

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"render",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--highlight", "2-3",
		"--number-start", "10",
		"--out-dir", outDir,
		input,
	})

	require.NoError(t, cmd.Execute())

	html, err := os.ReadFile(filepath.Join(outDir, "main.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "highlighted")
	assert.Contains(t, string(html), `<span class="line-number">10</span>`)

	css, err := os.ReadFile(filepath.Join(outDir, "main.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".line.highlighted")
	assert.Contains(t, string(css), ".line-number")
}

func TestIntegration_RenderStdin(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(testGoSource))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"render",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--lang", "go",
		"--block-id", "demo",
	})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "<style>")
	assert.Contains(t, output, `<pre id="demo" class="rangelight">`)
	assert.Contains(t, output, "<script>")
}

func TestIntegration_RenderStdinStandalone(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(testGoSource))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"render",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--lang", "go",
		"--standalone",
	})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.True(t, strings.HasPrefix(output, "<!doctype html>"), "standalone stdin output should be a document")
	assert.Contains(t, output, "</html>")
}

func TestIntegration_RenderUnknownLanguageFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "main.go")
	require.NoError(t, os.WriteFile(input, []byte(testGoSource), 0644))

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"render",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--lang", "definitely-not-a-language",
		"--out-dir", filepath.Join(tmpDir, "dist"),
		input,
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrRenderFailed)

	output := stdout.String()
	assert.Contains(t, output, "error")
	assert.Contains(t, output, "1 failed")
}

func TestIntegration_RenderCollidingOutputs(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	dirA := filepath.Join(tmpDir, "a")
	dirB := filepath.Join(tmpDir, "b")
	require.NoError(t, os.MkdirAll(dirA, 0755))
	require.NoError(t, os.MkdirAll(dirB, 0755))

	inputA := filepath.Join(dirA, "main.go")
	inputB := filepath.Join(dirB, "main.go")
	require.NoError(t, os.WriteFile(inputA, []byte(testGoSource), 0644))
	require.NoError(t, os.WriteFile(inputB, []byte(testGoSource), 0644))

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"render",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--out-dir", filepath.Join(tmpDir, "dist"),
		inputA, inputB,
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both produce")

	// The collision is detected before any rendering or writing happens.
	_, statErr := os.Stat(filepath.Join(tmpDir, "dist"))
	assert.True(t, os.IsNotExist(statErr), "no output directory should be created for a rejected plan")
}

func TestIntegration_RenderSummaryFlag(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "main.go")
	require.NoError(t, os.WriteFile(input, []byte(testGoSource), 0644))

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"render",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--summary",
		"--out-dir", filepath.Join(tmpDir, "dist"),
		input,
	})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "Summary")
	assert.Contains(t, output, "Files rendered:")
	assert.Contains(t, output, "Render complete")
}

func TestIntegration_MDDocument(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "doc.md")
	source := "# Title\n\nSome text.\n\n```go {1}\npackage main\n```\n"
	require.NoError(t, os.WriteFile(input, []byte(source), 0644))

	outPath := filepath.Join(tmpDir, "out", "doc.html")

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"md",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--out", outPath,
		input,
	})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<h1>Title</h1>")
	assert.Contains(t, string(content), "<style>")
	assert.Contains(t, string(content), "<script>")
	assert.Contains(t, string(content), ".line.highlighted")
}

func TestIntegration_MDStdin(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader("# Hello\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"md",
		"--config", writeTestConfig(t),
		"--color", "never",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "<h1>Hello</h1>")
}

func TestIntegration_LangsJSON(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"langs", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var names []string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &names))
	assert.NotEmpty(t, names)
	assert.Contains(t, names, "Go")
}

func TestIntegration_ThemesListing(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"themes", "--color", "never"})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "Themes")
	assert.Contains(t, output, "github-dark")
	assert.Contains(t, output, "total")
}

func TestIntegration_InitCreatesConfig(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "conf.yml")

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"init", "--output", outPath})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "theme:")
	assert.Contains(t, string(content), "lang:")

	// A second run without --force refuses to overwrite.
	cmd = cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"init", "--output", outPath})
	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// --force overwrites.
	cmd = cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"init", "--output", outPath, "--force", "--full"})
	require.NoError(t, cmd.Execute())

	content, err = os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Available themes:")
}
