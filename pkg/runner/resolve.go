package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePaths resolves opts.Paths to absolute, deduplicated file paths,
// preserving input order. Every path must name an existing regular file.
func ResolvePaths(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{}, len(opts.Paths))
	files := make([]string, 0, len(opts.Paths))

	for _, inputPath := range opts.Paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("resolve cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory; pass the files to render", inputPath)
		}

		if _, ok := seen[absPath]; ok {
			continue
		}
		seen[absPath] = struct{}{}
		files = append(files, absPath)
	}

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}
