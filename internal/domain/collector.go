package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"glyphs.dev/pkg/glyphs/internal/adapter"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

// DefaultSourcePatterns selects C++, C and Arduino sketch sources.
var DefaultSourcePatterns = []string{"*.cpp", "*.c", "*.ino"}

// Collector discovers the candidate files under a source root.
type Collector interface {
	Collect(ctx context.Context, root m.Path) ([]m.Path, error)
}

type collector struct {
	fsAdapter adapter.SourceFSAdapter
	patterns  []string
}

// NewCollector builds a Collector matching base names against patterns
// (filepath.Match syntax). With no patterns DefaultSourcePatterns is used.
func NewCollector(fsAdapter adapter.SourceFSAdapter, patterns ...string) Collector {
	if len(patterns) == 0 {
		patterns = DefaultSourcePatterns
	}

	return &collector{
		fsAdapter: fsAdapter,
		patterns:  patterns,
	}
}

func (c *collector) Collect(ctx context.Context, root m.Path) ([]m.Path, error) {
	resolved, err := c.fsAdapter.EvalSymlinks(root)
	if err != nil {
		return nil, &ConfigurationError{Path: root, Err: err}
	}

	info, err := c.fsAdapter.FileInfo(resolved)
	if err != nil {
		return nil, &ConfigurationError{Path: root, Err: err}
	}

	if !info.IsDir() {
		return nil, &ConfigurationError{Path: root, Err: ErrNotDirectory}
	}

	var files []m.Path

	err = c.fsAdapter.Walk(resolved, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == string(resolved) {
				return err
			}

			// A subtree that vanished or became unreadable mid-walk only
			// loses its own files.
			slog.Warn("skipping unreadable path", "path", path, "error", err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if !c.matches(filepath.Base(path)) || !c.isSourceFile(path, info) {
			return nil
		}

		file, err := c.underRoot(root, resolved, path)
		if err != nil {
			return err
		}

		files = append(files, file)

		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		return nil, &ConfigurationError{Path: root, Err: fmt.Errorf("walk: %w", err)}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i] < files[j]
	})

	slog.Debug("collected candidate files", "root", root, "count", len(files))

	return files, nil
}

// isSourceFile accepts regular files and symbolic links to regular files.
// Links to directories are not descended.
func (c *collector) isSourceFile(path string, info os.FileInfo) bool {
	if info.Mode().IsRegular() {
		return true
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := c.fsAdapter.FileInfo(m.Path(path))
	if err != nil {
		slog.Warn("skipping dangling symlink", "path", path, "error", err)
		return false
	}

	return target.Mode().IsRegular()
}

// underRoot re-expresses a walked path relative to the root the caller
// passed, so a symlinked root is reported under its own name.
func (c *collector) underRoot(root, resolved m.Path, path string) (m.Path, error) {
	if root == resolved {
		return m.Path(path), nil
	}

	rel, err := c.fsAdapter.RelPath(resolved, m.Path(path))
	if err != nil {
		return "", err
	}

	return m.Path(filepath.Join(string(root), string(rel))), nil
}

func (c *collector) matches(name string) bool {
	for _, pattern := range c.patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}
