// Package adapter contains filesystem and persistence adapters for the glyphs CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	m "glyphs.dev/pkg/glyphs/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a source tree. It hides direct `os` access so the
// workflow logic can be tested against an in-memory filesystem.
type SourceFSAdapter interface {
	// Walk traverses root recursively. Symbolic links are reported but never
	// followed, so directory cycles cannot occur.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories. Symbolic links are followed.
	FileInfo(path m.Path) (os.FileInfo, error)

	// EvalSymlinks returns path with every symbolic link resolved.
	EvalSymlinks(path m.Path) (m.Path, error)

	// FindProjectRoot searches startDir and its parents for a directory holding
	// marker and returns the first match.
	FindProjectRoot(startDir m.Path, marker string) (m.Path, error)

	// WriteFileAtomic replaces path with content. On failure the previous
	// content (if any) is left untouched and no temporary file remains.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on top of an afero filesystem.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter backed by the host filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter over any afero filesystem. Tests use
// afero.NewMemMapFs().
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// Walk iterates over every entry under root, descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return afero.Walk(a.fs, string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return afero.ReadFile(a.fs, string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return a.fs.Stat(string(path))
}

// EvalSymlinks resolves symbolic links on the host filesystem. Filesystems
// without link support return the cleaned path once it is known to exist.
func (a *LocalSourceFSAdapter) EvalSymlinks(path m.Path) (m.Path, error) {
	if _, ok := a.fs.(*afero.OsFs); ok {
		resolved, err := filepath.EvalSymlinks(string(path))
		if err != nil {
			return "", err
		}

		return m.Path(resolved), nil
	}

	cleaned := filepath.Clean(string(path))
	if _, err := a.fs.Stat(cleaned); err != nil {
		return "", err
	}

	return m.Path(cleaned), nil
}

// FindProjectRoot walks up from startDir looking for marker.
func (a *LocalSourceFSAdapter) FindProjectRoot(startDir m.Path, marker string) (m.Path, error) {
	dir := filepath.Clean(string(startDir))

	for {
		if _, err := a.fs.Stat(filepath.Join(dir, marker)); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in any parent directory of %s", marker, startDir)
		}

		dir = parent
	}
}

// WriteFileAtomic writes content to a temporary file next to path and renames
// it into place.
func (a *LocalSourceFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) (err error) {
	target := string(path)

	dir := filepath.Dir(target)
	if err := a.fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(a.fs, dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = a.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = a.fs.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err = a.fs.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
