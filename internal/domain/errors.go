package domain

import (
	"errors"
	"fmt"

	m "glyphs.dev/pkg/glyphs/internal/model"
)

// Sentinel causes wrapped by the typed errors below.
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrInvalidUTF8  = errors.New("invalid UTF-8")
)

// ConfigurationError means the source root or the auxiliary resource is
// missing or unusable. It aborts the run.
type ConfigurationError struct {
	Path m.Path
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// FileReadError means one candidate file could not be read or decoded. The
// file is skipped and the run continues.
type FileReadError struct {
	Path m.Path
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// EncodingError means the auxiliary resource is not valid UTF-8. It aborts the run.
type EncodingError struct {
	Path m.Path
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// OutputWriteError means the output file could not be written. It aborts the run.
type OutputWriteError struct {
	Path m.Path
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
