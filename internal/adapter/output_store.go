package adapter

import (
	"fmt"
	"log/slog"
	"os"

	m "glyphs.dev/pkg/glyphs/internal/model"
)

// outputFileMode is the permission of the written code point list.
const outputFileMode os.FileMode = 0o644

// OutputStore persists and reloads the serialized code point list.
type OutputStore interface {
	SaveCodePoints(path m.Path, set m.CodePointSet) error
	LoadCodePoints(path m.Path) (m.CodePointSet, string, error)
}

// HexListStore writes the set as a single comma-separated line of hex codes.
type HexListStore struct {
	fs SourceFSAdapter
}

// NewHexListStore creates a HexListStore writing through fs.
func NewHexListStore(fs SourceFSAdapter) *HexListStore {
	return &HexListStore{fs: fs}
}

// SaveCodePoints overwrites path with the serialized set.
func (s *HexListStore) SaveCodePoints(path m.Path, set m.CodePointSet) error {
	content := m.FormatHexList(set)

	if err := s.fs.WriteFileAtomic(path, []byte(content), outputFileMode); err != nil {
		return err
	}

	slog.Debug("saved code points", "path", path, "count", set.Len(), "bytes", len(content))

	return nil
}

// LoadCodePoints reads a previously written list and returns both the parsed
// set and the raw text.
func (s *HexListStore) LoadCodePoints(path m.Path) (m.CodePointSet, string, error) {
	raw, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	set, err := m.ParseHexList(string(raw))
	if err != nil {
		return nil, string(raw), fmt.Errorf("parse %s: %w", path, err)
	}

	return set, string(raw), nil
}
