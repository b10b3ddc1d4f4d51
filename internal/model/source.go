// Package model defines the data structures for the glyph inventory.
package model

// Path represents a file system path.
type Path string

// SourceKind tells where a scanned text came from.
type SourceKind string

const (
	// SourceAuxiliary is the always-included extra characters resource.
	SourceAuxiliary SourceKind = "auxiliary"

	// SourceCandidate is a file selected from the source tree by extension.
	SourceCandidate SourceKind = "candidate"
)

// File represents one scanned text input.
type File struct {
	Path Path
	Kind SourceKind
}
