package domain

import (
	"fmt"
	"unicode/utf8"

	m "glyphs.dev/pkg/glyphs/internal/model"
)

// ExtractNonASCII returns the distinct code points above m.ASCIIBoundary in
// text. Iteration is over decoded runes, so a supplementary-plane character
// counts once.
func ExtractNonASCII(text string) m.CodePointSet {
	set := m.CodePointSet{}

	for _, r := range text {
		if c := m.CodePoint(r); !c.IsASCII() {
			set.Add(c)
		}
	}

	return set
}

// DecodeText validates content as UTF-8 and returns it as a string. The byte
// order mark, if present, is kept as U+FEFF.
func DecodeText(content []byte) (string, error) {
	if utf8.Valid(content) {
		return string(content), nil
	}

	offset := 0
	for offset < len(content) {
		r, size := utf8.DecodeRune(content[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}

		offset += size
	}

	return "", fmt.Errorf("%w at byte %d", ErrInvalidUTF8, offset)
}
