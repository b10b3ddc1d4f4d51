package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ASCIIBoundary is the highest 7-bit ASCII code point. Anything above it needs
// an explicit glyph in the downstream font table.
const ASCIIBoundary = 127

// HexSeparator joins code points in the serialized output.
const HexSeparator = ", "

// CodePoint is a single Unicode scalar value.
type CodePoint rune

// IsASCII reports whether the code point is at or below ASCIIBoundary.
func (c CodePoint) IsASCII() bool {
	return c <= ASCIIBoundary
}

// Hex renders the code point as lowercase 0x-prefixed hex without padding.
func (c CodePoint) Hex() string {
	return "0x" + strconv.FormatInt(int64(c), 16)
}

func (c CodePoint) String() string {
	return fmt.Sprintf("U+%04X", int32(c))
}

// CodePointSet is an unordered set of code points.
type CodePointSet map[CodePoint]struct{}

// NewCodePointSet builds a set holding the given code points.
func NewCodePointSet(points ...CodePoint) CodePointSet {
	set := make(CodePointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}

	return set
}

// Add inserts a code point.
func (s CodePointSet) Add(c CodePoint) {
	s[c] = struct{}{}
}

// Contains reports whether c is in the set.
func (s CodePointSet) Contains(c CodePoint) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of distinct code points.
func (s CodePointSet) Len() int {
	return len(s)
}

// Union adds every member of other to s.
func (s CodePointSet) Union(other CodePointSet) {
	for c := range other {
		s[c] = struct{}{}
	}
}

// Sorted returns the members in ascending order.
func (s CodePointSet) Sorted() []CodePoint {
	points := make([]CodePoint, 0, len(s))
	for c := range s {
		points = append(points, c)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i] < points[j]
	})

	return points
}

// FormatHexList serializes the set as ascending hex codes joined by HexSeparator.
// An empty set yields an empty string.
func FormatHexList(set CodePointSet) string {
	points := set.Sorted()

	hexes := make([]string, 0, len(points))
	for _, p := range points {
		hexes = append(hexes, p.Hex())
	}

	return strings.Join(hexes, HexSeparator)
}

// ParseHexList reads back a list written by FormatHexList. Surrounding
// whitespace and any ordering are accepted.
func ParseHexList(text string) (CodePointSet, error) {
	set := CodePointSet{}

	text = strings.TrimSpace(text)
	if text == "" {
		return set, nil
	}

	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)

		digits := strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
		if digits == field || digits == "" {
			return nil, fmt.Errorf("invalid code point %q: missing 0x prefix", field)
		}

		value, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid code point %q: %w", field, err)
		}

		if value > unicode.MaxRune {
			return nil, fmt.Errorf("invalid code point %q: beyond U+10FFFF", field)
		}

		set.Add(CodePoint(value))
	}

	return set, nil
}
