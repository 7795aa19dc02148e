// Package lineinput provides a single-line text editor driven by key events.
package lineinput

import "slices"

// Buffer holds the characters of a line and the insertion point.
// The cursor always stays within [0, Len()]; it only moves through Editor
// operations.
type Buffer struct {
	runes  []rune // one element per Unicode scalar value
	cursor int    // insertion point, between characters
}

// New creates a buffer seeded with initial. The cursor starts at 0 whatever
// the seed length.
func New(initial []rune) *Buffer {
	runes := make([]rune, len(initial))
	copy(runes, initial)
	return &Buffer{runes: runes}
}

// NewString creates a buffer seeded with the characters of s.
func NewString(s string) *Buffer {
	return New([]rune(s))
}

// IsEmpty returns true if the buffer holds no characters.
func (b *Buffer) IsEmpty() bool {
	return len(b.runes) == 0
}

// Len returns the number of characters.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Cursor returns the insertion point.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Segments splits the text around the cursor for rendering.
// at is the single character under the cursor, or empty when the cursor
// sits past the last character.
func (b *Buffer) Segments() (before, at, after string) {
	before = string(b.runes[:b.cursor])
	if b.cursor == len(b.runes) {
		return before, "", ""
	}
	return before, string(b.runes[b.cursor]), string(b.runes[b.cursor+1:])
}

func (b *Buffer) insert(rs []rune) {
	if b.cursor == len(b.runes) {
		b.runes = append(b.runes, rs...)
	} else {
		b.runes = slices.Insert(b.runes, b.cursor, rs...)
	}
	b.cursor += len(rs)
}

// deleteBackward removes the character left of the cursor.
// Caller guarantees cursor > 0.
func (b *Buffer) deleteBackward() {
	b.cursor--
	b.runes = slices.Delete(b.runes, b.cursor, b.cursor+1)
}
