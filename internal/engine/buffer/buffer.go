// Package buffer implements the document model: an ordered sequence of
// lines edited through explicit splice operations. Lines are rune slices
// with no embedded newlines; a buffer always holds at least one line.
package buffer

import "strings"

// Buffer holds the document lines and the modified flag. It is owned by
// a single editing session and performs no locking.
type Buffer struct {
	lines    [][]rune
	modified bool
}

// New creates an empty buffer containing one empty line.
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// FromLines creates a buffer from document lines. An empty slice yields a
// single empty line.
func FromLines(lines []string) *Buffer {
	b := New()
	b.SetLines(lines)
	b.modified = false
	return b
}

// LineCount returns the number of lines, always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the stored line. The slice is shared with the buffer and
// must be treated as read-only; rows out of range yield an empty line.
func (b *Buffer) Line(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// LineLen returns the character length of a line, 0 for rows out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// LastRow returns the index of the final line.
func (b *Buffer) LastRow() int {
	return len(b.lines) - 1
}

// Lines copies the document out as strings, one per line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the whole document joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// SetLines replaces the whole document. Used when a file is (re)loaded;
// clears nothing else, so the caller resets cursor state and the modified
// flag as appropriate.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		b.lines = [][]rune{{}}
		return
	}
	b.lines = make([][]rune, len(lines))
	for i, l := range lines {
		b.lines[i] = []rune(l)
	}
}

// Modified reports whether the buffer changed since the flag was last
// cleared.
func (b *Buffer) Modified() bool {
	return b.modified
}

// SetModified sets or clears the modified flag.
func (b *Buffer) SetModified(modified bool) {
	b.modified = modified
}

// InsertInLine splices text (no separators) into a line at the given
// character offset. The offset is clamped to the line.
func (b *Buffer) InsertInLine(row, col int, text []rune) {
	if row < 0 || row >= len(b.lines) || len(text) == 0 {
		return
	}
	line := b.lines[row]
	col = clamp(col, 0, len(line))

	next := make([]rune, 0, len(line)+len(text))
	next = append(next, line[:col]...)
	next = append(next, text...)
	next = append(next, line[col:]...)
	b.lines[row] = next
	b.modified = true
}

// SplitLine breaks a line in two at the given offset. The tail becomes a
// new line directly below.
func (b *Buffer) SplitLine(row, col int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	col = clamp(col, 0, len(line))

	tail := append([]rune{}, line[col:]...)
	b.lines[row] = line[:col:col]

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = tail
	b.modified = true
}

// DeleteSpan removes the text between two positions (start inclusive, end
// exclusive, row-major start <= end), merging the partial first and last
// lines into one. Returns the number of removed lines.
func (b *Buffer) DeleteSpan(start, end Position) int {
	start = b.clampPos(start)
	end = b.clampPos(end)
	if !start.Before(end) {
		return 0
	}

	if start.Row == end.Row {
		line := b.lines[start.Row]
		b.lines[start.Row] = append(line[:start.Col], line[end.Col:]...)
		b.modified = true
		return 0
	}

	head := b.lines[start.Row][:start.Col]
	tail := b.lines[end.Row][end.Col:]
	merged := make([]rune, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)

	removed := end.Row - start.Row
	b.lines[start.Row] = merged
	b.lines = append(b.lines[:start.Row+1], b.lines[end.Row+1:]...)
	b.modified = true
	return removed
}

// clampPos forces a position into the valid document range.
func (b *Buffer) clampPos(p Position) Position {
	p.Row = clamp(p.Row, 0, len(b.lines)-1)
	p.Col = clamp(p.Col, 0, len(b.lines[p.Row]))
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
