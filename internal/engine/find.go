package engine

import (
	"strings"

	"github.com/coffeegrind123/bashed-nano/internal/engine/buffer"
)

// Find searches forward for a literal query starting at from, wrapping
// past the end of the document. Returns the match position and whether one
// was found. Columns are rune-accurate even when lines hold multi-byte
// characters.
func (s *Session) Find(query string, from buffer.Position) (buffer.Position, bool) {
	if query == "" {
		return buffer.Position{}, false
	}

	rows := s.buf.LineCount()
	from = buffer.Position{
		Row: clamp(from.Row, 0, rows-1),
		Col: clamp(from.Col, 0, s.buf.LineLen(from.Row)),
	}

	// One extra pass over the starting row covers the part before from.
	for i := 0; i <= rows; i++ {
		row := (from.Row + i) % rows
		line := string(s.buf.Line(row))

		start := 0
		if i == 0 {
			start = byteOffset(line, from.Col)
		}
		idx := strings.Index(line[start:], query)
		if idx < 0 {
			continue
		}
		col := len([]rune(line[:start+idx]))
		return buffer.Position{Row: row, Col: col}, true
	}
	return buffer.Position{}, false
}

// byteOffset converts a rune column into a byte offset within the string.
func byteOffset(s string, col int) int {
	for i := range s {
		if col == 0 {
			return i
		}
		col--
	}
	return len(s)
}
