package engine

import "github.com/coffeegrind123/bashed-nano/internal/engine/buffer"

// Direction of horizontal movement.
type Direction int

const (
	// Backward moves toward the start of the document.
	Backward Direction = -1
	// Forward moves toward the end of the document.
	Forward Direction = 1
)

// MoveVertical moves the cursor by a signed number of rows.
//
// A direction key pressed while a selection is active but selecting mode is
// off only collapses the selection, to its start moving up and its end
// moving down, without further movement. At the first/last row the cursor
// jumps to the line start/end instead when edge jump is enabled. Across
// rows the cursor tracks a stable visual column: the memory is captured on
// the first vertical move and consumed by LogicalColumn on each target
// line, so lines of unequal length and tab content do not drag the cursor
// leftward.
func (s *Session) MoveVertical(deltaRows int, selecting bool) {
	if deltaRows == 0 {
		return
	}

	if s.sel.Exists() && !selecting {
		if deltaRows < 0 {
			s.sel = s.sel.CollapseToStart()
		} else {
			s.sel = s.sel.CollapseToEnd()
		}
		s.goal = -1
		return
	}

	cur := s.sel.Head
	target := clamp(cur.Row+deltaRows, 0, s.buf.LastRow())
	if target == cur.Row {
		if !s.edgeJump {
			return
		}
		col := 0
		if deltaRows > 0 {
			col = s.buf.LineLen(cur.Row)
		}
		s.placeCursor(buffer.Position{Row: cur.Row, Col: col}, selecting)
		s.goal = -1
		return
	}

	if s.goal < 0 {
		s.goal = s.tabs.VisualColumn(s.buf.Line(cur.Row), cur.Col)
	}
	col := s.tabs.LogicalColumn(s.buf.Line(target), s.goal)
	s.placeCursor(buffer.Position{Row: target, Col: col}, selecting)
}

// MoveHorizontal moves the cursor one step left or right. Char-wise
// movement clamps at line boundaries unless wrapping is enabled, in which
// case it crosses onto the previous line's end or the next line's start.
// Word-wise movement skips one run of word characters and never leaves the
// line. Resets the visual-column memory.
func (s *Session) MoveHorizontal(dir Direction, byWord, selecting bool) {
	cur := s.sel.Head
	line := s.buf.Line(cur.Row)
	pos := cur

	switch {
	case byWord:
		pos.Col = s.wordTarget(line, cur.Col, dir)
	case dir == Backward:
		switch {
		case cur.Col > 0:
			pos.Col = cur.Col - 1
		case s.wrap && cur.Row > 0:
			pos = buffer.Position{Row: cur.Row - 1, Col: s.buf.LineLen(cur.Row - 1)}
		}
	default:
		switch {
		case cur.Col < len(line):
			pos.Col = cur.Col + 1
		case s.wrap && cur.Row < s.buf.LastRow():
			pos = buffer.Position{Row: cur.Row + 1, Col: 0}
		}
	}

	s.placeCursor(pos, selecting)
	s.goal = -1
}

// MoveLineStart places the cursor at column zero of its line.
func (s *Session) MoveLineStart(selecting bool) {
	cur := s.sel.Head
	s.MoveCursor(buffer.Position{Row: cur.Row, Col: 0}, selecting)
}

// MoveLineEnd places the cursor after the last character of its line.
func (s *Session) MoveLineEnd(selecting bool) {
	cur := s.sel.Head
	s.MoveCursor(buffer.Position{Row: cur.Row, Col: s.buf.LineLen(cur.Row)}, selecting)
}

// MoveDocStart places the cursor at the document origin.
func (s *Session) MoveDocStart(selecting bool) {
	s.MoveCursor(buffer.Position{}, selecting)
}

// MoveDocEnd places the cursor after the last character of the document.
func (s *Session) MoveDocEnd(selecting bool) {
	last := s.buf.LastRow()
	s.MoveCursor(buffer.Position{Row: last, Col: s.buf.LineLen(last)}, selecting)
}

// wordTarget returns the column after skipping one run of word characters
// in the given direction, first crossing any non-word characters in the
// way. It stops at the line boundary when no run exists before it.
func (s *Session) wordTarget(line []rune, col int, dir Direction) int {
	if dir == Backward {
		for col > 0 && !s.isWordChar(line[col-1]) {
			col--
		}
		for col > 0 && s.isWordChar(line[col-1]) {
			col--
		}
		return col
	}

	for col < len(line) && !s.isWordChar(line[col]) {
		col++
	}
	for col < len(line) && s.isWordChar(line[col]) {
		col++
	}
	return col
}
