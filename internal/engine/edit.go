package engine

import (
	"strings"

	"github.com/coffeegrind123/bashed-nano/internal/engine/buffer"
	"github.com/coffeegrind123/bashed-nano/internal/engine/cursor"
)

// InsertText splices text with no line separators at the cursor, deleting
// any active selection first. The cursor advances past the insertion.
func (s *Session) InsertText(text string) {
	s.DeleteSelection()
	if text == "" {
		return
	}

	cur := s.sel.Head
	runes := []rune(text)
	s.buf.InsertInLine(cur.Row, cur.Col, runes)
	s.sel = cursor.Caret(buffer.Position{Row: cur.Row, Col: cur.Col + len(runes)})
	s.goal = -1
	s.dirty.Record(cur.Row, cur.Row, 0)
}

// InsertNewline splits the current line at the cursor, deleting any active
// selection first. The cursor lands at the start of the new line.
func (s *Session) InsertNewline() {
	s.DeleteSelection()

	cur := s.sel.Head
	s.buf.SplitLine(cur.Row, cur.Col)
	s.sel = cursor.Caret(buffer.Position{Row: cur.Row + 1, Col: 0})
	s.goal = -1
	s.dirty.Record(cur.Row, cur.Row+1, 1)
}

// InsertMultiline splits text on line separators and applies InsertText and
// InsertNewline alternately. A trailing separator in the text produces a
// trailing line split, so pasted shapes are preserved exactly.
func (s *Session) InsertMultiline(text string) {
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			s.InsertNewline()
		}
		if seg != "" {
			s.InsertText(seg)
		}
	}
}

// DeleteBackward removes the selection if one exists, else the character
// before the cursor. At column zero it joins the line onto the previous one.
func (s *Session) DeleteBackward() {
	if s.DeleteSelection() {
		return
	}

	cur := s.sel.Head
	switch {
	case cur.Col > 0:
		s.buf.DeleteSpan(buffer.Position{Row: cur.Row, Col: cur.Col - 1}, cur)
		s.sel = cursor.Caret(buffer.Position{Row: cur.Row, Col: cur.Col - 1})
		s.dirty.Record(cur.Row, cur.Row, 0)
	case cur.Row > 0:
		col := s.buf.LineLen(cur.Row - 1)
		removed := s.buf.DeleteSpan(buffer.Position{Row: cur.Row - 1, Col: col}, cur)
		s.sel = cursor.Caret(buffer.Position{Row: cur.Row - 1, Col: col})
		s.dirty.Record(cur.Row-1, cur.Row-1, -removed)
	}
	s.goal = -1
}

// DeleteForward removes the selection if one exists, else the character at
// the cursor. At the line end it pulls the next line up.
func (s *Session) DeleteForward() {
	if s.DeleteSelection() {
		return
	}

	cur := s.sel.Head
	switch {
	case cur.Col < s.buf.LineLen(cur.Row):
		s.buf.DeleteSpan(cur, buffer.Position{Row: cur.Row, Col: cur.Col + 1})
		s.dirty.Record(cur.Row, cur.Row, 0)
	case cur.Row < s.buf.LastRow():
		removed := s.buf.DeleteSpan(cur, buffer.Position{Row: cur.Row + 1, Col: 0})
		s.dirty.Record(cur.Row, cur.Row, -removed)
	}
	s.goal = -1
}

// DeleteWordBackward removes from the start of the word run before the
// cursor up to the cursor. At column zero it behaves like DeleteBackward.
func (s *Session) DeleteWordBackward() {
	if s.DeleteSelection() {
		return
	}

	cur := s.sel.Head
	if cur.Col == 0 {
		s.DeleteBackward()
		return
	}

	target := s.wordTarget(s.buf.Line(cur.Row), cur.Col, Backward)
	s.buf.DeleteSpan(buffer.Position{Row: cur.Row, Col: target}, cur)
	s.sel = cursor.Caret(buffer.Position{Row: cur.Row, Col: target})
	s.goal = -1
	s.dirty.Record(cur.Row, cur.Row, 0)
}

// DeleteWordForward removes from the cursor through the end of the next
// word run. At the line end it behaves like DeleteForward.
func (s *Session) DeleteWordForward() {
	if s.DeleteSelection() {
		return
	}

	cur := s.sel.Head
	line := s.buf.Line(cur.Row)
	if cur.Col >= len(line) {
		s.DeleteForward()
		return
	}

	target := s.wordTarget(line, cur.Col, Forward)
	s.buf.DeleteSpan(cur, buffer.Position{Row: cur.Row, Col: target})
	s.goal = -1
	s.dirty.Record(cur.Row, cur.Row, 0)
}
