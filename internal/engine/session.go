// Package engine implements the editing session: one aggregate owning the
// buffer, the selection and the visual-column memory, exposing every
// cursor and mutation operation the editor dispatches. All state is owned
// by the event-loop goroutine; nothing here locks.
package engine

import (
	"strings"
	"unicode"

	"github.com/coffeegrind123/bashed-nano/internal/engine/buffer"
	"github.com/coffeegrind123/bashed-nano/internal/engine/cursor"
	"github.com/coffeegrind123/bashed-nano/internal/layout"
)

// DirtyRecorder receives the dirty-region requests mutations emit: a row
// range plus the change in line count. A nonzero delta tells the renderer
// the rows below shifted.
type DirtyRecorder interface {
	Record(first, last, lineDelta int)
}

// nopRecorder is the default sink when no renderer is attached.
type nopRecorder struct{}

func (nopRecorder) Record(int, int, int) {}

// Session is the editing session for one open document.
type Session struct {
	buf  *buffer.Buffer
	sel  cursor.Selection
	tabs *layout.TabExpander

	// goal is the visual-column memory for vertical movement: the last
	// explicitly targeted visual column, -1 when unset. Horizontal moves
	// and edits reset it; consecutive vertical moves keep it.
	goal int

	wrap      bool
	edgeJump  bool
	wordExtra string
	dirty     DirtyRecorder
}

// Option configures a Session.
type Option func(*Session)

// WithTabExpander shares a tab expander with the session. The renderer
// should use the same instance so columns agree.
func WithTabExpander(tabs *layout.TabExpander) Option {
	return func(s *Session) {
		if tabs != nil {
			s.tabs = tabs
		}
	}
}

// WithWrap enables or disables horizontal movement wrapping at line edges.
func WithWrap(wrap bool) Option {
	return func(s *Session) { s.wrap = wrap }
}

// WithEdgeJump enables or disables the jump to line start/end when vertical
// movement runs past the first/last line.
func WithEdgeJump(jump bool) Option {
	return func(s *Session) { s.edgeJump = jump }
}

// WithWordChars sets extra runes counted as word characters on top of
// letters and digits.
func WithWordChars(extra string) Option {
	return func(s *Session) { s.wordExtra = extra }
}

// WithDirtyRecorder attaches the sink for dirty-region requests.
func WithDirtyRecorder(rec DirtyRecorder) Option {
	return func(s *Session) {
		if rec != nil {
			s.dirty = rec
		}
	}
}

// New creates a session over an empty document. Wrapping and edge jump
// default to on, the word class to alphanumerics plus underscore.
func New(opts ...Option) *Session {
	s := &Session{
		buf:       buffer.New(),
		tabs:      layout.NewTabExpander(8),
		goal:      -1,
		wrap:      true,
		edgeJump:  true,
		wordExtra: "_",
		dirty:     nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cursor returns the cursor position (the selection head).
func (s *Session) Cursor() buffer.Position {
	return s.sel.Head
}

// Anchor returns the selection anchor.
func (s *Session) Anchor() buffer.Position {
	return s.sel.Anchor
}

// VisualCursor returns the cursor row and its tab-expanded visual column.
func (s *Session) VisualCursor() (row, visualCol int) {
	cur := s.sel.Head
	return cur.Row, s.tabs.VisualColumn(s.buf.Line(cur.Row), cur.Col)
}

// LineCount returns the number of document lines.
func (s *Session) LineCount() int {
	return s.buf.LineCount()
}

// Line returns a document line. Shared storage; read-only for callers.
func (s *Session) Line(row int) []rune {
	return s.buf.Line(row)
}

// LineLen returns the character length of a line.
func (s *Session) LineLen(row int) int {
	return s.buf.LineLen(row)
}

// Lines copies the document out as strings.
func (s *Session) Lines() []string {
	return s.buf.Lines()
}

// SetLines replaces the document wholesale (file load). Cursor and
// selection reset to the origin, the visual-column memory and the modified
// flag clear, and the whole range is reported dirty.
func (s *Session) SetLines(lines []string) {
	old := s.buf.LineCount()
	s.buf.SetLines(lines)
	s.buf.SetModified(false)
	s.sel = cursor.Caret(buffer.Position{})
	s.goal = -1

	last := s.buf.LineCount() - 1
	if old > s.buf.LineCount() {
		last = old - 1
	}
	s.dirty.Record(0, last, s.buf.LineCount()-old)
}

// Modified reports unsaved changes.
func (s *Session) Modified() bool {
	return s.buf.Modified()
}

// ClearModified marks the document clean, typically after a save.
func (s *Session) ClearModified() {
	s.buf.SetModified(false)
}

// MoveCursor places the cursor. Row is clamped to the document; Col is the
// caller's contract but is clamped to the target line as a backstop. With
// selecting false the anchor snaps along; otherwise it stays and the
// selection extends. Resets the visual-column memory.
func (s *Session) MoveCursor(pos buffer.Position, selecting bool) {
	s.placeCursor(pos, selecting)
	s.goal = -1
}

// placeCursor is MoveCursor without the goal-column reset, shared with the
// vertical-movement path that must preserve it.
func (s *Session) placeCursor(pos buffer.Position, selecting bool) {
	pos.Row = clamp(pos.Row, 0, s.buf.LastRow())
	pos.Col = clamp(pos.Col, 0, s.buf.LineLen(pos.Row))
	s.sel = s.sel.MoveTo(pos, selecting)
}

// SelectionRange returns the normalized selection span and whether a
// selection exists.
func (s *Session) SelectionRange() (cursor.Range, bool) {
	return s.sel.Range(), s.sel.Exists()
}

// SelectionExists reports whether any text is selected.
func (s *Session) SelectionExists() bool {
	return s.sel.Exists()
}

// CollapseSelection snaps the anchor onto the cursor.
func (s *Session) CollapseSelection() {
	s.sel = s.sel.Collapse()
}

// SelectAll selects the whole document, cursor at the end.
func (s *Session) SelectAll() {
	last := s.buf.LastRow()
	s.sel = cursor.Selection{
		Anchor: buffer.Position{},
		Head:   buffer.Position{Row: last, Col: s.buf.LineLen(last)},
	}
	s.goal = -1
}

// SelectedText returns the selected span, lines joined with \n. The second
// return is false when no selection exists; that is a no-op condition, not
// an error.
func (s *Session) SelectedText() (string, bool) {
	r, ok := s.SelectionRange()
	if !ok {
		return "", false
	}

	if r.Start.Row == r.End.Row {
		line := s.buf.Line(r.Start.Row)
		return string(line[r.Start.Col:r.End.Col]), true
	}

	var sb strings.Builder
	sb.WriteString(string(s.buf.Line(r.Start.Row)[r.Start.Col:]))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(s.buf.Line(row)))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(s.buf.Line(r.End.Row)[:r.End.Col]))
	return sb.String(), true
}

// DeleteSelection splices out the selected span, collapsing the cursor to
// the deletion point. Returns false (no-op) when nothing is selected.
func (s *Session) DeleteSelection() bool {
	r, ok := s.SelectionRange()
	if !ok {
		return false
	}

	removed := s.buf.DeleteSpan(r.Start, r.End)
	s.sel = cursor.Caret(r.Start)
	s.goal = -1
	s.dirty.Record(r.Start.Row, r.Start.Row, -removed)
	return true
}

func (s *Session) isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(s.wordExtra, r)
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
