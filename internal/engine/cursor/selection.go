// Package cursor provides the selection model: a fixed anchor plus the
// moving cursor head, with the normalized range derived on demand.
package cursor

import "github.com/coffeegrind123/bashed-nano/internal/engine/buffer"

// Selection is an anchored span. Anchor is the fixed end, Head the moving
// end (the cursor). The two coincide when nothing is selected; there is no
// separate "no selection" state to keep in sync.
type Selection struct {
	Anchor buffer.Position
	Head   buffer.Position
}

// Caret creates a collapsed selection at a position.
func Caret(p buffer.Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// Exists reports whether the selection spans any text.
func (s Selection) Exists() bool {
	return s.Anchor != s.Head
}

// Range returns the normalized span with Start <= End in row-major order.
// It is recomputed from the endpoints on every call, never stored.
func (s Selection) Range() Range {
	if s.Head.Before(s.Anchor) {
		return Range{Start: s.Head, End: s.Anchor}
	}
	return Range{Start: s.Anchor, End: s.Head}
}

// MoveTo moves the head. When selecting is false the anchor snaps along
// and the selection collapses.
func (s Selection) MoveTo(p buffer.Position, selecting bool) Selection {
	s.Head = p
	if !selecting {
		s.Anchor = p
	}
	return s
}

// Collapse snaps the anchor onto the head.
func (s Selection) Collapse() Selection {
	s.Anchor = s.Head
	return s
}

// CollapseToStart collapses onto the normalized start.
func (s Selection) CollapseToStart() Selection {
	return Caret(s.Range().Start)
}

// CollapseToEnd collapses onto the normalized end.
func (s Selection) CollapseToEnd() Selection {
	return Caret(s.Range().End)
}

// Range is a normalized selection span: Start <= End in row-major order,
// End exclusive.
type Range struct {
	Start buffer.Position
	End   buffer.Position
}

// IsEmpty reports whether the range spans no text.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// CoversRow reports whether any part of the range touches the given row.
func (r Range) CoversRow(row int) bool {
	return row >= r.Start.Row && row <= r.End.Row && !r.IsEmpty()
}
