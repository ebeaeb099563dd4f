// Package renderer keeps a bounded terminal window synchronized with the
// document. Each pass scrolls the viewport to the cursor, repaints the
// smallest region the recorded damage allows, draws the status bar and
// repositions the terminal cursor, then flushes once.
package renderer

import (
	"strings"

	"github.com/coffeegrind123/bashed-nano/internal/engine/buffer"
	"github.com/coffeegrind123/bashed-nano/internal/engine/cursor"
	"github.com/coffeegrind123/bashed-nano/internal/layout"
	"github.com/coffeegrind123/bashed-nano/internal/renderer/dirty"
	"github.com/coffeegrind123/bashed-nano/internal/renderer/statusline"
	"github.com/coffeegrind123/bashed-nano/internal/renderer/viewport"
	"github.com/coffeegrind123/bashed-nano/internal/term"
)

// Source is the read view of the document a render pass works from. The
// editing session implements it.
type Source interface {
	LineCount() int
	Line(row int) []rune
	Cursor() buffer.Position
	VisualCursor() (row, vcol int)
	SelectionRange() (cursor.Range, bool)
}

// Default selection markers: reverse video on, attributes off.
const (
	DefaultSelectionStart = "\x1b[7m"
	DefaultSelectionEnd   = "\x1b[0m"
)

// Renderer owns the screen: the viewport over the document, the damage
// accumulated since the last pass, and the output writer.
type Renderer struct {
	out    *term.Writer
	view   *viewport.Viewport
	damage *dirty.Tracker
	tabs   *layout.TabExpander

	selStart string
	selEnd   string

	// screenRows is the full terminal height; the bottom row is the
	// status bar, the rows above it the text window.
	screenRows int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSelectionMarkers overrides the terminal sequences bracketing
// selected text. Empty strings keep the defaults.
func WithSelectionMarkers(start, end string) Option {
	return func(r *Renderer) {
		if start != "" {
			r.selStart = start
		}
		if end != "" {
			r.selEnd = end
		}
	}
}

// WithTabExpander shares a tab expander with the renderer. Must be the
// same instance the session uses or visual columns disagree.
func WithTabExpander(tabs *layout.TabExpander) Option {
	return func(r *Renderer) {
		if tabs != nil {
			r.tabs = tabs
		}
	}
}

// New creates a Renderer writing through out, consuming damage from track.
// width and height are the full terminal size.
func New(out *term.Writer, track *dirty.Tracker, width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		out:      out,
		view:     viewport.NewViewport(1, 1),
		damage:   track,
		tabs:     layout.NewTabExpander(8),
		selStart: DefaultSelectionStart,
		selEnd:   DefaultSelectionEnd,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Resize(width, height)
	return r
}

// Resize adapts to a new terminal size and forces a full repaint. The
// text window is everything above the status row.
func (r *Renderer) Resize(width, height int) {
	if height < 2 {
		height = 2
	}
	r.screenRows = height
	r.view.Resize(width, height-1)
	r.damage.ForceFull()
}

// Viewport exposes the window state, mainly for page-sized movement.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.view
}

// Render performs one pass: scroll the viewport to the cursor, repaint per
// the damage tier, draw the status bar, place the cursor, flush.
//
// Tier selection: a full-redraw flag, any horizontal pan, any accumulated
// line-count delta, or a scroll of at least the window height repaints
// every visible row. A smaller scroll shifts the surviving rows with the
// terminal's scroll region and paints only the exposed ones. Otherwise
// only the recorded dirty row range is repainted.
func (r *Renderer) Render(src Source, status statusline.Content) error {
	curRow, curVis := src.VisualCursor()
	scroll := r.view.RequiredScroll(curRow)
	pan := r.view.RequiredPan(curVis)
	r.view.ScrollBy(scroll)
	r.view.PanBy(pan)

	r.out.HideCursor()

	height := r.view.Height()
	switch {
	case r.damage.Full() || pan != 0 || r.damage.LineDelta() != 0 || abs(scroll) >= height:
		r.paintRows(src, r.view.MinRow(), r.view.MaxRow())
	case scroll != 0:
		r.shift(src, scroll)
	default:
		if first, last, ok := r.damage.Range(); ok {
			r.paintRows(src, first, last)
		}
	}

	cur := src.Cursor()
	status.Row, status.Col, status.Visual = cur.Row, cur.Col, curVis
	promptCol := r.paintStatus(status)

	if promptCol >= 0 {
		r.out.MoveTo(r.screenRows-1, promptCol)
	} else {
		r.out.MoveTo(r.view.ScreenRow(curRow), curVis-r.view.MinCol())
	}
	r.out.ShowCursor()

	r.damage.Clear()
	return r.out.Flush()
}

// shift scrolls the text window with the terminal's native scroll region,
// then paints the rows the shift exposed plus any dirty rows still
// visible.
func (r *Renderer) shift(src Source, scroll int) {
	r.out.SetScrollRegion(0, r.view.Height()-1)
	if scroll > 0 {
		r.out.ScrollUp(scroll)
	} else {
		r.out.ScrollDown(-scroll)
	}
	r.out.ResetScrollRegion()

	if scroll > 0 {
		r.paintRows(src, r.view.MaxRow()-scroll+1, r.view.MaxRow())
	} else {
		r.paintRows(src, r.view.MinRow(), r.view.MinRow()-scroll-1)
	}
	if first, last, ok := r.damage.Range(); ok {
		r.paintRows(src, first, last)
	}
}

// paintRows repaints the document rows first..last, skipping whatever
// falls outside the window.
func (r *Renderer) paintRows(src Source, first, last int) {
	sel, hasSel := src.SelectionRange()
	for row := first; row <= last; row++ {
		if !r.view.ContainsRow(row) {
			continue
		}
		r.paintRow(src, row, sel, hasSel)
	}
}

// paintRow repaints a single document row at its screen position. Rows
// past the end of the document come out blank.
func (r *Renderer) paintRow(src Source, row int, sel cursor.Range, hasSel bool) {
	r.out.MoveTo(r.view.ScreenRow(row), 0)
	if row >= src.LineCount() {
		r.out.ClearLine()
		return
	}
	r.out.WriteString(r.renderLine(src.Line(row), row, sel, hasSel))
	r.out.ClearLine()
}

// renderLine produces the visible text of one row: tabs expanded, one
// trailing blank cell standing in for the line end, clipped to the
// window, selection markers spliced in at visual columns.
func (r *Renderer) renderLine(line []rune, row int, sel cursor.Range, hasSel bool) string {
	cells := append(r.tabs.ExpandTabs(line), ' ')

	minCol := r.view.MinCol()
	var visible []rune
	if minCol < len(cells) {
		end := minCol + r.view.Width()
		if end > len(cells) {
			end = len(cells)
		}
		visible = cells[minCol:end]
	}

	startOff, endOff, marked := 0, 0, false
	if hasSel && sel.CoversRow(row) {
		startVis, endVis := r.selectionSpan(line, row, sel, len(cells))
		startOff = clamp(startVis-minCol, 0, len(visible))
		endOff = clamp(endVis-minCol, 0, len(visible))
		marked = startOff < endOff
	}
	if !marked {
		return string(visible)
	}

	var sb strings.Builder
	for i := 0; i <= len(visible); i++ {
		if i == endOff {
			sb.WriteString(r.selEnd)
		}
		if i == startOff {
			sb.WriteString(r.selStart)
		}
		if i < len(visible) {
			sb.WriteRune(visible[i])
		}
	}
	return sb.String()
}

// selectionSpan returns the selection's visual column range on one row.
// Rows the selection leaves through the line end extend one cell past the
// expanded text, so the implicit newline highlights too.
func (r *Renderer) selectionSpan(line []rune, row int, sel cursor.Range, cellCount int) (startVis, endVis int) {
	startVis = 0
	if row == sel.Start.Row {
		startVis = r.tabs.VisualColumn(line, sel.Start.Col)
	}
	endVis = cellCount
	if row == sel.End.Row {
		endVis = r.tabs.VisualColumn(line, sel.End.Col)
	}
	return startVis, endVis
}

// paintStatus draws the bottom row in reverse video. Returns the in-row
// cursor cell while a prompt is active, -1 otherwise.
func (r *Renderer) paintStatus(c statusline.Content) int {
	text, cur := c.Format(r.view.Width())
	r.out.MoveTo(r.screenRows-1, 0)
	r.out.Reverse()
	r.out.WriteString(text)
	r.out.Reset()
	return cur
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
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
