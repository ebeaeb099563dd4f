// Package viewport tracks the window of the document the renderer shows:
// the first visible row, the first visible visual column, and the window
// size in cells. It answers how far the window must move to keep a given
// position visible. It holds no document state and never scrolls on its
// own; the renderer applies the deltas it computes.
package viewport

// Viewport is the visible window over the document. Rows are document
// rows; columns are visual (tab-expanded) columns.
type Viewport struct {
	minRow int
	minCol int
	width  int
	height int
}

// NewViewport creates a viewport at the document origin. Width and height
// are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize sets the window size in cells, clamped to a minimum of 1 each.
// The origin is left alone; the next render pass re-clamps it against the
// cursor.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// Width returns the window width in cells.
func (v *Viewport) Width() int { return v.width }

// Height returns the window height in rows.
func (v *Viewport) Height() int { return v.height }

// MinRow returns the first visible document row.
func (v *Viewport) MinRow() int { return v.minRow }

// MaxRow returns the last visible document row.
func (v *Viewport) MaxRow() int { return v.minRow + v.height - 1 }

// MinCol returns the first visible visual column.
func (v *Viewport) MinCol() int { return v.minCol }

// MaxCol returns the last visible visual column.
func (v *Viewport) MaxCol() int { return v.minCol + v.width - 1 }

// ContainsRow reports whether a document row is inside the window.
func (v *Viewport) ContainsRow(row int) bool {
	return row >= v.minRow && row <= v.MaxRow()
}

// RequiredScroll returns the signed row delta that brings row into the
// window, zero when it is already visible.
func (v *Viewport) RequiredScroll(row int) int {
	if row < v.minRow {
		return row - v.minRow
	}
	if row > v.MaxRow() {
		return row - v.MaxRow()
	}
	return 0
}

// RequiredPan returns the signed column delta that brings a visual column
// into the window, zero when it is already visible.
func (v *Viewport) RequiredPan(vcol int) int {
	if vcol < v.minCol {
		return vcol - v.minCol
	}
	if vcol > v.MaxCol() {
		return vcol - v.MaxCol()
	}
	return 0
}

// ScrollBy moves the window vertically by a signed row delta, clamped so
// the origin never goes negative.
func (v *Viewport) ScrollBy(rows int) {
	v.minRow += rows
	if v.minRow < 0 {
		v.minRow = 0
	}
}

// PanBy moves the window horizontally by a signed column delta, clamped so
// the origin never goes negative.
func (v *Viewport) PanBy(cols int) {
	v.minCol += cols
	if v.minCol < 0 {
		v.minCol = 0
	}
}

// ScreenRow converts a document row to a window-relative row. Callers
// check visibility first.
func (v *Viewport) ScreenRow(row int) int { return row - v.minRow }
