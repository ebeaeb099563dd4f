// Package layout converts between logical character columns and visual
// terminal columns for lines that may contain hard tabs.
package layout

// TabExpander maps logical columns to visual columns and back for a fixed
// tab stop width.
type TabExpander struct {
	tabStop int
}

// NewTabExpander creates a tab expander with the given tab stop width.
func NewTabExpander(tabStop int) *TabExpander {
	if tabStop < 1 {
		tabStop = 8
	}
	return &TabExpander{tabStop: tabStop}
}

// TabStop returns the configured tab stop width.
func (t *TabExpander) TabStop() int {
	return t.tabStop
}

// NextTabStop returns the first tab stop column after the given visual
// column. A tab always advances at least one column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabStop - (col % t.tabStop)
}

// TabStopOffset returns how many columns a tab at the given visual column
// occupies.
func (t *TabExpander) TabStopOffset(col int) int {
	return t.tabStop - (col % t.tabStop)
}

// VisualColumn returns the visual column of the given character offset.
// Offsets past the end of the line are treated as the end of the line.
func (t *TabExpander) VisualColumn(line []rune, charCol int) int {
	if charCol > len(line) {
		charCol = len(line)
	}
	col := 0
	for i := 0; i < charCol; i++ {
		if line[i] == '\t' {
			col = t.NextTabStop(col)
		} else {
			col++
		}
	}
	return col
}

// LogicalColumn returns the character offset whose cell contains the given
// visual column. A target strictly inside a tab's expansion resolves to the
// offset of the tab itself, so the cursor never lands mid-tab. A target past
// the line's visual width resolves to the line length.
func (t *TabExpander) LogicalColumn(line []rune, visualTarget int) int {
	if visualTarget <= 0 {
		return 0
	}
	col := 0
	for i, r := range line {
		next := col + 1
		if r == '\t' {
			next = t.NextTabStop(col)
		}
		if visualTarget < next {
			return i
		}
		col = next
	}
	return len(line)
}

// Width returns the visual width of the whole line.
func (t *TabExpander) Width(line []rune) int {
	return t.VisualColumn(line, len(line))
}

// ExpandTabs returns the line with every tab replaced by the spaces it
// occupies, starting from visual column zero.
func (t *TabExpander) ExpandTabs(line []rune) []rune {
	out := make([]rune, 0, len(line))
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := t.TabStopOffset(col)
			for i := 0; i < n; i++ {
				out = append(out, ' ')
			}
			col += n
		} else {
			out = append(out, r)
			col++
		}
	}
	return out
}
