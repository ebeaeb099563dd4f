package layout

import "testing"

func TestNewTabExpander(t *testing.T) {
	te := NewTabExpander(4)
	if te.TabStop() != 4 {
		t.Errorf("expected tab stop 4, got %d", te.TabStop())
	}

	// Invalid widths default to 8
	te = NewTabExpander(0)
	if te.TabStop() != 8 {
		t.Errorf("expected default tab stop 8, got %d", te.TabStop())
	}

	te = NewTabExpander(-3)
	if te.TabStop() != 8 {
		t.Errorf("expected default tab stop 8 for negative, got %d", te.TabStop())
	}
}

func TestNextTabStop(t *testing.T) {
	te := NewTabExpander(8)

	tests := []struct {
		col      int
		expected int
	}{
		{0, 8},
		{1, 8},
		{7, 8},
		{8, 16},
		{9, 16},
		{15, 16},
		{16, 24},
	}

	for _, tt := range tests {
		if got := te.NextTabStop(tt.col); got != tt.expected {
			t.Errorf("NextTabStop(%d): expected %d, got %d", tt.col, tt.expected, got)
		}
	}
}

func TestVisualColumn(t *testing.T) {
	te := NewTabExpander(8)
	line := []rune("a\tb")

	tests := []struct {
		name    string
		charCol int
		want    int
	}{
		{"start", 0, 0},
		{"before tab", 1, 1},
		{"after tab", 2, 8},
		{"end of line", 3, 9},
		{"past end clamps", 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := te.VisualColumn(line, tt.charCol); got != tt.want {
				t.Errorf("VisualColumn(%q, %d) = %d, want %d", string(line), tt.charCol, got, tt.want)
			}
		})
	}
}

func TestVisualColumnNoTabs(t *testing.T) {
	te := NewTabExpander(8)
	line := []rune("hello")
	for i := 0; i <= len(line); i++ {
		if got := te.VisualColumn(line, i); got != i {
			t.Errorf("VisualColumn(%q, %d) = %d, want %d", string(line), i, got, i)
		}
	}
}

func TestLogicalColumn(t *testing.T) {
	te := NewTabExpander(8)
	line := []rune("a\tb")

	tests := []struct {
		name   string
		target int
		want   int
	}{
		{"zero", 0, 0},
		{"negative clamps", -2, 0},
		{"on first char", 1, 1},
		{"inside tab expansion", 5, 1},
		{"last tab cell", 7, 1},
		{"just after tab", 8, 2},
		{"end of line", 9, 3},
		{"past end", 40, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := te.LogicalColumn(line, tt.target); got != tt.want {
				t.Errorf("LogicalColumn(%q, %d) = %d, want %d", string(line), tt.target, got, tt.want)
			}
		})
	}
}

func TestLogicalColumnShortLine(t *testing.T) {
	te := NewTabExpander(4)
	line := []rune("ab")

	// Targets beyond the line resolve to the line length.
	if got := te.LogicalColumn(line, 17); got != 2 {
		t.Errorf("LogicalColumn(%q, 17) = %d, want 2", string(line), got)
	}
}

func TestColumnRoundTrip(t *testing.T) {
	te := NewTabExpander(8)
	lines := [][]rune{
		[]rune(""),
		[]rune("a\tb"),
		[]rune("\t\t"),
		[]rune("no tabs here"),
		[]rune("mix\ted\ttabs"),
		[]rune("\tlead"),
	}

	for _, line := range lines {
		for c := 0; c <= len(line); c++ {
			v := te.VisualColumn(line, c)

			// A visual column derived from a logical column always maps back
			// to that logical column.
			if got := te.LogicalColumn(line, v); got != c {
				t.Errorf("LogicalColumn(%q, VisualColumn(%d)=%d) = %d, want %d",
					string(line), c, v, got, c)
			}
		}

		// Arbitrary visual targets never overshoot into a tab.
		for v := 0; v <= te.Width(line)+2; v++ {
			c := te.LogicalColumn(line, v)
			if back := te.VisualColumn(line, c); back > v {
				t.Errorf("VisualColumn(%q, LogicalColumn(%d)=%d) = %d, overshoots %d",
					string(line), v, c, back, v)
			}
		}
	}
}

func TestExpandTabs(t *testing.T) {
	te := NewTabExpander(4)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"\t", "    "},
		{"a\tb", "a   b"},
		{"ab\tc", "ab  c"},
		{"abcd\te", "abcd    e"},
	}

	for _, tt := range tests {
		if got := string(te.ExpandTabs([]rune(tt.in))); got != tt.want {
			t.Errorf("ExpandTabs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWidth(t *testing.T) {
	te := NewTabExpander(8)

	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"a\tb", 9},
		{"\t", 8},
		{"1234567\t", 8},
		{"12345678\t", 16},
	}

	for _, tt := range tests {
		if got := te.Width([]rune(tt.in)); got != tt.want {
			t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
