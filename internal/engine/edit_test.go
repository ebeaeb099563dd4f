package engine

import (
	"strings"
	"testing"

	"github.com/coffeegrind123/bashed-nano/internal/engine/buffer"
)

func TestInsertText(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		cursor    buffer.Position
		text      string
		wantLines string
		wantCur   buffer.Position
	}{
		{
			name:      "middle of line",
			lines:     []string{"held"},
			cursor:    buffer.Position{Row: 0, Col: 2},
			text:      "lo wor",
			wantLines: "hello world",
			wantCur:   buffer.Position{Row: 0, Col: 8},
		},
		{
			name:      "empty line",
			lines:     []string{""},
			cursor:    buffer.Position{},
			text:      "x",
			wantLines: "x",
			wantCur:   buffer.Position{Row: 0, Col: 1},
		},
		{
			name:      "multi-byte runes advance by rune count",
			lines:     []string{"ab"},
			cursor:    buffer.Position{Row: 0, Col: 1},
			text:      "héé",
			wantLines: "ahééb",
			wantCur:   buffer.Position{Row: 0, Col: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestSession(tt.lines...)
			s.MoveCursor(tt.cursor, false)

			s.InsertText(tt.text)

			if got := strings.Join(s.Lines(), "\n"); got != tt.wantLines {
				t.Errorf("Lines() = %q, want %q", got, tt.wantLines)
			}
			if got := s.Cursor(); got != tt.wantCur {
				t.Errorf("Cursor() = %+v, want %+v", got, tt.wantCur)
			}
			if !s.Modified() {
				t.Error("Modified() = false after InsertText")
			}
			r, ok := rec.last()
			if !ok {
				t.Fatal("InsertText recorded no dirty region")
			}
			if want := (dirtyRecord{tt.wantCur.Row, tt.wantCur.Row, 0}); r != want {
				t.Errorf("dirty record = %+v, want %+v", r, want)
			}
		})
	}
}

func TestInsertTextReplacesSelection(t *testing.T) {
	s, _ := newTestSession("hello world")
	s.MoveCursor(buffer.Position{Row: 0, Col: 6}, false)
	s.MoveCursor(buffer.Position{Row: 0, Col: 11}, true)

	s.InsertText("there")

	if got := strings.Join(s.Lines(), "\n"); got != "hello there" {
		t.Errorf("Lines() = %q, want %q", got, "hello there")
	}
	if got, want := s.Cursor(), (buffer.Position{Row: 0, Col: 11}); got != want {
		t.Errorf("Cursor() = %+v, want %+v", got, want)
	}
}

func TestInsertTextEmptyWithSelection(t *testing.T) {
	s, _ := newTestSession("abc")
	s.MoveCursor(buffer.Position{Row: 0, Col: 0}, false)
	s.MoveCursor(buffer.Position{Row: 0, Col: 2}, true)

	// An empty insert still consumes the selection.
	s.InsertText("")

	if got := strings.Join(s.Lines(), "\n"); got != "c" {
		t.Errorf("Lines() = %q, want %q", got, "c")
	}
	if s.SelectionExists() {
		t.Error("SelectionExists() = true after empty insert over a selection")
	}
}

func TestInsertNewline(t *testing.T) {
	s, rec := newTestSession("abc", "def")
	s.MoveCursor(buffer.Position{Row: 0, Col: 3}, false)

	s.InsertNewline()

	if got := strings.Join(s.Lines(), "\n"); got != "abc\n\ndef" {
		t.Errorf("Lines() = %q, want %q", got, "abc\n\ndef")
	}
	if got, want := s.Cursor(), (buffer.Position{Row: 1, Col: 0}); got != want {
		t.Errorf("Cursor() = %+v, want %+v", got, want)
	}
	r, ok := rec.last()
	if !ok {
		t.Fatal("InsertNewline recorded no dirty region")
	}
	if want := (dirtyRecord{0, 1, 1}); r != want {
		t.Errorf("dirty record = %+v, want %+v", r, want)
	}
}

func TestInsertNewlineMidLine(t *testing.T) {
	s, _ := newTestSession("hello")
	s.MoveCursor(buffer.Position{Row: 0, Col: 2}, false)

	s.InsertNewline()

	if got := strings.Join(s.Lines(), "\n"); got != "he\nllo" {
		t.Errorf("Lines() = %q, want %q", got, "he\nllo")
	}
	if got, want := s.Cursor(), (buffer.Position{Row: 1, Col: 0}); got != want {
		t.Errorf("Cursor() = %+v, want %+v", got, want)
	}
}

func TestInsertMultiline(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		cursor    buffer.Position
		text      string
		wantLines string
		wantCur   buffer.Position
	}{
		{
			name:      "no separator stays on one line",
			lines:     []string{"ab"},
			cursor:    buffer.Position{Row: 0, Col: 1},
			text:      "xy",
			wantLines: "axyb",
			wantCur:   buffer.Position{Row: 0, Col: 3},
		},
		{
			name:      "two segments split once",
			lines:     []string{"ab"},
			cursor:    buffer.Position{Row: 0, Col: 1},
			text:      "x\ny",
			wantLines: "ax\nyb",
			wantCur:   buffer.Position{Row: 1, Col: 1},
		},
		{
			name:      "trailing separator leaves cursor on fresh line",
			lines:     []string{""},
			cursor:    buffer.Position{},
			text:      "one\ntwo\n",
			wantLines: "one\ntwo\n",
			wantCur:   buffer.Position{Row: 2, Col: 0},
		},
		{
			name:      "leading separator splits first",
			lines:     []string{"ab"},
			cursor:    buffer.Position{Row: 0, Col: 1},
			text:      "\nx",
			wantLines: "a\nxb",
			wantCur:   buffer.Position{Row: 1, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(tt.lines...)
			s.MoveCursor(tt.cursor, false)

			s.InsertMultiline(tt.text)

			if got := strings.Join(s.Lines(), "\n"); got != tt.wantLines {
				t.Errorf("Lines() = %q, want %q", got, tt.wantLines)
			}
			if got := s.Cursor(); got != tt.wantCur {
				t.Errorf("Cursor() = %+v, want %+v", got, tt.wantCur)
			}
		})
	}
}

func TestDeleteBackward(t *testing.T) {
	t.Run("character", func(t *testing.T) {
		s, rec := newTestSession("abc")
		s.MoveCursor(buffer.Position{Row: 0, Col: 2}, false)

		s.DeleteBackward()

		if got := strings.Join(s.Lines(), "\n"); got != "ac" {
			t.Errorf("Lines() = %q, want %q", got, "ac")
		}
		if got, want := s.Cursor(), (buffer.Position{Row: 0, Col: 1}); got != want {
			t.Errorf("Cursor() = %+v, want %+v", got, want)
		}
		r, _ := rec.last()
		if want := (dirtyRecord{0, 0, 0}); r != want {
			t.Errorf("dirty record = %+v, want %+v", r, want)
		}
	})

	t.Run("join at column zero", func(t *testing.T) {
		s, rec := newTestSession("ab", "cd")
		s.MoveCursor(buffer.Position{Row: 1, Col: 0}, false)

		s.DeleteBackward()

		if got := strings.Join(s.Lines(), "\n"); got != "abcd" {
			t.Errorf("Lines() = %q, want %q", got, "abcd")
		}
		if got, want := s.Cursor(), (buffer.Position{Row: 0, Col: 2}); got != want {
			t.Errorf("Cursor() = %+v, want %+v", got, want)
		}
		r, _ := rec.last()
		if want := (dirtyRecord{0, 0, -1}); r != want {
			t.Errorf("dirty record = %+v, want %+v", r, want)
		}
	})

	t.Run("document start is a no-op", func(t *testing.T) {
		s, rec := newTestSession("ab")

		s.DeleteBackward()

		if got := strings.Join(s.Lines(), "\n"); got != "ab" {
			t.Errorf("Lines() = %q, want %q", got, "ab")
		}
		if len(rec.records) != 0 {
			t.Errorf("dirty records = %+v, want none", rec.records)
		}
	})

	t.Run("selection wins over character", func(t *testing.T) {
		s, _ := newTestSession("abcdef")
		s.MoveCursor(buffer.Position{Row: 0, Col: 1}, false)
		s.MoveCursor(buffer.Position{Row: 0, Col: 4}, true)

		s.DeleteBackward()

		if got := strings.Join(s.Lines(), "\n"); got != "aef" {
			t.Errorf("Lines() = %q, want %q", got, "aef")
		}
	})
}

func TestDeleteForward(t *testing.T) {
	t.Run("character leaves cursor in place", func(t *testing.T) {
		s, _ := newTestSession("abc")
		s.MoveCursor(buffer.Position{Row: 0, Col: 1}, false)

		s.DeleteForward()

		if got := strings.Join(s.Lines(), "\n"); got != "ac" {
			t.Errorf("Lines() = %q, want %q", got, "ac")
		}
		if got, want := s.Cursor(), (buffer.Position{Row: 0, Col: 1}); got != want {
			t.Errorf("Cursor() = %+v, want %+v", got, want)
		}
	})

	t.Run("pulls next line up at line end", func(t *testing.T) {
		s, rec := newTestSession("ab", "cd")
		s.MoveCursor(buffer.Position{Row: 0, Col: 2}, false)

		s.DeleteForward()

		if got := strings.Join(s.Lines(), "\n"); got != "abcd" {
			t.Errorf("Lines() = %q, want %q", got, "abcd")
		}
		if got, want := s.Cursor(), (buffer.Position{Row: 0, Col: 2}); got != want {
			t.Errorf("Cursor() = %+v, want %+v", got, want)
		}
		r, _ := rec.last()
		if want := (dirtyRecord{0, 0, -1}); r != want {
			t.Errorf("dirty record = %+v, want %+v", r, want)
		}
	})

	t.Run("document end is a no-op", func(t *testing.T) {
		s, rec := newTestSession("ab")
		s.MoveCursor(buffer.Position{Row: 0, Col: 2}, false)

		s.DeleteForward()

		if got := strings.Join(s.Lines(), "\n"); got != "ab" {
			t.Errorf("Lines() = %q, want %q", got, "ab")
		}
		if len(rec.records) != 0 {
			t.Errorf("dirty records = %+v, want none", rec.records)
		}
	})
}

func TestDeleteWordBackward(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		col      int
		wantLine string
		wantCol  int
	}{
		{"from word end", "foo bar", 7, "foo ", 4},
		{"separators then word", "foo bar  ", 9, "foo ", 4},
		{"mid word", "foobar", 3, "bar", 0},
		{"underscored identifier", "x my_var", 8, "x ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(tt.line)
			s.MoveCursor(buffer.Position{Row: 0, Col: tt.col}, false)

			s.DeleteWordBackward()

			if got := strings.Join(s.Lines(), "\n"); got != tt.wantLine {
				t.Errorf("Lines() = %q, want %q", got, tt.wantLine)
			}
			if got := s.Cursor().Col; got != tt.wantCol {
				t.Errorf("Cursor().Col = %d, want %d", got, tt.wantCol)
			}
		})
	}

	t.Run("column zero joins lines", func(t *testing.T) {
		s, _ := newTestSession("ab", "cd")
		s.MoveCursor(buffer.Position{Row: 1, Col: 0}, false)

		s.DeleteWordBackward()

		if got := strings.Join(s.Lines(), "\n"); got != "abcd" {
			t.Errorf("Lines() = %q, want %q", got, "abcd")
		}
	})
}

func TestDeleteWordForward(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		col      int
		wantLine string
	}{
		{"from word start", "foo bar", 0, " bar"},
		{"separators then word", "foo   bar", 3, "foo"},
		{"mid word", "foobar x", 3, "foo x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(tt.line)
			s.MoveCursor(buffer.Position{Row: 0, Col: tt.col}, false)

			s.DeleteWordForward()

			if got := strings.Join(s.Lines(), "\n"); got != tt.wantLine {
				t.Errorf("Lines() = %q, want %q", got, tt.wantLine)
			}
		})
	}

	t.Run("line end pulls next line up", func(t *testing.T) {
		s, _ := newTestSession("ab", "cd")
		s.MoveCursor(buffer.Position{Row: 0, Col: 2}, false)

		s.DeleteWordForward()

		if got := strings.Join(s.Lines(), "\n"); got != "abcd" {
			t.Errorf("Lines() = %q, want %q", got, "abcd")
		}
	})
}
