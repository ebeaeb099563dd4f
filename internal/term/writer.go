package term

import (
	"bufio"
	"fmt"
	"io"
)

// Writer batches terminal output for one render pass: escape sequences and
// row text accumulate in a buffer and reach the terminal on Flush, so a
// pass paints without flicker. Write errors stick inside bufio and come
// back from Flush.
//
// Rows and columns are zero-based here; the 1-based arithmetic the
// terminal wants stays inside this file.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer over the terminal output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, 8192)}
}

// WriteString appends literal text.
func (w *Writer) WriteString(s string) {
	w.w.WriteString(s)
}

// MoveTo places the cursor at a zero-based row and column.
func (w *Writer) MoveTo(row, col int) {
	fmt.Fprintf(w.w, "\x1b[%d;%dH", row+1, col+1)
}

// Home places the cursor at the top-left corner.
func (w *Writer) Home() {
	w.w.WriteString("\x1b[H")
}

// HideCursor hides the terminal cursor.
func (w *Writer) HideCursor() {
	w.w.WriteString("\x1b[?25l")
}

// ShowCursor shows the terminal cursor.
func (w *Writer) ShowCursor() {
	w.w.WriteString("\x1b[?25h")
}

// ClearScreen erases the whole screen.
func (w *Writer) ClearScreen() {
	w.w.WriteString("\x1b[2J")
}

// ClearLine erases from the cursor to the end of the line.
func (w *Writer) ClearLine() {
	w.w.WriteString("\x1b[0K")
}

// EnterAltScreen switches to the alternate screen buffer.
func (w *Writer) EnterAltScreen() {
	w.w.WriteString("\x1b[?1049h")
}

// LeaveAltScreen switches back to the normal screen buffer.
func (w *Writer) LeaveAltScreen() {
	w.w.WriteString("\x1b[?1049l")
}

// SetScrollRegion restricts scrolling to the zero-based inclusive row
// range top..bottom (DECSTBM). The terminal moves its cursor home as a
// side effect.
func (w *Writer) SetScrollRegion(top, bottom int) {
	fmt.Fprintf(w.w, "\x1b[%d;%dr", top+1, bottom+1)
}

// ResetScrollRegion removes the scroll region restriction.
func (w *Writer) ResetScrollRegion() {
	w.w.WriteString("\x1b[r")
}

// ScrollUp shifts the scroll region up by n rows, exposing blanks at the
// bottom.
func (w *Writer) ScrollUp(n int) {
	fmt.Fprintf(w.w, "\x1b[%dS", n)
}

// ScrollDown shifts the scroll region down by n rows, exposing blanks at
// the top.
func (w *Writer) ScrollDown(n int) {
	fmt.Fprintf(w.w, "\x1b[%dT", n)
}

// Reverse switches to reverse video.
func (w *Writer) Reverse() {
	w.w.WriteString("\x1b[7m")
}

// Reset clears all text attributes.
func (w *Writer) Reset() {
	w.w.WriteString("\x1b[0m")
}

// Flush writes the accumulated output to the terminal.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
