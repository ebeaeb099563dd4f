// Package term owns the physical terminal: raw mode, window size, a byte
// reader with timeout and interrupt support for the key decoder, and a
// buffered escape-sequence writer for the renderer. Everything above this
// package works with plain bytes and strings.
package term

import (
	"errors"
	"os"

	xterm "golang.org/x/term"
)

// ErrNotTerminal reports that the input is not attached to a terminal.
var ErrNotTerminal = errors.New("term: not a terminal")

// Terminal wraps the process's controlling terminal.
type Terminal struct {
	in    *os.File
	out   *os.File
	saved *xterm.State
}

// New creates a Terminal over the given input and output files, normally
// os.Stdin and os.Stdout.
func New(in, out *os.File) *Terminal {
	return &Terminal{in: in, out: out}
}

// IsTerminal reports whether the input is a terminal.
func (t *Terminal) IsTerminal() bool {
	return xterm.IsTerminal(int(t.in.Fd()))
}

// EnterRaw switches the terminal to raw mode, saving the previous state.
// Calling it again while raw is a no-op.
func (t *Terminal) EnterRaw() error {
	if t.saved != nil {
		return nil
	}
	if !t.IsTerminal() {
		return ErrNotTerminal
	}
	st, err := xterm.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return err
	}
	t.saved = st
	return nil
}

// Restore puts the terminal back into the state EnterRaw saved. Safe to
// call when not raw; suspend/resume and every exit path go through here.
func (t *Terminal) Restore() error {
	if t.saved == nil {
		return nil
	}
	err := xterm.Restore(int(t.in.Fd()), t.saved)
	t.saved = nil
	return err
}

// Size returns the window size in cells, falling back to 80x24 when the
// ioctl fails.
func (t *Terminal) Size() (width, height int) {
	w, h, err := xterm.GetSize(int(t.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Input returns the input file.
func (t *Terminal) Input() *os.File { return t.in }

// Output returns the output file.
func (t *Terminal) Output() *os.File { return t.out }
