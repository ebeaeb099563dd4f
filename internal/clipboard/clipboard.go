// Package clipboard moves selection text to and from the system
// clipboard. The backend is picked once at startup from the tools the
// system offers; an in-process register shadows every copy, so cut and
// paste keep working when no tool exists or an invocation fails.
package clipboard

import (
	"os"
	"os/exec"
	"strings"
)

// Clipboard is one clipboard handle. The zero value is the register-only
// backend.
type Clipboard struct {
	copyCmd  []string
	pasteCmd []string
	register string
}

// New picks the backend for this system: wl-copy/wl-paste under Wayland,
// xclip or xsel under X11, pbcopy/pbpaste where those exist, otherwise
// the register alone.
func New() *Clipboard {
	c := &Clipboard{}
	switch {
	case os.Getenv("WAYLAND_DISPLAY") != "" && installed("wl-copy") && installed("wl-paste"):
		c.copyCmd = []string{"wl-copy"}
		c.pasteCmd = []string{"wl-paste", "-n"}
	case os.Getenv("DISPLAY") != "" && installed("xclip"):
		c.copyCmd = []string{"xclip", "-selection", "clipboard"}
		c.pasteCmd = []string{"xclip", "-selection", "clipboard", "-o"}
	case os.Getenv("DISPLAY") != "" && installed("xsel"):
		c.copyCmd = []string{"xsel", "--clipboard", "--input"}
		c.pasteCmd = []string{"xsel", "--clipboard", "--output"}
	case installed("pbcopy") && installed("pbpaste"):
		c.copyCmd = []string{"pbcopy"}
		c.pasteCmd = []string{"pbpaste"}
	}
	return c
}

// System reports whether a system clipboard tool backs this handle.
func (c *Clipboard) System() bool {
	return len(c.copyCmd) > 0
}

// Provide stores text: always in the register, and in the system
// clipboard when a tool is available. The returned error reports a tool
// failure; the register holds the text regardless.
func (c *Clipboard) Provide(text string) error {
	c.register = text
	if len(c.copyCmd) == 0 {
		return nil
	}
	cmd := exec.Command(c.copyCmd[0], c.copyCmd[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Retrieve returns the clipboard text, preferring the system clipboard
// and falling back to the register when the tool fails or none exists.
func (c *Clipboard) Retrieve() string {
	if len(c.pasteCmd) > 0 {
		out, err := exec.Command(c.pasteCmd[0], c.pasteCmd[1:]...).Output()
		if err == nil {
			return string(out)
		}
	}
	return c.register
}

func installed(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
