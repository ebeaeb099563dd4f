// Package statusline formats the single bottom status row: file name and
// cursor position, a transient message, or an active prompt with its
// input. It produces plain text; the renderer owns the styling.
package statusline

import (
	"fmt"
	"strings"
)

// Content is everything the status row can show for one render pass. An
// active prompt takes the whole row; otherwise the cursor position is
// always shown, next to either the transient message or the file name.
// Row, Col and Visual are zero-based; display adds one.
type Content struct {
	FileName string
	Modified bool
	Row      int
	Col      int
	Visual   int

	// Message is a transient notice shown until the next keypress.
	Message string

	// Prompt, when non-empty, is an active input request. Input is what
	// the user typed so far and InputCursor the rune offset within it.
	Prompt      string
	Input       string
	InputCursor int
}

// Format renders the status row as exactly width cells. The second return
// is the cell the terminal cursor belongs in while a prompt is active, -1
// otherwise.
func (c Content) Format(width int) (string, int) {
	if width <= 0 {
		return "", -1
	}

	if c.Prompt != "" {
		text := c.Prompt + c.Input
		cur := len([]rune(c.Prompt)) + clamp(c.InputCursor, 0, len([]rune(c.Input)))
		return pad(text, width), clamp(cur, 0, width-1)
	}

	left := c.Message
	if left == "" {
		left = c.FileName
		if left == "" {
			left = "[No Name]"
		}
		if c.Modified {
			left += " [+]"
		}
	}
	summary := fmt.Sprintf("%s · Ln %d, Col %d (Vis %d)",
		left, c.Row+1, c.Col+1, c.Visual+1)
	return pad(summary, width), -1
}

// pad clips or space-fills text to exactly width runes.
func pad(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return text + strings.Repeat(" ", width-len(runes))
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
