package app

import (
	"fmt"

	"github.com/coffeegrind123/bashed-nano/internal/engine/buffer"
	"github.com/coffeegrind123/bashed-nano/internal/input/key"
)

// promptKind selects what submitting a prompt does.
type promptKind uint8

const (
	promptFind promptKind = iota
	promptSaveAs
	promptQuit
)

// prompt is a pending input request living in the status row. While one is
// active it captures every key.
type prompt struct {
	kind   promptKind
	label  string
	input  []rune
	cursor int
}

func (app *Application) startPrompt(kind promptKind, label string) {
	app.prompt = &prompt{kind: kind, label: label}
}

// promptKey edits the prompt input and resolves it on Enter or Escape.
// The quit confirmation resolves on a single y/n keypress instead.
func (app *Application) promptKey(ev key.Event) {
	p := app.prompt

	if p.kind == promptQuit {
		switch {
		case ev.IsRune() && (ev.Rune == 'y' || ev.Rune == 'Y'):
			app.quit = true
		case ev.IsRune() && (ev.Rune == 'n' || ev.Rune == 'N'), ev.Key == key.KeyEscape:
			app.prompt = nil
		}
		return
	}

	switch ev.Key {
	case key.KeyEscape:
		app.prompt = nil
	case key.KeyEnter:
		app.prompt = nil
		app.submitPrompt(p.kind, string(p.input))
	case key.KeyBackspace:
		if p.cursor > 0 {
			p.input = append(p.input[:p.cursor-1], p.input[p.cursor:]...)
			p.cursor--
		}
	case key.KeyDelete:
		if p.cursor < len(p.input) {
			p.input = append(p.input[:p.cursor], p.input[p.cursor+1:]...)
		}
	case key.KeyLeft:
		if p.cursor > 0 {
			p.cursor--
		}
	case key.KeyRight:
		if p.cursor < len(p.input) {
			p.cursor++
		}
	case key.KeyHome:
		p.cursor = 0
	case key.KeyEnd:
		p.cursor = len(p.input)
	case key.KeyRune:
		if ev.IsText() {
			p.input = append(p.input[:p.cursor], append([]rune{ev.Rune}, p.input[p.cursor:]...)...)
			p.cursor++
		}
	}
}

func (app *Application) submitPrompt(kind promptKind, input string) {
	switch kind {
	case promptFind:
		app.find(input)
	case promptSaveAs:
		if input != "" {
			app.saveTo(input)
		}
	}
}

// find searches forward from just past the cursor so repeating the search
// advances through the matches. An empty query repeats the last one.
func (app *Application) find(query string) {
	if query == "" {
		query = app.lastFind
	}
	if query == "" {
		return
	}
	app.lastFind = query

	cur := app.sess.Cursor()
	pos, ok := app.sess.Find(query, buffer.Position{Row: cur.Row, Col: cur.Col + 1})
	if !ok {
		app.message = fmt.Sprintf("%q not found", query)
		return
	}
	app.sess.MoveCursor(pos, false)
}
