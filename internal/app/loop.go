package app

import (
	"errors"
	"io"

	"github.com/coffeegrind123/bashed-nano/internal/engine"
	"github.com/coffeegrind123/bashed-nano/internal/input/decoder"
	"github.com/coffeegrind123/bashed-nano/internal/input/key"
	"github.com/coffeegrind123/bashed-nano/internal/logger"
	"github.com/coffeegrind123/bashed-nano/internal/term"
)

// loop is one blocking decode, one dispatch, one render pass per
// iteration. Signal flags are applied between keys; the reader interrupts
// its blocking read when one is raised.
func (app *Application) loop() error {
	if err := app.render(); err != nil {
		return err
	}

	for !app.quit {
		if app.refresh.Swap(false) {
			app.refreshSize()
			if err := app.render(); err != nil {
				return err
			}
		}

		ev, err := app.dec.Next()
		if err != nil {
			switch {
			case errors.Is(err, term.ErrInterrupted):
				continue
			case errors.Is(err, decoder.ErrUnknownSequence), errors.Is(err, decoder.ErrTimeout):
				logger.Debug("discarded input", "err", err)
				continue
			case errors.Is(err, io.EOF):
				logger.Info("input closed")
				return nil
			default:
				return err
			}
		}

		app.dispatch(ev)
		if err := app.render(); err != nil {
			return err
		}
	}
	return nil
}

// dispatch routes one key event. A pending transient message is dropped
// first so it never outlives the keypress that follows it.
func (app *Application) dispatch(ev key.Event) {
	app.message = ""

	if app.prompt != nil {
		app.promptKey(ev)
		return
	}

	selecting := ev.Mods.HasShift()
	switch ev.Key {
	case key.KeyRune:
		if ev.Mods.HasCtrl() && !ev.Mods.HasAlt() {
			app.control(ev.Rune)
		} else if ev.IsText() {
			app.sess.InsertText(string(ev.Rune))
		}
	case key.KeyTab:
		app.sess.InsertText("\t")
	case key.KeyEnter:
		app.sess.InsertNewline()
	case key.KeyBackspace:
		if ev.Mods.HasCtrl() {
			app.sess.DeleteWordBackward()
		} else {
			app.sess.DeleteBackward()
		}
	case key.KeyDelete:
		if ev.Mods.HasCtrl() {
			app.sess.DeleteWordForward()
		} else {
			app.sess.DeleteForward()
		}
	case key.KeyUp:
		app.sess.MoveVertical(-1, selecting)
	case key.KeyDown:
		app.sess.MoveVertical(1, selecting)
	case key.KeyLeft:
		app.sess.MoveHorizontal(engine.Backward, ev.Mods.HasCtrl(), selecting)
	case key.KeyRight:
		app.sess.MoveHorizontal(engine.Forward, ev.Mods.HasCtrl(), selecting)
	case key.KeyHome:
		if ev.Mods.HasCtrl() {
			app.sess.MoveDocStart(selecting)
		} else {
			app.sess.MoveLineStart(selecting)
		}
	case key.KeyEnd:
		if ev.Mods.HasCtrl() {
			app.sess.MoveDocEnd(selecting)
		} else {
			app.sess.MoveLineEnd(selecting)
		}
	case key.KeyPageUp:
		app.sess.MoveVertical(-app.pageSize(), selecting)
	case key.KeyPageDown:
		app.sess.MoveVertical(app.pageSize(), selecting)
	case key.KeyEscape:
		app.sess.CollapseSelection()
	case key.KeyInsert:
		// Accepted and unbound.
	}
}

// control handles a ctrl+letter chord outside of a prompt.
func (app *Application) control(r rune) {
	switch r {
	case 'a':
		app.sess.SelectAll()
	case 'c':
		app.copySelection(false)
	case 'k':
		app.copySelection(true)
	case 'v':
		if text := app.clip.Retrieve(); text != "" {
			app.sess.InsertMultiline(text)
		}
	case 'f':
		app.startPrompt(promptFind, "Find: ")
	case 's':
		app.save()
	case 'g':
		app.showHelp()
	case 'z':
		app.suspend()
	case 'q':
		if app.sess.Modified() {
			app.startPrompt(promptQuit, "Quit without saving? (y/n) ")
		} else {
			app.quit = true
		}
	default:
		logger.Debug("unbound control key", "key", string(r))
	}
}

// copySelection hands the selected text to the clipboard; cut deletes it
// afterwards. Without a selection both are no-ops.
func (app *Application) copySelection(cut bool) {
	text, ok := app.sess.SelectedText()
	if !ok {
		return
	}
	if err := app.clip.Provide(text); err != nil {
		logger.Warn("system clipboard unavailable", "err", err)
	}
	if cut {
		app.sess.DeleteSelection()
	}
}

// pageSize is how far PageUp/PageDown jump: one text window.
func (app *Application) pageSize() int {
	return app.rend.Viewport().Height()
}
