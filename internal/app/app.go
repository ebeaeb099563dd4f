// Package app wires the editor together and runs its event loop. It owns
// the terminal, the editing session and the renderer; per the single-owner
// rule everything here runs on one goroutine, and signal handlers only set
// flags the loop picks up.
package app

import (
	"os"
	"sync/atomic"

	"github.com/coffeegrind123/bashed-nano/internal/clipboard"
	"github.com/coffeegrind123/bashed-nano/internal/config"
	"github.com/coffeegrind123/bashed-nano/internal/engine"
	"github.com/coffeegrind123/bashed-nano/internal/input/decoder"
	"github.com/coffeegrind123/bashed-nano/internal/layout"
	"github.com/coffeegrind123/bashed-nano/internal/logger"
	"github.com/coffeegrind123/bashed-nano/internal/renderer"
	"github.com/coffeegrind123/bashed-nano/internal/renderer/dirty"
	"github.com/coffeegrind123/bashed-nano/internal/renderer/statusline"
	"github.com/coffeegrind123/bashed-nano/internal/term"
)

// Application is the one context object of the editor. It owns the
// terminal, the session and the renderer, and coordinates them from a
// single-threaded loop.
type Application struct {
	cfg config.Config

	term *term.Terminal
	out  *term.Writer
	dec  *decoder.Decoder

	sess  *engine.Session
	track *dirty.Tracker
	rend  *renderer.Renderer
	clip  *clipboard.Clipboard

	doc      Document
	message  string
	prompt   *prompt
	lastFind string

	// refresh is the only state shared with signal handlers.
	refresh atomic.Bool
	quit    bool
}

// New builds an editor for the terminal on stdin/stdout and loads path
// into the buffer when non-empty. The terminal mode is not touched yet;
// that happens in Run.
func New(cfg config.Config, path string) (*Application, error) {
	t := term.New(os.Stdin, os.Stdout)
	if !t.IsTerminal() {
		return nil, term.ErrNotTerminal
	}

	app := &Application{
		cfg:  cfg,
		term: t,
		out:  term.NewWriter(t.Output()),
		clip: clipboard.New(),
	}

	tabs := layout.NewTabExpander(cfg.TabStop)
	app.track = dirty.NewTracker()
	app.sess = engine.New(
		engine.WithTabExpander(tabs),
		engine.WithWrap(cfg.WrapHorizontal),
		engine.WithEdgeJump(cfg.EdgeJump),
		engine.WithWordChars(cfg.WordChars),
		engine.WithDirtyRecorder(app.track),
	)

	width, height := t.Size()
	app.rend = renderer.New(app.out, app.track, width, height,
		renderer.WithTabExpander(tabs),
		renderer.WithSelectionMarkers(cfg.SelectionStart, cfg.SelectionEnd),
	)

	reader := term.NewReader(int(t.Input().Fd()), app.refresh.Load)
	app.dec = decoder.New(reader, decoder.WithDialect(dialect(cfg)))

	if path != "" {
		app.openPath(path)
	}

	logger.Info("editor ready",
		"file", path,
		"dialect", app.dec.Dialect(),
		"clipboard", app.clip.System(),
		"width", width, "height", height,
	)
	return app, nil
}

// dialect maps the config setting to a decoder dialect, consulting $TERM
// when the setting is empty.
func dialect(cfg config.Config) decoder.Dialect {
	switch cfg.Dialect {
	case "generic":
		return decoder.DialectGeneric
	case "console":
		return decoder.DialectConsole
	}
	return decoder.Detect(os.Getenv("TERM"))
}

// Run switches the terminal to raw mode and runs the event loop until the
// user quits or the terminal goes away. The terminal is restored on every
// return path.
func (app *Application) Run() error {
	if err := app.term.EnterRaw(); err != nil {
		return err
	}
	defer app.term.Restore()
	defer app.leaveScreen()

	app.out.EnterAltScreen()
	app.watchSignals()

	err := app.loop()
	if err != nil {
		logger.Error("event loop failed", "err", err)
	}
	return err
}

// leaveScreen returns to the primary screen. Runs while still raw, before
// the terminal mode is restored.
func (app *Application) leaveScreen() {
	app.out.LeaveAltScreen()
	app.out.ShowCursor()
	_ = app.out.Flush()
}

// render paints one frame reflecting the current session state.
func (app *Application) render() error {
	return app.rend.Render(app.sess, app.status())
}

// status assembles the status row content. The renderer fills in the
// cursor position itself.
func (app *Application) status() statusline.Content {
	c := statusline.Content{
		FileName: app.doc.Name(),
		Modified: app.sess.Modified(),
		Message:  app.message,
	}
	if app.prompt != nil {
		c.Prompt = app.prompt.label
		c.Input = string(app.prompt.input)
		c.InputCursor = app.prompt.cursor
	}
	return c
}

// refreshSize re-reads the terminal dimensions. The renderer forces a full
// repaint on resize.
func (app *Application) refreshSize() {
	width, height := app.term.Size()
	app.rend.Resize(width, height)
	logger.Debug("resized", "width", width, "height", height)
}
