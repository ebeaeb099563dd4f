package app

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/coffeegrind123/bashed-nano/internal/logger"
)

// watchSignals forwards window-change and job-control signals into the
// refresh flag. The goroutine never touches editor state; the loop applies
// the flag between keys, and the reader's interrupt check wakes a blocked
// read so that happens promptly.
func (app *Application) watchSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH, unix.SIGCONT)
	go func() {
		for range ch {
			app.refresh.Store(true)
		}
	}()
}

// suspend hands the terminal back to the shell until the job is resumed.
func (app *Application) suspend() {
	logger.Info("suspending")
	app.leaveScreen()
	_ = app.term.Restore()

	_ = unix.Kill(unix.Getpid(), unix.SIGTSTP)

	// Stopped here until SIGCONT. The window may have been resized in the
	// meantime, so re-measure before the next paint.
	if err := app.term.EnterRaw(); err != nil {
		logger.Error("raw mode after resume", "err", err)
		app.quit = true
		return
	}
	app.out.EnterAltScreen()
	app.refreshSize()
	logger.Info("resumed")
}
