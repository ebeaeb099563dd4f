package app

// helpLines is the static key reference shown by ^G.
var helpLines = []string{
	"bashed-nano key reference",
	"",
	"Movement   arrows, Home/End, PgUp/PgDn",
	"           Ctrl+Left/Right    previous/next word",
	"           Ctrl+Home/End      document start/end",
	"           Shift + movement   extend the selection",
	"",
	"Editing    type to insert, Enter splits the line",
	"           Backspace/Delete   delete a character (with Ctrl: a word)",
	"",
	"^A  select all      ^C  copy selection",
	"^K  cut selection   ^V  paste",
	"^F  find            (Enter on an empty input repeats the last search)",
	"^S  save            ^G  this help",
	"^Z  suspend         ^Q  quit",
	"",
	"Esc collapses the selection, cancels a prompt, clears the message.",
	"",
	"Press any key to continue.",
}

// showHelp paints the key reference and waits for one key. The follow-up
// render repaints the whole frame.
func (app *Application) showHelp() {
	_, height := app.term.Size()

	app.out.HideCursor()
	app.out.ClearScreen()
	for i, line := range helpLines {
		if i >= height {
			break
		}
		app.out.MoveTo(i, 0)
		app.out.WriteString(line)
	}
	_ = app.out.Flush()

	// Any key closes the help screen, a signal wake included.
	_, _ = app.dec.Next()

	app.track.ForceFull()
}
