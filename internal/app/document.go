package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coffeegrind123/bashed-nano/internal/logger"
)

// Document identifies the file behind the buffer. The zero value is an
// unnamed scratch document.
type Document struct {
	// Path is where save writes, empty until the user picks a name.
	Path string
}

// Name returns the display name, empty for an unnamed document.
func (d Document) Name() string {
	if d.Path == "" {
		return ""
	}
	return filepath.Base(d.Path)
}

// SplitLines splits file content into buffer lines. A final newline
// terminates the last line rather than opening an empty one, so loading
// and saving a conventional text file round-trips.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ReadDocument loads the file at path. A missing file is an empty
// single-line document; it appears on disk on the first save.
func ReadDocument(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{""}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// WriteDocument writes lines to path, every line newline-terminated,
// creating intermediate directories as needed.
func WriteDocument(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// openPath loads path into the session. Read failures leave an empty
// document behind a status message; editing continues.
func (app *Application) openPath(path string) {
	app.doc = Document{Path: path}
	lines, err := ReadDocument(path)
	if err != nil {
		logger.Warn("open failed", "path", path, "err", err)
		app.sess.SetLines([]string{""})
		app.message = err.Error()
		return
	}
	app.sess.SetLines(lines)
	logger.Info("opened", "path", path, "lines", len(lines))
}

// save writes the buffer to the document's path, or prompts for one when
// the document is unnamed.
func (app *Application) save() {
	if app.doc.Path == "" {
		app.startPrompt(promptSaveAs, "Save as: ")
		return
	}
	app.saveTo(app.doc.Path)
}

// saveTo writes the buffer to path and adopts it as the document's path.
// Failures become a status message, never an exit.
func (app *Application) saveTo(path string) {
	lines := app.sess.Lines()
	if err := WriteDocument(path, lines); err != nil {
		logger.Error("save failed", "path", path, "err", err)
		app.message = err.Error()
		return
	}
	app.doc = Document{Path: path}
	app.sess.ClearModified()
	app.message = fmt.Sprintf("wrote %s", countNoun(len(lines), "line"))
	logger.Info("saved", "path", path, "lines", len(lines))
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
