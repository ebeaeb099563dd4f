// Package config loads the editor's preferences file.
//
// Preferences live in a single TOML file. Every key is optional; Default
// supplies the value for anything the file leaves out, and a missing file
// is not an error. Settings are read once at startup and never watched.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Errors returned by Load.
var (
	// ErrInvalidSetting indicates a setting value outside its allowed range.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrUnknownSetting indicates a key the editor does not recognize,
	// usually a typo.
	ErrUnknownSetting = errors.New("unknown setting")
)

// ParseError reports a preferences file that could not be parsed.
type ParseError struct {
	// Path is the file that failed to parse.
	Path string
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Config holds every user-tunable setting.
type Config struct {
	// TabStop is the tab stop width in columns. Must be at least 1.
	TabStop int `toml:"tab_stop"`

	// WrapHorizontal lets left/right movement cross line boundaries.
	WrapHorizontal bool `toml:"wrap_horizontal"`

	// EdgeJump makes vertical movement at the first/last line jump to the
	// line start/end.
	EdgeJump bool `toml:"edge_jump"`

	// WordChars lists runes treated as word characters in addition to
	// letters and digits.
	WordChars string `toml:"word_chars"`

	// SelectionStart and SelectionEnd are the terminal formatting
	// sequences written around selected text. Empty keeps reverse video.
	SelectionStart string `toml:"selection_start"`
	SelectionEnd   string `toml:"selection_end"`

	// Dialect forces the key decoder dialect: "generic" or "console".
	// Empty detects from $TERM.
	Dialect string `toml:"dialect"`

	// LogFile is where the session log is written. Empty resolves to
	// bashed-nano.log under Dir.
	LogFile string `toml:"log_file"`

	// LogLevel is the minimum level logged: debug, info, warn, or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabStop:        8,
		WrapHorizontal: true,
		EdgeJump:       true,
		WordChars:      "_",
		SelectionStart: "\x1b[7m",
		SelectionEnd:   "\x1b[0m",
		LogLevel:       "info",
	}
}

// Dir returns the directory bashed-nano keeps its files in:
// $XDG_CONFIG_HOME/bashed-nano, or ~/.config/bashed-nano.
func Dir() (string, error) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "bashed-nano"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bashed-nano"), nil
}

// Path returns the preferences file location: $BASHED_NANO_CONFIG when
// set, else config.toml under Dir.
func Path() (string, error) {
	if v := os.Getenv("BASHED_NANO_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the preferences file at path, or at Path when path is empty.
// A missing file yields Default. The returned Config always has LogFile
// resolved; on error it holds the defaults so the caller can still run.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return resolved(cfg), err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return resolved(cfg), nil
		}
		return resolved(cfg), err
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return resolved(Default()), &ParseError{Path: path, Err: err}
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return resolved(Default()), fmt.Errorf("%s: %w: %s", path, ErrUnknownSetting, undec[0])
	}
	if err := cfg.validate(); err != nil {
		return resolved(Default()), fmt.Errorf("%s: %w", path, err)
	}
	return resolved(cfg), nil
}

func (c Config) validate() error {
	if c.TabStop < 1 {
		return fmt.Errorf("%w: tab_stop %d (must be at least 1)", ErrInvalidSetting, c.TabStop)
	}
	switch c.Dialect {
	case "", "generic", "console":
	default:
		return fmt.Errorf("%w: dialect %q (want \"generic\" or \"console\")", ErrInvalidSetting, c.Dialect)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug, info, warn, or error)", ErrInvalidSetting, c.LogLevel)
	}
	return nil
}

func resolved(c Config) Config {
	if c.LogFile == "" {
		if dir, err := Dir(); err == nil {
			c.LogFile = filepath.Join(dir, "bashed-nano.log")
		}
	}
	return c
}
