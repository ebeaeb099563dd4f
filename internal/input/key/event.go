package key

import "fmt"

// Event is one decoded keyboard event: a printable character or a special
// key, plus independent ctrl/alt/shift modifiers.
type Event struct {
	// Key identifies the key. KeyRune for character input.
	Key Key

	// Rune holds the character for KeyRune events. Control letters are
	// normalized to their lowercase letter with ModCtrl set.
	Rune rune

	// Mods holds the active modifiers.
	Mods Modifier
}

// NewRuneEvent creates an event for a printable character.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates an event for a special key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// WithMods returns a copy of the event with the given modifiers added.
func (e Event) WithMods(mods Modifier) Event {
	e.Mods = e.Mods.With(mods)
	return e
}

// IsRune returns true if this is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// IsText returns true if this event should insert its character: a rune
// event with neither ctrl nor alt held.
func (e Event) IsText() bool {
	return e.Key == KeyRune && !e.Mods.HasCtrl() && !e.Mods.HasAlt()
}

// IsCtrl returns true if this is the given letter with ctrl held.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Rune == r && e.Mods.HasCtrl() && !e.Mods.HasAlt()
}

// String returns a readable representation like "Ctrl+s" or "Shift+Right".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mods.IsEmpty() {
		return name
	}
	return fmt.Sprintf("%s+%s", e.Mods, name)
}
