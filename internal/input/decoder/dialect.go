package decoder

import "github.com/coffeegrind123/bashed-nano/internal/input/key"

// Dialect is a fixed convention for how a terminal encodes special-key
// escape sequences. It is selected once at startup and injected into the
// Decoder.
type Dialect uint8

const (
	// DialectGeneric is the xterm-style convention: Home/End arrive as the
	// H and F finals, and sequences may carry a modifier mask parameter.
	// It is the default for unrecognized terminal types.
	DialectGeneric Dialect = iota

	// DialectConsole is the Linux-console convention: Home/End arrive as
	// the numeric codes 1 and 4, and no modifier masks are transmitted.
	DialectConsole
)

// String returns the dialect name.
func (d Dialect) String() string {
	if d == DialectConsole {
		return "console"
	}
	return "generic"
}

// Detect picks the dialect for a terminal type string, generic for
// anything unrecognized.
func Detect(term string) Dialect {
	switch term {
	case "linux", "console":
		return DialectConsole
	}
	return DialectGeneric
}

// decodeFinal interprets an accumulated CSI parameter block and its final
// byte under this dialect's conventions.
func (d Dialect) decodeFinal(params []byte, final byte) (key.Event, error) {
	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		return d.decodeLetter(params, final)
	case '~':
		return d.decodeTilde(params)
	}
	return key.Event{}, ErrUnknownSequence
}

func (d Dialect) decodeLetter(params []byte, final byte) (key.Event, error) {
	var k key.Key
	switch final {
	case 'A':
		k = key.KeyUp
	case 'B':
		k = key.KeyDown
	case 'C':
		k = key.KeyRight
	case 'D':
		k = key.KeyLeft
	case 'H':
		k = key.KeyHome
	case 'F':
		k = key.KeyEnd
	}

	// The console convention uses numeric codes for Home/End instead.
	if (final == 'H' || final == 'F') && d == DialectConsole {
		return key.Event{}, ErrUnknownSequence
	}

	if len(params) == 0 {
		return key.NewSpecialEvent(k), nil
	}
	if d == DialectConsole {
		return key.Event{}, ErrUnknownSequence
	}

	nums, ok := parseParams(params)
	if !ok || len(nums) != 2 || nums[0] != 1 {
		return key.Event{}, ErrUnknownSequence
	}
	mods, err := decodeMask(nums[1])
	if err != nil {
		return key.Event{}, err
	}
	return key.NewSpecialEvent(k).WithMods(mods), nil
}

func (d Dialect) decodeTilde(params []byte) (key.Event, error) {
	nums, ok := parseParams(params)
	if !ok || len(nums) == 0 || len(nums) > 2 {
		return key.Event{}, ErrUnknownSequence
	}

	k, ok := d.numericKey(nums[0])
	if !ok {
		return key.Event{}, ErrUnknownSequence
	}
	if len(nums) == 1 {
		return key.NewSpecialEvent(k), nil
	}
	if d == DialectConsole {
		return key.Event{}, ErrUnknownSequence
	}

	mods, err := decodeMask(nums[1])
	if err != nil {
		return key.Event{}, err
	}
	return key.NewSpecialEvent(k).WithMods(mods), nil
}

// numericKey maps a tilde-terminated numeric code to its key.
func (d Dialect) numericKey(code int) (key.Key, bool) {
	switch code {
	case 2:
		return key.KeyInsert, true
	case 3:
		return key.KeyDelete, true
	case 5:
		return key.KeyPageUp, true
	case 6:
		return key.KeyPageDown, true
	case 1:
		if d == DialectConsole {
			return key.KeyHome, true
		}
	case 4:
		if d == DialectConsole {
			return key.KeyEnd, true
		}
	}
	return key.KeyNone, false
}

// backspace maps the two backspace bytes. One byte carries ctrl so
// Ctrl+Backspace stays distinguishable from plain Backspace; which byte
// that is depends on the dialect.
func (d Dialect) backspace(b byte) key.Event {
	ev := key.NewSpecialEvent(key.KeyBackspace)
	if d == DialectConsole {
		if b == 0x7f {
			ev = ev.WithMods(key.ModCtrl)
		}
	} else if b == 0x08 {
		ev = ev.WithMods(key.ModCtrl)
	}
	return ev
}

// decodeMask unpacks a transmitted modifier mask. The value minus one is a
// three-bit field, tested from the highest bit down: 4 = ctrl, 2 = alt,
// 1 = shift. Values outside [1,8] are rejected.
func decodeMask(m int) (key.Modifier, error) {
	if m < 1 || m > 8 {
		return key.ModNone, ErrUnknownSequence
	}
	bits := m - 1
	mods := key.ModNone
	if bits >= 4 {
		mods = mods.With(key.ModCtrl)
		bits -= 4
	}
	if bits >= 2 {
		mods = mods.With(key.ModAlt)
		bits -= 2
	}
	if bits >= 1 {
		mods = mods.With(key.ModShift)
	}
	return mods, nil
}

// parseParams splits a CSI parameter block on ';' into numbers. Empty
// segments make the whole block invalid.
func parseParams(params []byte) ([]int, bool) {
	var nums []int
	n, digits := 0, 0
	for _, b := range params {
		if b == ';' {
			if digits == 0 {
				return nil, false
			}
			nums = append(nums, n)
			n, digits = 0, 0
			continue
		}
		n = n*10 + int(b-'0')
		digits++
	}
	if digits == 0 {
		return nil, false
	}
	return append(nums, n), true
}
