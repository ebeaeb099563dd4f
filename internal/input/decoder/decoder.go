// Package decoder turns a raw terminal byte stream into key events. It
// understands the control-byte layer plus two escape-sequence dialects and
// never delivers a partial event: malformed or stalled sequences surface as
// recoverable errors the caller discards.
package decoder

import (
	"errors"
	"os"
	"time"
	"unicode/utf8"

	"github.com/coffeegrind123/bashed-nano/internal/input/key"
)

var (
	// ErrUnknownSequence reports a malformed or unsupported escape
	// sequence. The caller discards it and keeps reading.
	ErrUnknownSequence = errors.New("decoder: unknown escape sequence")

	// ErrTimeout reports that a continuation byte did not arrive in time
	// mid-sequence. Recoverable like ErrUnknownSequence.
	ErrTimeout = errors.New("decoder: escape sequence timed out")
)

// DefaultEscapeTimeout bounds the wait for escape-sequence continuation
// bytes. A lone ESC byte older than this is a bare Escape key press.
const DefaultEscapeTimeout = 5 * time.Millisecond

// maxParamLen bounds the CSI parameter block so a hostile stream cannot
// grow it without limit.
const maxParamLen = 24

// ByteSource supplies terminal input one byte at a time. ReadByte blocks
// until a byte arrives; ReadByteTimeout returns os.ErrDeadlineExceeded when
// none arrives within the given duration.
type ByteSource interface {
	ReadByte() (byte, error)
	ReadByteTimeout(timeout time.Duration) (byte, error)
}

// Decoder reads one logical key per Next call: a blocking read for the
// first byte, short deadline reads for any continuation bytes.
type Decoder struct {
	src        ByteSource
	dialect    Dialect
	escTimeout time.Duration
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithDialect selects the escape-sequence dialect.
func WithDialect(d Dialect) Option {
	return func(dec *Decoder) { dec.dialect = d }
}

// WithEscapeTimeout overrides the continuation-byte timeout.
func WithEscapeTimeout(timeout time.Duration) Option {
	return func(dec *Decoder) {
		if timeout > 0 {
			dec.escTimeout = timeout
		}
	}
}

// New creates a decoder reading from src. The dialect defaults to
// DialectGeneric.
func New(src ByteSource, opts ...Option) *Decoder {
	dec := &Decoder{
		src:        src,
		dialect:    DialectGeneric,
		escTimeout: DefaultEscapeTimeout,
	}
	for _, opt := range opts {
		opt(dec)
	}
	return dec
}

// Dialect returns the dialect the decoder was configured with.
func (dec *Decoder) Dialect() Dialect {
	return dec.dialect
}

// Next blocks for the next key event. Errors from the underlying source
// pass through; ErrUnknownSequence and ErrTimeout mean the bytes consumed
// so far were discarded and the stream is ready for the next key.
func (dec *Decoder) Next() (key.Event, error) {
	b, err := dec.src.ReadByte()
	if err != nil {
		return key.Event{}, err
	}

	switch {
	case b == 0x1b:
		return dec.decodeEscape()
	case b == '\t':
		return key.NewSpecialEvent(key.KeyTab), nil
	case b == '\r' || b == '\n':
		return key.NewSpecialEvent(key.KeyEnter), nil
	case b == 0x08 || b == 0x7f:
		return dec.dialect.backspace(b), nil
	case b < 0x20:
		return controlEvent(b), nil
	case b < 0x80:
		return key.NewRuneEvent(rune(b)), nil
	}
	return dec.decodeRune(b)
}

// decodeEscape handles the byte after ESC. Silence means the user pressed
// the Escape key itself.
func (dec *Decoder) decodeEscape() (key.Event, error) {
	b, err := dec.src.ReadByteTimeout(dec.escTimeout)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return key.NewSpecialEvent(key.KeyEscape), nil
	}
	if err != nil {
		return key.Event{}, err
	}
	if b != '[' {
		return key.Event{}, ErrUnknownSequence
	}
	return dec.decodeCSI()
}

// decodeCSI accumulates parameter bytes until a final byte arrives, then
// hands both to the dialect.
func (dec *Decoder) decodeCSI() (key.Event, error) {
	var params []byte
	for {
		b, err := dec.src.ReadByteTimeout(dec.escTimeout)
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return key.Event{}, ErrTimeout
		}
		if err != nil {
			return key.Event{}, err
		}
		if (b >= '0' && b <= '9') || b == ';' {
			if len(params) >= maxParamLen {
				return key.Event{}, ErrUnknownSequence
			}
			params = append(params, b)
			continue
		}
		return dec.dialect.decodeFinal(params, b)
	}
}

// decodeRune assembles a multi-byte UTF-8 character whose lead byte was
// already consumed.
func (dec *Decoder) decodeRune(first byte) (key.Event, error) {
	buf := make([]byte, 1, utf8.UTFMax)
	buf[0] = first
	for !utf8.FullRune(buf) {
		if len(buf) >= utf8.UTFMax {
			return key.Event{}, ErrUnknownSequence
		}
		b, err := dec.src.ReadByteTimeout(dec.escTimeout)
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return key.Event{}, ErrTimeout
		}
		if err != nil {
			return key.Event{}, err
		}
		buf = append(buf, b)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return key.Event{}, ErrUnknownSequence
	}
	return key.NewRuneEvent(r), nil
}

// controlEvent maps a control byte to its letter with ctrl set: the byte
// plus 0x40, lowercased for letters, so 0x13 becomes Ctrl+s.
func controlEvent(b byte) key.Event {
	r := rune(b + 0x40)
	if r >= 'A' && r <= 'Z' {
		r += 0x20
	}
	return key.NewRuneEvent(r).WithMods(key.ModCtrl)
}
