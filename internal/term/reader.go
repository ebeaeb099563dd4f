package term

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// ErrInterrupted reports that a blocking read gave up because the
// interrupt check fired, typically after a signal flag was set. The event
// loop treats it as "go around again", not as a failure.
var ErrInterrupted = errors.New("term: read interrupted")

// pollSlice bounds how long a blocking read stays inside poll(2) before
// re-checking the interrupt condition.
const pollSlice = 100 * time.Millisecond

// Reader reads single bytes from a terminal file descriptor. ReadByte
// blocks until a byte, an error, or an interrupt; ReadByteTimeout gives up
// after a deadline, which is how the decoder distinguishes a lone Escape
// from the head of an escape sequence.
type Reader struct {
	fd        int
	interrupt func() bool
}

// NewReader creates a Reader on a file descriptor. interrupt, checked
// between poll slices, may be nil.
func NewReader(fd int, interrupt func() bool) *Reader {
	return &Reader{fd: fd, interrupt: interrupt}
}

// ReadByte blocks until one byte arrives. It returns ErrInterrupted when
// the interrupt check fires and io.EOF when the descriptor closes.
func (r *Reader) ReadByte() (byte, error) {
	for {
		if r.interrupt != nil && r.interrupt() {
			return 0, ErrInterrupted
		}
		ready, err := r.wait(pollSlice)
		if err != nil {
			return 0, err
		}
		if !ready {
			continue
		}
		return r.readOne()
	}
}

// ReadByteTimeout reads one byte, giving up with os.ErrDeadlineExceeded
// when none arrives within the timeout.
func (r *Reader) ReadByteTimeout(timeout time.Duration) (byte, error) {
	deadline := time.Now().Add(timeout)
	for {
		remain := time.Until(deadline)
		if remain <= 0 {
			return 0, os.ErrDeadlineExceeded
		}
		ready, err := r.wait(remain)
		if err != nil {
			return 0, err
		}
		if !ready {
			// Poll timeout or EINTR; the deadline check above decides.
			continue
		}
		return r.readOne()
	}
}

// wait polls the descriptor for readability for at most d. A poll
// interrupted by a signal reports not-ready so the caller re-checks its
// own conditions.
func (r *Reader) wait(d time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
	ms := int(d / time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	n, err := unix.Poll(fds, ms)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}

func (r *Reader) readOne() (byte, error) {
	var b [1]byte
	for {
		n, err := unix.Read(r.fd, b[:])
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return b[0], nil
	}
}
