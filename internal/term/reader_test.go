package term

import (
	"errors"
	"io"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// pipeReader builds a Reader over the read end of a pipe. Poll works the
// same on pipes as on terminals, so the timing paths are testable without
// a tty.
func pipeReader(t *testing.T, interrupt func() bool) (*Reader, *os.File) {
	t.Helper()
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	t.Cleanup(func() {
		pr.Close()
		pw.Close()
	})
	return NewReader(int(pr.Fd()), interrupt), pw
}

func TestReadByte(t *testing.T) {
	r, pw := pipeReader(t, nil)

	if _, err := pw.Write([]byte{'a', 'b'}); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, want := range []byte{'a', 'b'} {
		got, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte() error: %v", err)
		}
		if got != want {
			t.Errorf("ReadByte() = %q, want %q", got, want)
		}
	}
}

func TestReadByteEOF(t *testing.T) {
	r, pw := pipeReader(t, nil)
	pw.Close()

	if _, err := r.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadByte() error = %v, want io.EOF", err)
	}
}

func TestReadByteInterrupted(t *testing.T) {
	var flag atomic.Bool
	r, _ := pipeReader(t, func() bool { return flag.Swap(false) })

	flag.Store(true)
	if _, err := r.ReadByte(); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("ReadByte() error = %v, want ErrInterrupted", err)
	}
}

func TestReadByteTimeout(t *testing.T) {
	r, pw := pipeReader(t, nil)

	start := time.Now()
	_, err := r.ReadByteTimeout(20 * time.Millisecond)
	if !errors.Is(err, os.ErrDeadlineExceeded) {
		t.Fatalf("ReadByteTimeout() error = %v, want os.ErrDeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout took %v, expected on the order of 20ms", elapsed)
	}

	if _, err := pw.Write([]byte{'z'}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := r.ReadByteTimeout(time.Second)
	if err != nil {
		t.Fatalf("ReadByteTimeout() error: %v", err)
	}
	if got != 'z' {
		t.Errorf("ReadByteTimeout() = %q, want %q", got, 'z')
	}
}

func TestReadByteAfterInterrupt(t *testing.T) {
	// One interrupt consumes one pending flag; the next read proceeds.
	var flag atomic.Bool
	r, pw := pipeReader(t, func() bool { return flag.Swap(false) })

	flag.Store(true)
	if _, err := r.ReadByte(); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("ReadByte() error = %v, want ErrInterrupted", err)
	}

	if _, err := pw.Write([]byte{'k'}); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := r.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte() error: %v", err)
	}
	if got != 'k' {
		t.Errorf("ReadByte() = %q, want %q", got, 'k')
	}
}
