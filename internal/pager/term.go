package pager

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalReader reads single keystrokes from stdin by flipping the
// terminal into raw mode for the duration of one read.
type TerminalReader struct{}

// NewTerminalReader creates a KeyReader backed by the real terminal.
func NewTerminalReader() *TerminalReader {
	return &TerminalReader{}
}

// ReadKey blocks until one byte is available on stdin. The terminal
// state is restored before returning, even on error, so an interrupted
// run never leaves the shell in raw mode.
func (t *TerminalReader) ReadKey() (byte, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	var buf [1]byte
	if _, err := os.Stdin.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read key: %w", err)
	}
	return buf[0], nil
}
