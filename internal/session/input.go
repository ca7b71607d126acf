package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// LineReader is the session's only source of user input. ReadLine returns
// io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// ScannerReader reads newline separated input from a stream such as stdin.
type ScannerReader struct {
	src     io.Reader
	scanner *bufio.Scanner
}

func NewScannerReader(src io.Reader) *ScannerReader {
	return &ScannerReader{
		src:     src,
		scanner: bufio.NewScanner(src),
	}
}

func (r *ScannerReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return strings.TrimRight(r.scanner.Text(), "\r"), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close closes the underlying stream if it is closable.
func (r *ScannerReader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ScriptReader replays a fixed list of lines, then reports io.EOF.
type ScriptReader struct {
	lines  []string
	next   int
	closed bool
}

func NewScriptReader(lines ...string) *ScriptReader {
	return &ScriptReader{lines: lines}
}

func (r *ScriptReader) ReadLine() (string, error) {
	if r.closed || r.next >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.next]
	r.next++
	return line, nil
}

func (r *ScriptReader) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (r *ScriptReader) Closed() bool { return r.closed }

// Remaining is the number of lines not yet read.
func (r *ScriptReader) Remaining() int { return len(r.lines) - r.next }

// parseNumber parses a whole number typed by the user. Values outside the
// int32 range are rejected, so the result converts to int on every platform
// and stays within order.MaxQuantity.
func parseNumber(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("empty line: %w", ErrInvalidInput)
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidInput)
	}
	return n, nil
}
