// Package input reads guesses one line at a time from an interactive stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrInputClosed is returned when the stream ends before a line arrives.
var ErrInputClosed = errors.New("input: stream closed")

// Reader yields one raw line per call.
type Reader struct {
	src io.Reader
	br  *bufio.Reader
}

// NewReader wraps r. If r is an io.Closer, Close releases it.
func NewReader(r io.Reader) *Reader {
	return &Reader{src: r, br: bufio.NewReader(r)}
}

// ReadLine blocks until a full line is available and returns it with the
// terminator still attached. A trailing line without a newline is returned
// as-is; the following call reports ErrInputClosed.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("read guess: %w", err)
}

// Close releases the underlying stream when it supports closing.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
