// Package lineio wraps the byte-level line reader and writer the
// engine treats as an external collaborator: what they produce and
// consume is specified, not how they do it internally.
package lineio

import (
	"bufio"
	"errors"
	"io"
)

// ErrUnexpectedEOF names an input stream that ends before a command
// that promised more lines (a Change's data block) has been fully
// read. Nothing in this module returns it: ReadLine reports io.EOF, and
// the parser reports a truncated Change as parser.ErrMalformed.
var ErrUnexpectedEOF = errors.New("lineio: unexpected end of input")

// Reader reads one logical line at a time from an underlying byte
// stream, stripping the trailing newline.
type Reader struct {
	s *bufio.Scanner
}

// NewReader wraps r for line-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{s: s}
}

// ReadLine returns the next line with its newline stripped. It
// returns io.EOF once the stream is exhausted with no partial line
// pending.
func (r *Reader) ReadLine() (string, error) {
	if r.s.Scan() {
		return r.s.Text(), nil
	}
	if err := r.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
