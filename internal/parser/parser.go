package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/streamed/internal/engine/command"
	"github.com/dshills/streamed/internal/engine/snapshot"
	"github.com/dshills/streamed/internal/lineio"
)

// ErrMalformed wraps every parse failure. Malformed input is not a
// recoverable editing condition, just an input we decline to guess at;
// the caller decides whether to abort or skip ahead.
var ErrMalformed = errors.New("parser: malformed command")

// Parser reads successive command blocks from an underlying
// lineio.Reader.
type Parser struct {
	r *lineio.Reader
}

// New wraps r for command-at-a-time parsing.
func New(r *lineio.Reader) *Parser {
	return &Parser{r: r}
}

// Next reads and parses one command block. It returns io.EOF (via the
// underlying reader) once the stream is exhausted between commands.
func (p *Parser) Next() (*command.Record, error) {
	line, err := p.r.ReadLine()
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, fmt.Errorf("%w: empty command line", ErrMalformed)
	}

	letter := line[len(line)-1]
	body := line[:len(line)-1]

	switch letter {
	case 'p', 'c', 'd':
		return p.parsePCD(letter, body)
	case 'u', 'r':
		return parseUR(letter, body)
	case 'q':
		if body != "" {
			return nil, fmt.Errorf("%w: q takes no address", ErrMalformed)
		}
		return &command.Record{Kind: command.Quit}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized command letter %q", ErrMalformed, letter)
	}
}

func (p *Parser) parsePCD(letter byte, body string) (*command.Record, error) {
	start, end, err := parseStartEnd(body)
	if err != nil {
		return nil, err
	}
	rec := &command.Record{Start: start, End: end}

	switch letter {
	case 'p':
		rec.Kind = command.Print
	case 'd':
		rec.Kind = command.Delete
	case 'c':
		rec.Kind = command.Change
		if start < 1 {
			start = 1
			rec.Start = start
		}
		n := end - start + 1
		if n < 0 {
			n = 0
		}
		lines, err := p.readChangeBody(n)
		if err != nil {
			return nil, err
		}
		rec.Payload = snapshot.New(lines)
	}
	return rec, nil
}

func parseUR(letter byte, body string) (*command.Record, error) {
	k, err := parseInt(body)
	if err != nil {
		return nil, err
	}
	rec := &command.Record{Start: k}
	if letter == 'u' {
		rec.Kind = command.Undo
	} else {
		rec.Kind = command.Redo
	}
	return rec, nil
}

// readChangeBody reads exactly n verbatim data lines followed by the
// lone "." terminator.
func (p *Parser) readChangeBody(n int) ([]string, error) {
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, err := p.r.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("%w: change body truncated: %v", ErrMalformed, err)
		}
		lines = append(lines, line)
	}
	term, err := p.r.ReadLine()
	if err != nil {
		return nil, fmt.Errorf("%w: change terminator missing: %v", ErrMalformed, err)
	}
	if term != "." {
		return nil, fmt.Errorf("%w: change terminator not %q, got %q", ErrMalformed, ".", term)
	}
	return lines, nil
}

// parseStartEnd requires the literal "<start>,<end>" form — there is
// no bare-single-address fallback for p/c/d.
func parseStartEnd(body string) (start, end int, err error) {
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return 0, 0, fmt.Errorf("%w: missing ',' in %q", ErrMalformed, body)
	}
	start, err = parseInt(body[:comma])
	if err != nil {
		return 0, 0, err
	}
	end, err = parseInt(body[comma+1:])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative decimal integer", ErrMalformed, s)
	}
	return n, nil
}
