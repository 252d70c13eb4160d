// Command sed-engine reads a command stream from standard input and
// writes Print output to standard output. It takes no flags, no
// environment variables, and reads no files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/streamed/internal/engine"
	"github.com/dshills/streamed/internal/lineio"
	"github.com/dshills/streamed/internal/parser"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(in io.Reader, out, errOut io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(errOut, "sed-engine: fatal: %v\n", r)
			code = 1
		}
	}()

	w := lineio.NewWriter(out)
	defer w.Flush()

	p := parser.New(lineio.NewReader(in))
	e := engine.New()

	for {
		rec, err := p.Next()
		if errors.Is(err, io.EOF) {
			return 0
		}
		if err != nil {
			fmt.Fprintf(errOut, "sed-engine: %v\n", err)
			return 1
		}

		quit, err := e.Execute(rec, w)
		if err != nil {
			fmt.Fprintf(errOut, "sed-engine: %v\n", err)
			return 1
		}
		if quit {
			return 0
		}
	}
}
