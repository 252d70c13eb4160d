package lineio

import (
	"bufio"
	"io"
)

// Writer is a buffered sink for Print output and sentinel lines. The
// caller is responsible for calling Flush before the underlying stream
// is closed.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w for buffered writing.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Write implements io.Writer so a *Writer can be passed directly as
// the sink to Engine.Execute.
func (w *Writer) Write(p []byte) (int, error) {
	return w.bw.Write(p)
}

// Flush pushes any buffered bytes to the underlying stream.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
