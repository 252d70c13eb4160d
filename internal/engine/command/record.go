// Package command defines the parsed, structured representation of one
// user command, and the history's linked-stack record type.
package command

import "github.com/dshills/streamed/internal/engine/snapshot"

// Kind identifies the user command a Record carries.
type Kind int

const (
	Print Kind = iota
	Change
	Delete
	Undo
	Redo
	Quit
)

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Print:
		return "print"
	case Change:
		return "change"
	case Delete:
		return "delete"
	case Undo:
		return "undo"
	case Redo:
		return "redo"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Record is the parsed form of one command, and — once executed and
// mutating — the node linking it into a history stack.
//
// Start and End are 1-based inclusive addresses; End is unused for
// Undo/Redo/Quit, and Start carries the count K for Undo/Redo. Payload
// holds a Change's new lines. Prev holds the lines a Change or Delete
// displaced, populated only after execution. Next links the record
// into whichever history stack currently owns it.
type Record struct {
	Kind    Kind
	Start   int
	End     int
	Payload snapshot.Snapshot
	Prev    snapshot.Snapshot
	Next    *Record

	// Seq is a monotonically increasing, diagnostic-only sequence
	// number assigned when the engine executes the record. It has no
	// effect on editing semantics.
	Seq uint64
}

// Swap exchanges Payload and Prev, leaving the record ready to be
// re-applied by the same code path that originally executed it. This
// is the mechanism by which reverting a Change and re-applying it are
// literally the same operation.
func (r *Record) Swap() {
	r.Payload, r.Prev = r.Prev, r.Payload
}
