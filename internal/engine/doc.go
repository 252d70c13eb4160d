// Package engine implements the top-level loop that accepts one
// command at a time, settles any pending undo/redo travel, dispatches
// the command against the document and history, and emits output.
//
//	e := engine.New()
//	quit, err := e.Execute(rec, os.Stdout)
//
// A run of consecutive Undo/Redo commands only updates history
// counters; the document itself is not touched until the next Print,
// Change, or Delete arrives, at which point the engine settles the
// whole run in a single batched walk.
//
// # Error Handling
//
// Execute is total with respect to syntactically valid command
// records: out-of-range addresses are clamped or dot-filled, an empty
// Change payload is a no-op, and Undo/Redo depth is silently clamped.
// The only errors Execute can return are a write failure from the
// output sink, ErrReplayMismatch when Config.StrictReplay catches a
// redo inconsistency, and ErrInvalidRecord for a record carrying a
// Kind value built outside the parser.
package engine
