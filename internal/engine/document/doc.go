// Package document implements the line buffer the engine edits.
//
// The document is addressed by 1-based logical positions and backed by
// a growable array with a base offset: logical position i lives at
// storage index offset+i-1. Front deletes and inserts near the head
// can therefore move only the offset instead of shifting every line,
// and a mid-document delete/insert shifts whichever side — head or
// tail — has fewer lines to move.
//
//	d := document.New()
//	prev := d.Overwrite(1, 0, snapshot.New([]string{"first", "second"}))
//	d.Print(1, 3, os.Stdout)
//
// Reallocation failure is fatal: growth that cannot be satisfied panics
// rather than returning an error, matching the buffer's documented
// failure mode.
package document
