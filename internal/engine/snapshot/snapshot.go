package snapshot

// Snapshot is an immutable, length-known sequence of lines. It is used
// both as command input (new lines for a Change) and as a command's
// undo payload (lines displaced by a mutation).
//
// A Snapshot is built once and never mutated in place; the document
// and the history only ever replace whole slots, never edit a line.
type Snapshot struct {
	lines []string
}

// Empty is the canonical zero-length snapshot: "there was nothing here."
var Empty = Snapshot{}

// New builds a Snapshot owning lines. The caller must not retain or
// mutate lines afterward; ownership transfers to the Snapshot.
func New(lines []string) Snapshot {
	if len(lines) == 0 {
		return Empty
	}
	return Snapshot{lines: lines}
}

// Len returns the number of lines in the snapshot.
func (s Snapshot) Len() int {
	return len(s.lines)
}

// At returns the line at the given 0-based index. It panics if i is
// out of range, matching slice semantics.
func (s Snapshot) At(i int) string {
	return s.lines[i]
}

// Lines returns the snapshot's backing slice. Callers must treat the
// result as read-only.
func (s Snapshot) Lines() []string {
	return s.lines
}

// Equal reports whether two snapshots have the same length and are
// byte-equal in order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.lines) != len(other.lines) {
		return false
	}
	for i, l := range s.lines {
		if l != other.lines[i] {
			return false
		}
	}
	return true
}
