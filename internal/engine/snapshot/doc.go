// Package snapshot provides the immutable line sequence used both as
// command input (new lines for a Change) and as a command's undo
// payload (lines displaced by a mutation).
package snapshot
