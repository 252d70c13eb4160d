// Package history implements the engine's two-stack, lazily-coalesced
// undo/redo record.
package history

import (
	"sync"

	"github.com/dshills/streamed/internal/engine/command"
)

// History holds the past and future stacks of executed mutating
// command records, each a singly-linked list through Record.Next, plus
// the travel state needed for coalesced undo/redo.
type History struct {
	mu sync.Mutex

	past   *command.Record
	future *command.Record

	pastCount   int
	futureCount int

	pendingTravel int
	travelMode    bool
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// PastCount returns the number of records on the past stack.
func (h *History) PastCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pastCount
}

// FutureCount returns the number of records on the future stack.
func (h *History) FutureCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.futureCount
}

// PendingTravel returns the signed number of history steps still owed:
// negative means undo, positive means redo, zero means settled.
func (h *History) PendingTravel() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pendingTravel
}

// TravelMode reports whether the engine is inside an unbroken run of
// Undo/Redo commands.
func (h *History) TravelMode() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.travelMode
}

// PushPast pushes rec onto the past stack.
func (h *History) PushPast(rec *command.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec.Next = h.past
	h.past = rec
	h.pastCount++
}

// PopPast pops and returns the top of the past stack, or nil if empty.
func (h *History) PopPast() *command.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec := h.past
	if rec == nil {
		return nil
	}
	h.past = rec.Next
	rec.Next = nil
	h.pastCount--
	return rec
}

// PushFuture pushes rec onto the future stack.
func (h *History) PushFuture(rec *command.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec.Next = h.future
	h.future = rec
	h.futureCount++
}

// PopFuture pops and returns the top of the future stack, or nil if
// empty.
func (h *History) PopFuture() *command.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec := h.future
	if rec == nil {
		return nil
	}
	h.future = rec.Next
	rec.Next = nil
	h.futureCount--
	return rec
}

// AddPendingTravel adds delta to the pending travel counter.
func (h *History) AddPendingTravel(delta int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pendingTravel += delta
}

// SetTravelMode sets the travel-mode flag.
func (h *History) SetTravelMode(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.travelMode = v
}

// ArmUndo clamps k to the available past depth, updates the stack
// counters and pendingTravel, enters travel mode, and returns the
// clamped k.
func (h *History) ArmUndo(k int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if k > h.pastCount {
		k = h.pastCount
	}
	h.pendingTravel -= k
	h.pastCount -= k
	h.futureCount += k
	h.travelMode = true
	return k
}

// ArmRedo clamps k to the available future depth and updates the
// stack counters and pendingTravel. It is only meaningful while
// travel mode is already active.
func (h *History) ArmRedo(k int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if k > h.futureCount {
		k = h.futureCount
	}
	h.pendingTravel += k
	h.pastCount += k
	h.futureCount -= k
	return k
}

// TravelBack performs one physical step of a revert walk: it moves the
// top of past onto future without touching the count fields, since
// ArmUndo already applied this step's effect on pastCount/futureCount
// at the moment the Undo command was counted. It returns the moved
// record, or nil if past is empty.
func (h *History) TravelBack() *command.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec := h.past
	if rec == nil {
		return nil
	}
	h.past = rec.Next
	rec.Next = h.future
	h.future = rec
	return rec
}

// TravelForward performs one physical step of a re-apply walk: it
// moves the top of future onto past without touching the count
// fields, mirroring TravelBack. It returns the moved record, or nil if
// future is empty.
func (h *History) TravelForward() *command.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	rec := h.future
	if rec == nil {
		return nil
	}
	h.future = rec.Next
	rec.Next = h.past
	h.past = rec
	return rec
}

// DiscardFuture drops every record on the future stack in a single
// traversal and resets futureCount to zero.
func (h *History) DiscardFuture() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for rec := h.future; rec != nil; {
		next := rec.Next
		rec.Next = nil
		rec = next
	}
	h.future = nil
	h.futureCount = 0
}

// RecordMutation implements the post-dispatch history update for a
// Change or Delete: if travel mode is active, the future is discarded
// and travel state reset before the record is pushed onto past.
func (h *History) RecordMutation(rec *command.Record) {
	h.mu.Lock()
	if h.travelMode {
		for f := h.future; f != nil; {
			next := f.Next
			f.Next = nil
			f = next
		}
		h.future = nil
		h.futureCount = 0
		h.travelMode = false
		h.pendingTravel = 0
	}
	rec.Next = h.past
	h.past = rec
	h.pastCount++
	h.mu.Unlock()
}
