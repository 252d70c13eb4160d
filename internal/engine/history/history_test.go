package history

import (
	"testing"

	"github.com/dshills/streamed/internal/engine/command"
)

func TestPushPopPast(t *testing.T) {
	h := New()
	r1 := &command.Record{Kind: command.Change, Start: 1, End: 1}
	r2 := &command.Record{Kind: command.Delete, Start: 2, End: 2}
	h.PushPast(r1)
	h.PushPast(r2)
	if h.PastCount() != 2 {
		t.Fatalf("PastCount() = %d, want 2", h.PastCount())
	}
	got := h.PopPast()
	if got != r2 {
		t.Fatalf("PopPast() returned wrong record, want r2")
	}
	if h.PastCount() != 1 {
		t.Fatalf("PastCount() after pop = %d, want 1", h.PastCount())
	}
	got = h.PopPast()
	if got != r1 {
		t.Fatalf("PopPast() returned wrong record, want r1")
	}
	if h.PopPast() != nil {
		t.Fatalf("PopPast() on empty stack should return nil")
	}
}

func TestArmUndoClampsToAvailableDepth(t *testing.T) {
	h := New()
	h.PushPast(&command.Record{Kind: command.Change})
	h.PushPast(&command.Record{Kind: command.Change})
	k := h.ArmUndo(10)
	if k != 2 {
		t.Fatalf("ArmUndo(10) with depth 2 = %d, want 2", k)
	}
	if h.PastCount() != 0 || h.FutureCount() != 2 {
		t.Fatalf("counts after ArmUndo: past=%d future=%d, want 0,2", h.PastCount(), h.FutureCount())
	}
	if h.PendingTravel() != -2 {
		t.Fatalf("PendingTravel() = %d, want -2", h.PendingTravel())
	}
	if !h.TravelMode() {
		t.Fatalf("TravelMode() = false, want true")
	}
}

func TestArmRedoClampsToAvailableDepth(t *testing.T) {
	h := New()
	h.ArmUndo(0) // enters travel mode with nothing to undo
	h.futureCount = 1
	k := h.ArmRedo(5)
	if k != 1 {
		t.Fatalf("ArmRedo(5) with depth 1 = %d, want 1", k)
	}
	if h.PendingTravel() != 1 {
		t.Fatalf("PendingTravel() = %d, want 1", h.PendingTravel())
	}
}

func TestDiscardFuture(t *testing.T) {
	h := New()
	h.PushFuture(&command.Record{Kind: command.Delete})
	h.PushFuture(&command.Record{Kind: command.Change})
	h.DiscardFuture()
	if h.FutureCount() != 0 {
		t.Fatalf("FutureCount() after discard = %d, want 0", h.FutureCount())
	}
	if h.PopFuture() != nil {
		t.Fatalf("PopFuture() after discard should return nil")
	}
}

func TestRecordMutationDiscardsFutureInTravelMode(t *testing.T) {
	h := New()
	h.PushPast(&command.Record{Kind: command.Change})
	h.ArmUndo(1)
	if h.FutureCount() != 1 {
		t.Fatalf("setup: FutureCount() = %d, want 1", h.FutureCount())
	}
	h.RecordMutation(&command.Record{Kind: command.Change})
	if h.FutureCount() != 0 {
		t.Fatalf("FutureCount() after branch = %d, want 0", h.FutureCount())
	}
	if h.TravelMode() {
		t.Fatalf("TravelMode() after branch = true, want false")
	}
	if h.PendingTravel() != 0 {
		t.Fatalf("PendingTravel() after branch = %d, want 0", h.PendingTravel())
	}
	if h.PastCount() != 1 {
		t.Fatalf("PastCount() after branch = %d, want 1", h.PastCount())
	}
}

func TestRecordMutationOutsideTravelModeJustPushes(t *testing.T) {
	h := New()
	h.RecordMutation(&command.Record{Kind: command.Delete})
	if h.PastCount() != 1 {
		t.Fatalf("PastCount() = %d, want 1", h.PastCount())
	}
	if h.FutureCount() != 0 {
		t.Fatalf("FutureCount() = %d, want 0", h.FutureCount())
	}
}
