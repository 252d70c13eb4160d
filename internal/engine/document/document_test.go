package document

import (
	"strings"
	"testing"

	"github.com/dshills/streamed/internal/engine/snapshot"
)

func lines(ss ...string) snapshot.Snapshot {
	return snapshot.New(ss)
}

func TestOverwriteAppendsPastEnd(t *testing.T) {
	d := New()
	prev := d.Overwrite(1, 0, lines("first", "second"))
	if prev.Len() != 0 {
		t.Fatalf("prev.Len() = %d, want 0", prev.Len())
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	got := d.Read(1, 2)
	if got.At(0) != "first" || got.At(1) != "second" {
		t.Fatalf("Read(1,2) = %v", got.Lines())
	}
}

func TestOverwriteReplacesAndExtends(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a", "b", "c"))
	prev := d.Overwrite(2, 4, lines("x", "y", "z", "w"))
	if prev.Len() != 2 || prev.At(0) != "b" || prev.At(1) != "c" {
		t.Fatalf("prev = %v, want [b c]", prev.Lines())
	}
	if d.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", d.Len())
	}
	got := d.Read(1, 5)
	want := []string{"a", "x", "y", "z", "w"}
	for i, w := range want {
		if got.At(i) != w {
			t.Errorf("line %d = %q, want %q", i+1, got.At(i), w)
		}
	}
}

func TestOverwriteEmptyPayloadIsNoOp(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a", "b"))
	prev := d.Overwrite(1, 0, snapshot.Empty)
	if prev.Len() != 0 {
		t.Fatalf("prev.Len() = %d, want 0", prev.Len())
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
}

func TestDeleteRangeFront(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a", "b", "c", "d"))
	prev := d.DeleteRange(1, 2)
	if prev.Len() != 2 || prev.At(0) != "a" || prev.At(1) != "b" {
		t.Fatalf("prev = %v", prev.Lines())
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}
	got := d.Read(1, 2)
	if got.At(0) != "c" || got.At(1) != "d" {
		t.Fatalf("Read(1,2) = %v, want [c d]", got.Lines())
	}
}

func TestDeleteRangeTailTruncates(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a", "b", "c"))
	d.DeleteRange(2, 3)
	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
	got := d.Read(1, 1)
	if got.At(0) != "a" {
		t.Fatalf("Read(1,1) = %v, want [a]", got.Lines())
	}
}

func TestDeleteRangeMiddle(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a", "b", "c", "d", "e"))
	prev := d.DeleteRange(2, 3)
	if prev.Len() != 2 || prev.At(0) != "b" || prev.At(1) != "c" {
		t.Fatalf("prev = %v", prev.Lines())
	}
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	got := d.Read(1, 3)
	want := []string{"a", "d", "e"}
	for i, w := range want {
		if got.At(i) != w {
			t.Errorf("line %d = %q, want %q", i+1, got.At(i), w)
		}
	}
}

func TestInsertUndoesDeleteMiddle(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a", "b", "c"))
	prev := d.DeleteRange(2, 2)
	d.Insert(2, prev)
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	got := d.Read(1, 3)
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if got.At(i) != w {
			t.Errorf("line %d = %q, want %q", i+1, got.At(i), w)
		}
	}
}

func TestInsertUndoesDeleteFront(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a", "b", "c"))
	prev := d.DeleteRange(1, 1)
	d.Insert(1, prev)
	got := d.Read(1, 3)
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if got.At(i) != w {
			t.Errorf("line %d = %q, want %q", i+1, got.At(i), w)
		}
	}
}

func TestReplaceWhole(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a", "b"))
	d.ReplaceWhole(lines("x", "y", "z"))
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}
	got := d.Read(1, 3)
	want := []string{"x", "y", "z"}
	for i, w := range want {
		if got.At(i) != w {
			t.Errorf("line %d = %q, want %q", i+1, got.At(i), w)
		}
	}
}

func TestPrintDotFillsOutOfRange(t *testing.T) {
	d := New()
	d.Overwrite(1, 0, lines("a"))
	var sb strings.Builder
	if err := d.Print(1, 3, &sb); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	want := "a\n.\n.\n"
	if sb.String() != want {
		t.Fatalf("Print() = %q, want %q", sb.String(), want)
	}
}

func TestPrintAllDotWhenStartBeyondEnd(t *testing.T) {
	d := New()
	var sb strings.Builder
	if err := d.Print(5, 7, &sb); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	want := ".\n.\n.\n"
	if sb.String() != want {
		t.Fatalf("Print() = %q, want %q", sb.String(), want)
	}
}

func TestGrowthAcrossManyAppends(t *testing.T) {
	d := New(WithInitialHeadroom(2))
	ss := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		ss = append(ss, "line")
	}
	d.Overwrite(1, 0, lines(ss...))
	if d.Len() != 200 {
		t.Fatalf("Len() = %d, want 200", d.Len())
	}
	got := d.Read(200, 200)
	if got.At(0) != "line" {
		t.Fatalf("Read(200,200) = %v", got.Lines())
	}
}
