package document

import (
	"fmt"
	"io"
	"sync"

	"github.com/dshills/streamed/internal/engine/snapshot"
)

// Document is the in-memory line buffer. The zero value is not usable;
// construct with New.
type Document struct {
	mu sync.Mutex

	storage []string
	offset  int
	lines   int

	initialHeadroom int
	growthFactor    float64
}

// New builds an empty Document with headroom on both ends so that
// front deletes and inserts can run without reallocating.
func New(opts ...Option) *Document {
	d := &Document{
		initialHeadroom: DefaultInitialHeadroom,
		growthFactor:    DefaultGrowthFactor,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.storage = make([]string, d.initialHeadroom*2)
	d.offset = d.initialHeadroom
	return d
}

// Len returns the current logical line count.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lines
}

func clampStart(start int) int {
	if start < 1 {
		return 1
	}
	return start
}

// Read returns the lines at logical positions [start, end], clamping
// end to the document length and returning Empty if start is past the
// end. It has no side effects.
func (d *Document) Read(start, end int) snapshot.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readLocked(start, end)
}

func (d *Document) readLocked(start, end int) snapshot.Snapshot {
	start = clampStart(start)
	if start > d.lines {
		return snapshot.Empty
	}
	if end > d.lines {
		end = d.lines
	}
	if end < start {
		return snapshot.Empty
	}
	out := make([]string, end-start+1)
	copy(out, d.storage[d.offset+start-1:d.offset+end])
	return snapshot.New(out)
}

// Overwrite is the core of Change: it replaces the window [start, end]
// with payload, growing the document if payload runs past the current
// end, and returns the lines it displaced. A zero-length payload is a
// no-op (the empty-payload edge case of a Change whose range coerced
// to end < start) and returns Empty.
func (d *Document) Overwrite(start, end int, payload snapshot.Snapshot) snapshot.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.overwriteLocked(start, end, payload)
}

func (d *Document) overwriteLocked(start, end int, payload snapshot.Snapshot) snapshot.Snapshot {
	n := payload.Len()
	if n == 0 {
		return snapshot.Empty
	}
	start = clampStart(start)

	prevEnd := end
	if prevEnd > d.lines {
		prevEnd = d.lines
	}
	prev := snapshot.Empty
	if prevEnd >= start {
		prev = d.readLocked(start, prevEnd)
	}

	lastWrittenPos := start + n - 1
	d.ensureTailCapacity(d.offset + lastWrittenPos - 1)

	for i := 0; i < n; i++ {
		d.storage[d.offset+start-1+i] = payload.At(i)
	}
	if lastWrittenPos > d.lines {
		d.lines = lastWrittenPos
	}
	return prev
}

// DeleteRange is the core of Delete: it removes logical positions
// [start, end] and returns the lines it removed. A cut reaching the
// end truncates the document, a cut at the front only advances the
// base offset, and a cut in the middle shifts whichever side of it has
// fewer lines to move.
func (d *Document) DeleteRange(start, end int) snapshot.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.deleteRangeLocked(start, end)
}

func (d *Document) deleteRangeLocked(start, end int) snapshot.Snapshot {
	if start > d.lines {
		return snapshot.Empty
	}
	start = clampStart(start)
	k := end - start + 1
	if k <= 0 {
		return snapshot.Empty
	}

	prevEnd := end
	if prevEnd > d.lines {
		prevEnd = d.lines
	}
	prev := d.readLocked(start, prevEnd)

	switch {
	case end >= d.lines:
		d.lines = start - 1
	case start == 1:
		d.offset += k
		d.lines -= k
	default:
		mid := start + k/2
		if mid < d.lines/2 {
			d.shiftHeadRight(start-1, k)
			d.offset += k
		} else {
			d.shiftTailLeft(end, k)
		}
		d.lines -= k
	}
	return prev
}

// shiftHeadRight moves logical positions [1, headLen] forward by k
// storage slots, widening the gap before them by k.
func (d *Document) shiftHeadRight(headLen, k int) {
	if headLen <= 0 {
		return
	}
	d.ensureTailCapacity(d.offset + k + headLen - 1)
	dst := d.storage[d.offset+k : d.offset+k+headLen]
	src := d.storage[d.offset : d.offset+headLen]
	copy(dst, src)
}

// shiftTailLeft moves logical positions [cutEnd+1, lines] back by k
// storage slots, closing the gap opened by a delete ending at cutEnd.
func (d *Document) shiftTailLeft(cutEnd, k int) {
	tailLen := d.lines - cutEnd
	if tailLen <= 0 {
		return
	}
	dst := d.storage[d.offset+cutEnd-k : d.offset+cutEnd-k+tailLen]
	src := d.storage[d.offset+cutEnd : d.offset+cutEnd+tailLen]
	copy(dst, src)
}

// Insert opens a gap of payload.Len() lines at logical position start,
// shifting whichever side is smaller, and writes payload into it. It
// is used to undo a Delete.
func (d *Document) Insert(start int, payload snapshot.Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.insertLocked(start, payload)
}

func (d *Document) insertLocked(start int, payload snapshot.Snapshot) {
	k := payload.Len()
	if k == 0 {
		return
	}
	start = clampStart(start)

	switch {
	case start > d.lines:
		d.ensureTailCapacity(d.offset + start - 1 + k - 1)
	case start-1 <= d.lines-start+1 && d.offset >= k:
		d.shiftHeadLeftForInsert(start-1, k)
		d.offset -= k
	default:
		tailLen := d.lines - start + 1
		d.ensureTailCapacity(d.offset + start - 1 + k + tailLen - 1)
		d.shiftTailRightForInsert(start, k)
	}

	for i := 0; i < k; i++ {
		d.storage[d.offset+start-1+i] = payload.At(i)
	}
	d.lines += k
}

// shiftHeadLeftForInsert moves logical positions [1, headLen] back by
// k storage slots, opening a gap of k slots right after them.
func (d *Document) shiftHeadLeftForInsert(headLen, k int) {
	if headLen <= 0 {
		return
	}
	dst := d.storage[d.offset-k : d.offset-k+headLen]
	src := d.storage[d.offset : d.offset+headLen]
	copy(dst, src)
}

// shiftTailRightForInsert moves logical positions [start, lines]
// forward by k storage slots, opening a gap of k slots at start.
func (d *Document) shiftTailRightForInsert(start, k int) {
	tailLen := d.lines - start + 1
	if tailLen <= 0 {
		return
	}
	dst := d.storage[d.offset+start-1+k : d.offset+start-1+k+tailLen]
	src := d.storage[d.offset+start-1 : d.offset+start-1+tailLen]
	copy(dst, src)
}

// ReplaceWhole empties the document and writes payload starting at
// line 1. It is used to undo a Change whose prev was empty and whose
// start was 1 — the "the document was empty before this Change"
// degeneracy, where overwriting a prefix would not be a true inverse.
func (d *Document) ReplaceWhole(payload snapshot.Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = 0
	d.offset = d.initialHeadroom
	d.overwriteLocked(1, 0, payload)
}

// Print writes the readable lines in [start, end] to w, substituting
// the literal line "." for any address outside [1, numLines].
func (d *Document) Print(start, end int, w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for addr := start; addr <= end; addr++ {
		if addr < 1 || addr > d.lines {
			if err := writeSentinel(w); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, d.storage[d.offset+addr-1]); err != nil {
			return err
		}
	}
	return nil
}

// AppendSentinel writes count occurrences of the literal line "." to
// sink.
func AppendSentinel(count int, sink io.Writer) error {
	for i := 0; i < count; i++ {
		if err := writeSentinel(sink); err != nil {
			return err
		}
	}
	return nil
}

func writeSentinel(w io.Writer) error {
	_, err := io.WriteString(w, ".\n")
	return err
}

// ensureTailCapacity grows storage, by growthFactor, until storage index
// idx is addressable. Reallocation failure is fatal: a make() that
// cannot be satisfied panics, which this does not recover from.
func (d *Document) ensureTailCapacity(idx int) {
	if idx < len(d.storage) {
		return
	}
	newCap := len(d.storage)
	if newCap == 0 {
		newCap = d.initialHeadroom * 2
	}
	for idx >= newCap {
		grown := int(float64(newCap) * d.growthFactor)
		if grown <= newCap {
			grown = newCap + d.initialHeadroom
		}
		newCap = grown
	}
	grown := make([]string, newCap)
	copy(grown, d.storage)
	d.storage = grown
}
