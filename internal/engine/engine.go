package engine

import (
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/streamed/internal/config"
	"github.com/dshills/streamed/internal/diag"
	"github.com/dshills/streamed/internal/engine/command"
	"github.com/dshills/streamed/internal/engine/document"
	"github.com/dshills/streamed/internal/engine/history"
)

// Engine is the top-level facade: one document, one history, and the
// dispatch loop that ties them together.
type Engine struct {
	mu sync.Mutex

	id uuid.UUID

	doc  *document.Document
	hist *history.History

	cfg    config.Config
	logger *diag.Logger

	seq uint64
}

// New builds an Engine with an empty document and empty history.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.New(),
		hist:   history.New(),
		cfg:    config.DefaultConfig(),
		logger: diag.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.doc = document.New(
		document.WithInitialHeadroom(e.cfg.InitialHeadroom),
		document.WithGrowthFactor(e.cfg.GrowthFactor),
	)
	return e
}

// ID identifies this Engine instance, for correlating diagnostics
// across embedders running more than one.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Len returns the document's current line count.
func (e *Engine) Len() int {
	return e.doc.Len()
}

// Execute runs one tick: it settles any pending undo/redo travel
// (unless rec itself is Undo, Redo, or Quit), dispatches rec against
// the document and history, and writes Print output to w. It reports
// whether rec was a Quit command.
func (e *Engine) Execute(rec *command.Record, w io.Writer) (quit bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	settledTravel := false
	if rec.Kind != command.Undo && rec.Kind != command.Redo && rec.Kind != command.Quit {
		settledTravel = e.hist.PendingTravel() != 0
		if err := e.settle(); err != nil {
			return false, err
		}
	}

	e.seq++
	rec.Seq = e.seq

	switch rec.Kind {
	case command.Print:
		if err := e.doc.Print(rec.Start, rec.End, w); err != nil {
			return false, err
		}
	case command.Change:
		rec.Prev = e.doc.Overwrite(rec.Start, rec.End, rec.Payload)
		e.hist.RecordMutation(rec)
		e.warnIfHistoryOverHint()
	case command.Delete:
		rec.Prev = e.doc.DeleteRange(rec.Start, rec.End)
		e.hist.RecordMutation(rec)
		e.warnIfHistoryOverHint()
	case command.Undo:
		e.hist.ArmUndo(rec.Start)
	case command.Redo:
		e.hist.ArmRedo(rec.Start)
	case command.Quit:
		quit = true
	default:
		return false, ErrInvalidRecord
	}

	e.logger.Tick(rec.Seq, rec.Kind.String(), rec.Start, rec.End, e.doc.Len(), settledTravel)
	return quit, nil
}

// warnIfHistoryOverHint logs once a mutation leaves the combined
// past+future record count past Config.MaxHistoryHint. A hint of zero
// disables the check; history itself is never trimmed either way.
func (e *Engine) warnIfHistoryOverHint() {
	if e.cfg.MaxHistoryHint <= 0 {
		return
	}
	total := e.hist.PastCount() + e.hist.FutureCount()
	if total > e.cfg.MaxHistoryHint {
		e.logger.HistoryOverHint(total, e.cfg.MaxHistoryHint)
	}
}

// settle performs the coalesced undo/redo catch-up walk: while
// pendingTravel is negative it reverts one past record at a time into
// future; while positive it re-applies one future record at a time
// into past.
func (e *Engine) settle() error {
	for e.hist.PendingTravel() < 0 {
		rec := e.hist.TravelBack()
		if rec == nil {
			break
		}
		e.revert(rec)
		e.hist.AddPendingTravel(1)
	}
	for e.hist.PendingTravel() > 0 {
		rec := e.hist.TravelForward()
		if rec == nil {
			break
		}
		if err := e.reapply(rec); err != nil {
			return err
		}
		e.hist.AddPendingTravel(-1)
	}
	return nil
}

// revert undoes one history record's effect on the document.
func (e *Engine) revert(rec *command.Record) {
	switch rec.Kind {
	case command.Change:
		e.toggleChange(rec)
	case command.Delete:
		if rec.Prev.Len() > 0 {
			e.doc.Insert(rec.Start, rec.Prev)
		}
	}
}

// reapply re-executes one history record's effect on the document.
func (e *Engine) reapply(rec *command.Record) error {
	switch rec.Kind {
	case command.Change:
		e.toggleChange(rec)
	case command.Delete:
		got := e.doc.DeleteRange(rec.Start, rec.End)
		if e.cfg.StrictReplay && !got.Equal(rec.Prev) {
			return ErrReplayMismatch
		}
	}
	return nil
}

// toggleChange is both "revert Change" and "re-apply Change": the
// record's prev/payload are swapped at the end of every toggle, so the
// same code path that executes one direction is ready to execute the
// other the next time it's called.
func (e *Engine) toggleChange(rec *command.Record) {
	if rec.Prev.Len() == 0 && rec.Start == 1 {
		e.doc.ReplaceWhole(rec.Prev)
	} else {
		e.doc.Overwrite(rec.Start, rec.End, rec.Prev)
	}
	rec.Swap()
}
