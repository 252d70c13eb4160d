package engine

import "errors"

// ErrInvalidRecord is returned when a command.Record carries a Kind
// value Execute's dispatch switch does not recognize — only reachable
// from a Record built by hand outside the parser package.
var ErrInvalidRecord = errors.New("engine: invalid command record")

// ErrReplayMismatch is returned when Config.StrictReplay is enabled
// and re-applying a Delete (during a redo) produces a different
// displaced snapshot than the one originally recorded. This is a
// Config-gated consistency check rather than a build tag, since the
// shipped binary always uses one fixed build.
var ErrReplayMismatch = errors.New("engine: redo delete produced a different snapshot than recorded")
