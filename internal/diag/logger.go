// Package diag provides the engine's optional diagnostics logger.
//
// It is modeled on the teacher's own logger setup, adapted to a
// constraint that setup didn't have: stdout and stderr are the
// program's wire format here, so diagnostics may never touch them.
// Logging is off (a no-op logger) unless an embedder opts in with
// engine.WithLogger, and when enabled it writes JSON lines to a
// rotated file only.
package diag

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps the structured logger used for engine diagnostics.
type Logger struct {
	z *zap.Logger
}

// Nop returns a Logger that discards everything. It is the default
// used when no Option enables diagnostics.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// FileConfig configures a file-backed Logger.
type FileConfig struct {
	// Path is the log file to write to. Required.
	Path string
	// MaxSizeMB is the size in megabytes at which the file rotates.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int
	// MaxAgeDays is the number of days to retain rotated files.
	MaxAgeDays int
	// Compress enables gzip compression of rotated files.
	Compress bool
}

// DefaultFileConfig returns sane rotation defaults for path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// NewFile builds a Logger that writes JSON lines to a rotated file and
// never to stdout/stderr.
func NewFile(cfg FileConfig) *Logger {
	sink := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(sink),
		zapcore.DebugLevel,
	)
	return &Logger{z: zap.New(core)}
}

// Tick logs one engine dispatch: the command kind, its address range,
// the document length afterward, and whether a pending travel was
// settled first.
func (l *Logger) Tick(seq uint64, kind string, start, end, docLen int, settledTravel bool) {
	l.z.Debug("tick",
		zap.Uint64("seq", seq),
		zap.String("kind", kind),
		zap.Int("start", start),
		zap.Int("end", end),
		zap.Int("doc_len", docLen),
		zap.Bool("settled_travel", settledTravel),
	)
}

// HistoryOverHint logs a warning that the combined past+future history
// record count has crossed an embedder-configured advisory hint.
func (l *Logger) HistoryOverHint(total, hint int) {
	l.z.Warn("history size exceeds hint",
		zap.Int("total", total),
		zap.Int("hint", hint),
	)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}
