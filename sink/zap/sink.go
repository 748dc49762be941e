package zap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xstream"
)

// Sink bridges xstream to go.uber.org/zap with low overhead.
//
// Optimizations:
//   - Uses Logger.Check(level, line) so lines below the backend filter cost
//     one branch and allocate nothing.
//   - Guarantees RFC3339Nano "ts" precision by writing the authoritative
//     timestamp as a string field.
//
// Optional behavior:
//   - SetMinLevel leverages zap.AtomicLevel when provided at construction
//     time to adjust backend filtering. If no AtomicLevel is provided,
//     SetMinLevel is a no-op.
type Sink struct {
	l     *zap.Logger
	al    *zap.AtomicLevel // optional, enables SetMinLevel
	tsKey string           // timestamp field key; default "ts"
}

var _ xstream.Sink = (*Sink)(nil)

// New creates a sink for the provided zap logger.
func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l, tsKey: "ts"}
}

// NewWithAtomicLevel creates a sink and wires a zap.AtomicLevel so
// SetMinLevel can dynamically adjust the backend's filter.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l, al: al, tsKey: "ts"}
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, al *zap.AtomicLevel, tsKey string) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, al: al, tsKey: tsKey}
}

// Emit logs one completed line.
// - Uses xstream's authoritative timestamp as tsKey with RFC3339Nano precision.
// - Maps LevelCritical and LevelFatal to Error to avoid os.Exit in library code.
func (s *Sink) Emit(level xstream.Level, line string, at time.Time) {
	// Fast path: skip if disabled.
	ce := s.l.Check(toZapLevel(level), line)
	if ce == nil {
		return
	}
	ce.Write(zap.String(s.tsKey, at.UTC().Format(time.RFC3339Nano)))
}

// SetMinLevel updates the backend filter when an AtomicLevel was supplied.
// If not provided, this is a no-op.
func (s *Sink) SetMinLevel(l xstream.Level) {
	if s.al == nil {
		return
	}
	s.al.SetLevel(toZapLevel(l))
}

func toZapLevel(l xstream.Level) zapcore.Level {
	switch {
	case l <= xstream.LevelTrace:
		return zapcore.DebugLevel // zap has no trace; map to debug
	case l <= xstream.LevelDebug:
		return zapcore.DebugLevel
	case l <= xstream.LevelNotice:
		return zapcore.InfoLevel // zap has no notice; keep it on the info side
	case l <= xstream.LevelWarn:
		return zapcore.WarnLevel
	case l <= xstream.LevelError:
		return zapcore.ErrorLevel
	default:
		// Critical and Fatal. Avoid Fatal/DPanic to prevent exits in library code.
		return zapcore.ErrorLevel
	}
}
