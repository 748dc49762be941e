package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/trickstertwo/xstream"
)

// Sink adapts xstream to the Go slog API (Adapter Strategy).
// Levels pass through numerically: xstream shares slog's scale, so Notice
// renders as INFO+2 and Fatal as ERROR+4 without any mapping table, and no
// level can trigger an exit.
type Sink struct {
	l     *slog.Logger
	lv    *slog.LevelVar // optional, enables SetMinLevel
	tsKey string         // timestamp field key; default "ts"
}

var _ xstream.Sink = (*Sink)(nil)

func toSlog(l xstream.Level) slog.Level {
	return slog.Level(l)
}

func New(l *slog.Logger) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l, tsKey: "ts"}
}

// NewWithLevelVar creates a sink and wires a slog.LevelVar so SetMinLevel
// can dynamically adjust the handler's filter.
func NewWithLevelVar(l *slog.Logger, lv *slog.LevelVar) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l, lv: lv, tsKey: "ts"}
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *slog.Logger, lv *slog.LevelVar, tsKey string) *Sink {
	if l == nil {
		l = slog.Default()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{l: l, lv: lv, tsKey: tsKey}
}

// Emit logs one completed line with the single authoritative timestamp
// provided by xstream. Uses LogAttrs for minimal allocations.
func (s *Sink) Emit(level xstream.Level, line string, at time.Time) {
	s.l.LogAttrs(context.Background(), toSlog(level), line, slog.Time(s.tsKey, at))
}

// SetMinLevel updates the handler filter when a LevelVar was supplied.
// If not provided, this is a no-op.
func (s *Sink) SetMinLevel(l xstream.Level) {
	if s.lv == nil {
		return
	}
	s.lv.Set(toSlog(l))
}
