package xstream

import "time"

// Sink is the logging backend Strategy (e.g., a slog or zap wrapper).
// Emit receives one finished line of text with the severity in effect when
// the line terminator arrived, plus the single authoritative timestamp 'at'
// taken by the Writer to avoid multiple time reads. The line never contains
// a terminator. Emit must not block; routing, formatting and delivery are
// the sink's concern.
type Sink interface {
	Emit(level Level, line string, at time.Time)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(level Level, line string, at time.Time)

func (f SinkFunc) Emit(level Level, line string, at time.Time) { f(level, line, at) }

// NopSink discards every line. Useful as a benchmark target and as a
// placeholder during wiring.
type NopSink struct{}

func (NopSink) Emit(Level, string, time.Time) {}
