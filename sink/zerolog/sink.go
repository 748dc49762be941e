package zerolog

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xstream"
)

// Sink bridges xstream to rs/zerolog with low overhead.
//
// Optimizations:
//   - Fast pre-check using GetLevel() to avoid allocating a zerolog.Event
//     when the level is disabled.
//   - Uses Logger.WithLevel(...) to avoid a level switch at call sites.
type Sink struct {
	l zerolog.Logger
}

var _ xstream.Sink = (*Sink)(nil)

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

// Emit logs one completed line.
// - Single authoritative timestamp provided by xstream passed as "ts".
// - Critical and Fatal map to error level to avoid os.Exit side-effects.
func (s *Sink) Emit(level xstream.Level, line string, at time.Time) {
	zlvl := mapLevel(level)

	// Fast path: drop early if below the logger's min level (no Event allocation).
	if zlvl < s.l.GetLevel() {
		return
	}

	// Ensure RFC3339Nano precision regardless of zerolog.TimeFieldFormat
	// defaults. Using a string avoids global config changes and keeps output
	// deterministic.
	s.l.WithLevel(zlvl).
		Str("ts", at.UTC().Format(time.RFC3339Nano)).
		Msg(line)
}

// SetMinLevel propagates a minimum level into the zerolog backend.
func (s *Sink) SetMinLevel(l xstream.Level) {
	s.l = s.l.Level(mapLevel(l))
}

// mapLevel converts xstream.Level to zerolog.Level.
// Critical and Fatal map to Error to avoid zerolog.Fatal() (which would exit
// the process); Notice lands on Info since zerolog has no notice level.
func mapLevel(l xstream.Level) zerolog.Level {
	switch {
	case l <= xstream.LevelTrace:
		return zerolog.TraceLevel
	case l <= xstream.LevelDebug:
		return zerolog.DebugLevel
	case l <= xstream.LevelNotice:
		return zerolog.InfoLevel
	case l <= xstream.LevelWarn:
		return zerolog.WarnLevel
	case l <= xstream.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.ErrorLevel
	}
}
