package logrus

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trickstertwo/xstream"
)

// Sink bridges xstream to sirupsen/logrus.
//
// Optimizations:
//   - Fast pre-check using IsLevelEnabled to avoid building an Entry when
//     the level is disabled.
//
// The authoritative xstream timestamp rides on the entry itself via
// WithTime, so logrus formatters render it natively.
type Sink struct {
	l *logrus.Logger
}

var _ xstream.Sink = (*Sink)(nil)

func New(l *logrus.Logger) *Sink {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Sink{l: l}
}

// Emit logs one completed line at the mapped logrus level.
func (s *Sink) Emit(level xstream.Level, line string, at time.Time) {
	llvl := mapLevel(level)
	if !s.l.IsLevelEnabled(llvl) {
		return
	}
	s.l.WithTime(at).Log(llvl, line)
}

// SetMinLevel propagates a minimum level into the logrus backend.
func (s *Sink) SetMinLevel(l xstream.Level) {
	s.l.SetLevel(mapLevel(l))
}

// mapLevel converts xstream.Level to logrus.Level. logrus orders its levels
// inversely (lower value is more severe). Notice lands on Info; Critical and
// Fatal map to Error so no line can reach the Fatal/Panic exit paths.
func mapLevel(l xstream.Level) logrus.Level {
	switch {
	case l <= xstream.LevelTrace:
		return logrus.TraceLevel
	case l <= xstream.LevelDebug:
		return logrus.DebugLevel
	case l <= xstream.LevelNotice:
		return logrus.InfoLevel
	case l <= xstream.LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
