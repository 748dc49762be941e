package xstream

import (
	"fmt"
	"strings"
)

// Level mirrors slog numeric semantics and extends with Trace (-8), Notice (2),
// Critical (10) and Fatal (12). Higher values are more severe.
type Level int

const (
	LevelTrace    Level = -8
	LevelDebug    Level = -4
	LevelInfo     Level = 0
	LevelNotice   Level = 2
	LevelWarn     Level = 4
	LevelError    Level = 8
	LevelCritical Level = 10
	LevelFatal    Level = 12
)

// String returns the lowercase name of the level. Values between named
// levels render as the next-lower name plus an offset, e.g. "info+1".
func (l Level) String() string {
	str := func(base string, val Level) string {
		if val == 0 {
			return base
		}
		return fmt.Sprintf("%s%+d", base, int(val))
	}
	switch {
	case l < LevelDebug:
		return str("trace", l-LevelTrace)
	case l < LevelInfo:
		return str("debug", l-LevelDebug)
	case l < LevelNotice:
		return str("info", l-LevelInfo)
	case l < LevelWarn:
		return str("notice", l-LevelNotice)
	case l < LevelError:
		return str("warn", l-LevelWarn)
	case l < LevelCritical:
		return str("error", l-LevelError)
	case l < LevelFatal:
		return str("critical", l-LevelCritical)
	default:
		return str("fatal", l-LevelFatal)
	}
}

// ParseLevel converts a level name to a Level. It accepts the canonical
// names produced by String plus the long aliases "information" and
// "warning". Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "information":
		return LevelInfo, nil
	case "notice":
		return LevelNotice, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "critical":
		return LevelCritical, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("xstream: unknown level %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
