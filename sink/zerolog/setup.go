package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xstream"
)

// Config is an explicit, code-first configuration for zerolog + xstream.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer     // default: os.Stdout
	Level              xstream.Level // initial stream severity; zero is LevelInfo
	MinLevel           xstream.Level // backend filter; lines below it are dropped by zerolog
	Capacity           int           // line buffer capacity; 0 means xstream.DefaultBufferCapacity
	Console            bool          // pretty console output instead of JSON
	ConsoleTimeFormat  string        // only used if Console==true; default time.RFC3339Nano
	TimestampFieldName string        // default "ts" (aligns with xstream's authoritative timestamp)
}

// Use builds a zerolog-backed Stream from Config and returns it.
func Use(cfg Config) *xstream.Stream {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}

	var zl zerolog.Logger
	if cfg.Console {
		// Align console's leading timestamp column with our authoritative ts key.
		zerolog.TimestampFieldName = cfg.TimestampFieldName
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	sink := New(zl.Level(mapLevel(cfg.MinLevel)))

	s, err := xstream.NewBuilder().
		WithSink(sink).
		WithLevel(cfg.Level).
		WithCapacity(cfg.Capacity).
		Build()
	if err != nil {
		// Build only fails with a nil sink, which cannot happen here.
		// Keep panic to surface programming errors early.
		panic(err)
	}
	return s
}
