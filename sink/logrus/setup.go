package logrus

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/trickstertwo/xstream"
)

// Config is an explicit, code-first configuration for logrus + xstream.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer    io.Writer        // default: os.Stdout
	Level     xstream.Level    // initial stream severity; zero is LevelInfo
	MinLevel  xstream.Level    // backend filter; lines below it are dropped by logrus
	Capacity  int              // line buffer capacity; 0 means xstream.DefaultBufferCapacity
	JSON      bool             // logrus.JSONFormatter instead of the text default
	Formatter logrus.Formatter // optional; overrides JSON when set
}

// Use builds a logrus-backed Stream from Config and returns it. The logrus
// logger is private to the sink, so callers can't race its configuration.
func Use(cfg Config) *xstream.Stream {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(mapLevel(cfg.MinLevel))
	switch {
	case cfg.Formatter != nil:
		logger.SetFormatter(cfg.Formatter)
	case cfg.JSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	s, err := xstream.NewBuilder().
		WithSink(New(logger)).
		WithLevel(cfg.Level).
		WithCapacity(cfg.Capacity).
		Build()
	if err != nil {
		// Build only fails with a nil sink, which cannot happen here.
		panic(err)
	}
	return s
}
