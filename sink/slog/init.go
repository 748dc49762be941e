package slog

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/trickstertwo/xstream"
)

// Register this sink as the default for xstream.Default().
// Output format can be controlled with XSTREAM_FORMAT=JSON|TEXT
// (case-insensitive, default text); XSTREAM_MIN_LEVEL sets the handler
// filter (trace|debug|info|notice|warn|error|critical|fatal).
func init() {
	xstream.RegisterDefaultSinkFactory(newDefaultSink)
}

func newDefaultSink(w io.Writer) xstream.Sink {
	if w == nil {
		w = os.Stdout
	}

	var lv slog.LevelVar
	if s := os.Getenv("XSTREAM_MIN_LEVEL"); s != "" {
		if l, err := xstream.ParseLevel(s); err == nil {
			lv.Set(toSlog(l))
		}
	}
	opts := &slog.HandlerOptions{Level: &lv}

	var h slog.Handler
	switch strings.ToLower(os.Getenv("XSTREAM_FORMAT")) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return NewWithLevelVar(slog.New(h), &lv)
}
