package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xstream"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xstream.
// One call to Use wires a slog-backed Stream.
type Config struct {
	Writer             io.Writer            // default: os.Stdout
	Level              xstream.Level        // initial stream severity; zero is LevelInfo
	MinLevel           xstream.Level        // handler filter, managed via slog.LevelVar
	Capacity           int                  // line buffer capacity; 0 means xstream.DefaultBufferCapacity
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed by Use via LevelVar
	TimestampFieldName string               // default "ts" (aligns with xstream's authoritative timestamp)
}

// Use builds a slog-backed Stream from Config and returns it.
func Use(cfg Config) *xstream.Stream {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}
	opts := cfg.HandlerOptions
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	// Use a LevelVar to allow dynamic SetMinLevel on the sink.
	var lv slog.LevelVar
	lv.Set(toSlog(cfg.MinLevel))
	opts.Level = &lv

	var h slog.Handler
	if cfg.Format == 0 || cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	sink := NewWithTimestampKey(slog.New(h), &lv, cfg.TimestampFieldName)

	s, err := xstream.NewBuilder().
		WithSink(sink).
		WithLevel(cfg.Level).
		WithCapacity(cfg.Capacity).
		Build()
	if err != nil {
		// Build only fails with a nil sink, which cannot happen here.
		panic(err)
	}
	return s
}

// NewJSONStream builds a Stream wired to a slog JSON handler.
func NewJSONStream(w io.Writer, minLevel xstream.Level, opts *slog.HandlerOptions) (*xstream.Stream, error) {
	if w == nil {
		w = os.Stdout
	}
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	opts.Level = toSlog(minLevel)
	sink := New(slog.New(slog.NewJSONHandler(w, opts)))
	return xstream.NewBuilder().WithSink(sink).Build()
}

// NewTextStream builds a Stream wired to a slog text handler.
func NewTextStream(w io.Writer, minLevel xstream.Level, opts *slog.HandlerOptions) (*xstream.Stream, error) {
	if w == nil {
		w = os.Stdout
	}
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	opts.Level = toSlog(minLevel)
	sink := New(slog.New(slog.NewTextHandler(w, opts)))
	return xstream.NewBuilder().WithSink(sink).Build()
}
