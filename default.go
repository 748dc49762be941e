package xstream

import (
	"io"
	"os"
)

// defaultSinkFactory is set by a sink package (e.g., sink/slog) in its
// init() to avoid import cycles. Default() uses this to build a stream.
var defaultSinkFactory func(w io.Writer) Sink

// RegisterDefaultSinkFactory registers the constructor used by
// xstream.Default(). Sink packages should call this from init() to avoid
// import cycles. Example (in sink/slog):
//
//	func init() {
//	  xstream.RegisterDefaultSinkFactory(func(w io.Writer) xstream.Sink {
//	    return slogsink.New(sloglib.New(sloglib.NewTextHandler(w, nil)))
//	  })
//	}
func RegisterDefaultSinkFactory(f func(io.Writer) Sink) {
	defaultSinkFactory = f
}

// Default creates a Stream using the registered default sink factory,
// writing to os.Stdout at LevelInfo. Side-import a sink package (e.g.
// github.com/trickstertwo/xstream/sink/slog) to auto-register one.
// Panics if no factory is registered.
func Default() *Stream {
	if defaultSinkFactory == nil {
		panic("xstream: no default sink registered. Import sink/slog or call xstream.RegisterDefaultSinkFactory")
	}
	return New(defaultSinkFactory(os.Stdout))
}
