package xstream

import "errors"

// ErrNoSink is returned by Build when no sink has been configured.
var ErrNoSink = errors.New("xstream: no sink configured")

// Config for constructing a Stream (Factory data structure).
type Config struct {
	Sink     Sink
	Level    Level // initial severity; the zero value is LevelInfo
	Capacity int   // initial buffer capacity; 0 means DefaultBufferCapacity, negative disables preallocation
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{Level: LevelInfo}}
}

func (b *Builder) WithSink(s Sink) *Builder {
	b.cfg.Sink = s
	return b
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

func (b *Builder) WithCapacity(n int) *Builder {
	b.cfg.Capacity = n
	return b
}

// Build constructs the Stream (Factory + Builder). The sink is required;
// everything else has defaults. The configured Level is the stream's
// initial severity, not a filter — filtering is the sink's concern.
func (b *Builder) Build() (*Stream, error) {
	if b.cfg.Sink == nil {
		return nil, ErrNoSink
	}
	capacity := b.cfg.Capacity
	if capacity == 0 {
		capacity = DefaultBufferCapacity
	}
	return NewSize(b.cfg.Sink, b.cfg.Level, capacity), nil
}
