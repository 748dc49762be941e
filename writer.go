package xstream

import (
	"io"

	"github.com/trickstertwo/xclock"
)

// DefaultBufferCapacity is the line buffer preallocation used by NewWriter
// and by Builder when no capacity is configured.
const DefaultBufferCapacity = 255

// Writer accumulates written bytes into an in-memory line buffer and, on
// each line terminator ('\r' or '\n'), emits the buffered text to its Sink
// at the current level, then resets the buffer. The buffer never contains
// a terminator. A terminator arriving on an empty buffer emits nothing, so
// "\r\n" produces exactly one emission, never a trailing blank line.
//
// Writes are defined for all byte values and never fail; the error results
// exist only to satisfy the io interfaces. Writer performs no I/O of its
// own and takes the single authoritative timestamp per line from xclock.
//
// Writer is not safe for concurrent use. It is a thin per-use buffering
// object owned by one goroutine at a time; callers that share one must
// serialize access externally. The sink must outlive the writer.
type Writer struct {
	sink  Sink
	level Level
	buf   []byte
}

var (
	_ io.Writer       = (*Writer)(nil)
	_ io.ByteWriter   = (*Writer)(nil)
	_ io.StringWriter = (*Writer)(nil)
	_ io.WriteCloser  = (*Writer)(nil)
)

// NewWriter returns a Writer bound to sink that emits at level, with the
// default buffer preallocation.
func NewWriter(sink Sink, level Level) *Writer {
	return NewWriterSize(sink, level, DefaultBufferCapacity)
}

// NewWriterSize is NewWriter with an explicit initial buffer capacity.
// capacity <= 0 skips preallocation. A nil sink is replaced by NopSink so
// writes remain infallible.
func NewWriterSize(sink Sink, level Level, capacity int) *Writer {
	if sink == nil {
		sink = NopSink{}
	}
	w := &Writer{sink: sink, level: level}
	if capacity > 0 {
		w.buf = make([]byte, 0, capacity)
	}
	return w
}

// WriteByte appends c to the buffer, or emits the buffered line when c is
// a terminator. The returned error is always nil.
func (w *Writer) WriteByte(c byte) error {
	if c == '\n' || c == '\r' {
		w.emit()
		return nil
	}
	w.buf = append(w.buf, c)
	return nil
}

// Write processes p byte by byte with WriteByte semantics: every terminator
// inside p ends a line. It always returns (len(p), nil).
func (w *Writer) Write(p []byte) (int, error) {
	start := 0
	for i := 0; i < len(p); i++ {
		if c := p[i]; c == '\n' || c == '\r' {
			w.buf = append(w.buf, p[start:i]...)
			w.emit()
			start = i + 1
		}
	}
	w.buf = append(w.buf, p[start:]...)
	return len(p), nil
}

// WriteString is Write for a string, without the []byte conversion.
func (w *Writer) WriteString(s string) (int, error) {
	start := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '\n' || c == '\r' {
			w.buf = append(w.buf, s[start:i]...)
			w.emit()
			start = i + 1
		}
	}
	w.buf = append(w.buf, s[start:]...)
	return len(s), nil
}

// SetLevel replaces the level used for subsequent emissions. Lines already
// emitted are unaffected; buffered text takes the level in effect when its
// terminator arrives.
func (w *Writer) SetLevel(l Level) { w.level = l }

// Level returns the current emission level.
func (w *Writer) Level() Level { return w.level }

// Sink returns the sink this writer emits to.
func (w *Writer) Sink() Sink { return w.sink }

// Buffered returns the number of bytes accumulated since the last emission.
func (w *Writer) Buffered() int { return len(w.buf) }

// Capacity returns the current buffer capacity.
func (w *Writer) Capacity() int { return cap(w.buf) }

// Reserve grows the buffer capacity to at least n bytes. It is purely a
// performance hint; emitted output never changes.
func (w *Writer) Reserve(n int) {
	if n <= cap(w.buf) {
		return
	}
	newCap := cap(w.buf) * 2
	if newCap < n {
		newCap = n
	}
	nb := make([]byte, len(w.buf), newCap)
	copy(nb, w.buf)
	w.buf = nb
}

// Flush emits any buffered partial line at the current level and clears the
// buffer. A flush with an empty buffer emits nothing. The returned error is
// always nil.
func (w *Writer) Flush() error {
	w.emit()
	return nil
}

// Close flushes the buffer so no trailing partial line is lost. It is
// idempotent and the writer remains usable afterwards; Close exists so a
// Writer can stand in wherever an io.WriteCloser is expected.
func (w *Writer) Close() error {
	return w.Flush()
}

// emit hands the buffered line to the sink with one authoritative timestamp
// from xclock. The buffer is reset before the sink runs, so a sink that
// writes back into this writer starts a fresh line.
func (w *Writer) emit() {
	if len(w.buf) == 0 {
		return
	}
	line := string(w.buf)
	w.buf = w.buf[:0]
	w.sink.Emit(w.level, line, xclock.Now())
}
