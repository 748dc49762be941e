package xstream

// Stream is the severity façade over a Writer (Facade pattern).
// The level methods switch the current severity and return the stream, so
// it drops into any io.Writer-shaped API:
//
//	s := xstream.New(sink)
//	fmt.Fprintf(s.Error(), "open %s: %v\n", path, err)
//	s.Warnln("disk nearly full")
//
// The *ln forms write the message plus a line feed, so the line is emitted
// immediately. Everything else is pure delegation to the embedded Writer;
// Stream holds no state of its own.
type Stream struct {
	*Writer
}

// New returns a Stream bound to sink, emitting at LevelInfo, with the
// default buffer preallocation.
func New(sink Sink) *Stream {
	return NewSize(sink, LevelInfo, DefaultBufferCapacity)
}

// NewSize is New with an explicit level and initial buffer capacity.
// capacity <= 0 skips preallocation.
func NewSize(sink Sink, level Level, capacity int) *Stream {
	return &Stream{Writer: NewWriterSize(sink, level, capacity)}
}

// Severity entry points. Each sets the level for subsequent writes and
// returns the stream for chaining.

func (s *Stream) Trace() *Stream    { s.SetLevel(LevelTrace); return s }
func (s *Stream) Debug() *Stream    { s.SetLevel(LevelDebug); return s }
func (s *Stream) Info() *Stream     { s.SetLevel(LevelInfo); return s }
func (s *Stream) Notice() *Stream   { s.SetLevel(LevelNotice); return s }
func (s *Stream) Warn() *Stream     { s.SetLevel(LevelWarn); return s }
func (s *Stream) Error() *Stream    { s.SetLevel(LevelError); return s }
func (s *Stream) Critical() *Stream { s.SetLevel(LevelCritical); return s }
func (s *Stream) Fatal() *Stream    { s.SetLevel(LevelFatal); return s }

// One-line forms: set the level, write msg and terminate it, emitting
// exactly one line when msg itself contains no terminators.

func (s *Stream) Traceln(msg string) *Stream    { return s.Trace().line(msg) }
func (s *Stream) Debugln(msg string) *Stream    { return s.Debug().line(msg) }
func (s *Stream) Infoln(msg string) *Stream     { return s.Info().line(msg) }
func (s *Stream) Noticeln(msg string) *Stream   { return s.Notice().line(msg) }
func (s *Stream) Warnln(msg string) *Stream     { return s.Warn().line(msg) }
func (s *Stream) Errorln(msg string) *Stream    { return s.Error().line(msg) }
func (s *Stream) Criticalln(msg string) *Stream { return s.Critical().line(msg) }
func (s *Stream) Fatalln(msg string) *Stream    { return s.Fatal().line(msg) }

func (s *Stream) line(msg string) *Stream {
	_, _ = s.WriteString(msg)
	_ = s.WriteByte('\n')
	return s
}
