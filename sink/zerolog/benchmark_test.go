package zerolog

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xstream"
)

func BenchmarkZerologSink_Emit(b *testing.B) {
	s := New(zerolog.New(io.Discard))
	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Emit(xstream.LevelInfo, "bench", at)
	}
}

func BenchmarkZerologSink_EmitFiltered(b *testing.B) {
	// GetLevel() pre-check short-circuits before any Event allocation.
	s := New(zerolog.New(io.Discard).Level(zerolog.ErrorLevel))
	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Emit(xstream.LevelInfo, "bench", at)
	}
}

func BenchmarkZerologSink_StreamWriteLine(b *testing.B) {
	s, err := xstream.NewBuilder().
		WithSink(New(zerolog.New(io.Discard))).
		Build()
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.WriteString("the quick brown fox jumps over the lazy dog\n")
	}
}
