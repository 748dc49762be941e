package zap

import (
	"io"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xstream"
)

func newBenchZap(min zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "", // disable zap own ts
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), min)
	return zap.New(core)
}

func BenchmarkZapSink_Emit(b *testing.B) {
	s := New(newBenchZap(zapcore.InfoLevel))
	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Emit(xstream.LevelInfo, "bench", at)
	}
}

func BenchmarkZapSink_EmitFiltered(b *testing.B) {
	// Check() short-circuits below the backend filter.
	s := New(newBenchZap(zapcore.ErrorLevel))
	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Emit(xstream.LevelInfo, "bench", at)
	}
}

func BenchmarkZapSink_StreamWriteLine(b *testing.B) {
	s, err := xstream.NewBuilder().
		WithSink(New(newBenchZap(zapcore.InfoLevel))).
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
