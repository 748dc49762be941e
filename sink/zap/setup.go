package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xstream"
)

// Config is an explicit, code-first configuration for zap + xstream.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer             // default: os.Stdout
	Level              xstream.Level         // initial stream severity; zero is LevelInfo
	MinLevel           xstream.Level         // backend filter; lines below it are dropped by zap
	Capacity           int                   // line buffer capacity; 0 means xstream.DefaultBufferCapacity
	Console            bool                  // pretty console-like output via zapcore.NewConsoleEncoder
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts" (aligns with xstream's authoritative timestamp)
}

// Use builds a zap-backed Stream from Config and returns it. The zap logger
// carries an AtomicLevel so the sink's SetMinLevel stays dynamic.
func Use(cfg Config) *xstream.Stream {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}

	// Encoder config defaults: do not let zap inject its own time (xstream provides "ts")
	encCfg := cfg.EncoderConfig
	if encCfg.TimeKey == "" && encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "", // xstream injects "ts"
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder, // used if you yourself add zap.Time fields
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	} else {
		// Ensure zap itself doesn't add an extra time field
		encCfg.TimeKey = ""
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// Use AtomicLevel so Sink.SetMinLevel can adjust dynamically.
	al := zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)

	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1)) // stacktraces effectively off

	sink := NewWithTimestampKey(zl, &al, cfg.TimestampFieldName)
	sink.SetMinLevel(cfg.MinLevel)

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
