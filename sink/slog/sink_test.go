package slog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/xstream"
)

func TestSlogSink_JSONHandler_EmitsTSAndLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	s := New(slog.New(h))

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	s.Emit(xstream.LevelInfo, "state changed", at)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}

	// Verify sink-provided timestamp "ts" equals our 'at'
	gotTS, _ := m["ts"].(string)
	wantTS := at.Format(time.RFC3339Nano)
	if gotTS != wantTS {
		t.Fatalf("ts mismatch: got %q want %q", gotTS, wantTS)
	}
	if m["msg"] != "state changed" {
		t.Fatalf("msg mismatch: got %v", m["msg"])
	}
	if m["level"] != "INFO" {
		t.Fatalf("level mismatch: got %v", m["level"])
	}
}

func TestSlogSink_NumericLevelPassThrough(t *testing.T) {
	t.Parallel()

	// xstream shares slog's numeric scale; no mapping table exists to drift.
	for _, l := range []xstream.Level{
		xstream.LevelTrace, xstream.LevelDebug, xstream.LevelInfo,
		xstream.LevelNotice, xstream.LevelWarn, xstream.LevelError,
		xstream.LevelCritical, xstream.LevelFatal,
	} {
		if got := toSlog(l); int(got) != int(l) {
			t.Fatalf("toSlog(%v): got %d want %d", l, got, int(l))
		}
	}
}

func TestSlogSink_SetMinLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var lv slog.LevelVar
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: &lv})
	s := NewWithLevelVar(slog.New(h), &lv)

	at := time.Unix(0, 0).UTC()
	s.SetMinLevel(xstream.LevelError)
	s.Emit(xstream.LevelWarn, "dropped", at)
	if buf.Len() != 0 {
		t.Fatalf("expected warn to be filtered, got %s", buf.String())
	}

	s.Emit(xstream.LevelFatal, "kept", at)
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected fatal to pass filter, got %s", buf.String())
	}
}

func TestUse_EndToEnd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := Use(Config{
		Writer:   &buf,
		MinLevel: xstream.LevelDebug,
	})

	fmt.Fprintf(s.Error(), "open %s: %s\n", "/etc/conf", "permission denied")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; out=%s", err, buf.String())
	}
	if m["msg"] != "open /etc/conf: permission denied" {
		t.Fatalf("msg mismatch: %v", m["msg"])
	}
	if m["level"] != "ERROR" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if _, ok := m["ts"].(string); !ok {
		t.Fatalf("missing ts: %v", m)
	}
}

func TestNewTextStream(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := NewTextStream(&buf, xstream.LevelInfo, nil)
	if err != nil {
		t.Fatalf("NewTextStream: %v", err)
	}

	s.Infoln("hello text")
	if !strings.Contains(buf.String(), "msg=\"hello text\"") {
		t.Fatalf("text output mismatch: %q", buf.String())
	}
}

func TestNewJSONStream(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := NewJSONStream(&buf, xstream.LevelInfo, nil)
	if err != nil {
		t.Fatalf("NewJSONStream: %v", err)
	}

	s.Infoln("hello json")
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; out=%s", err, buf.String())
	}
	if m["msg"] != "hello json" {
		t.Fatalf("msg mismatch: %v", m["msg"])
	}
}

func TestDefaultRegistration(t *testing.T) {
	// Importing this package must register the default sink factory.
	s := xstream.Default()
	if s == nil {
		t.Fatal("xstream.Default returned nil")
	}
	if got := s.Level(); got != xstream.LevelInfo {
		t.Fatalf("default stream level: got %v want %v", got, xstream.LevelInfo)
	}
}

func TestDefaultSinkHonorsEnv(t *testing.T) {
	// t.Setenv forbids parallel subtests; exercise the factory directly.
	t.Setenv("XSTREAM_FORMAT", "json")
	t.Setenv("XSTREAM_MIN_LEVEL", "warning")

	var buf bytes.Buffer
	sink := newDefaultSink(&buf)

	at := time.Unix(0, 0).UTC()
	sink.Emit(xstream.LevelInfo, "dropped", at)
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered by XSTREAM_MIN_LEVEL, got %s", buf.String())
	}

	sink.Emit(xstream.LevelError, "kept", at)
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected JSON output per XSTREAM_FORMAT: %v; out=%s", err, buf.String())
	}
	if m["msg"] != "kept" {
		t.Fatalf("msg mismatch: %v", m["msg"])
	}
}
