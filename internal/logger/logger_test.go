package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONLoggerCarriesServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "card-tracker", "debug", "json")
	l.Debug("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "card-tracker" {
		t.Errorf("expected service field, got %v", entry["service"])
	}
	if entry["msg"] != "hello" {
		t.Errorf("expected msg hello, got %v", entry["msg"])
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "svc", "shouting", "text")
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug should be filtered at info level, got %q", buf.String())
	}
	l.Info("shown")
	if buf.Len() == 0 {
		t.Error("info should be written")
	}
}
