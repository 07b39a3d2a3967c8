package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "mixed case and spaces", input: "  WARN ", want: slog.LevelWarn},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "unknown defaults to info", input: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Level:   INFO,
		Format:  JSON,
		Output:  &buf,
		Service: "patient-cleaner",
	})

	log.Info("records cleaned", "accepted", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry[SERVICE] != "patient-cleaner" {
		t.Errorf("expected service attribute, got %v", entry[SERVICE])
	}
	if entry["msg"] != "records cleaned" {
		t.Errorf("unexpected msg %v", entry["msg"])
	}
	if entry["accepted"] != float64(3) {
		t.Errorf("expected accepted=3, got %v", entry["accepted"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: ERROR, Format: TEXT, Output: &buf})

	log.Info("hidden")
	log.Warn("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below error level, got %q", buf.String())
	}

	log.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected error line, got %q", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: TEXT, Output: &buf}).With("run_id", "abc")

	log.Info("hello")
	if !strings.Contains(buf.String(), "run_id=abc") {
		t.Errorf("expected run_id attribute, got %q", buf.String())
	}
}
