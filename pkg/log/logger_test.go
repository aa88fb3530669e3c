package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	tests := []struct {
		level   Level
		visible []string
		hidden  []string
	}{
		{Notice, []string{"notice-msg", "warning-msg"}, []string{"info-msg", "debug-msg"}},
		{Info, []string{"info-msg", "notice-msg"}, []string{"debug-msg"}},
		{Debug, []string{"debug-msg", "info-msg"}, nil},
		{Error, []string{"error-msg"}, []string{"warning-msg", "notice-msg"}},
	}

	for _, tt := range tests {
		buf.Reset()
		SetLevel(tt.level)

		logger.Debug("debug-msg")
		logger.Info("info-msg")
		logger.Notice("notice-msg")
		logger.Warning("warning-msg")
		logger.Error("error-msg")

		out := buf.String()
		for _, msg := range tt.visible {
			if !strings.Contains(out, msg) {
				t.Errorf("level %d: expected %q in output", tt.level, msg)
			}
		}
		for _, msg := range tt.hidden {
			if strings.Contains(out, msg) {
				t.Errorf("level %d: did not expect %q in output", tt.level, msg)
			}
		}
	}
}

func TestFormatIncludesModule(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("renderer").Noticef("rendered %d tiles", 12)

	out := buf.String()
	if !strings.Contains(out, "[renderer]") || !strings.Contains(out, "rendered 12 tiles") {
		t.Errorf("unexpected log line %q", out)
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLevel(Debug)
	defer SetLevel(Notice)
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("test").Debug("still-visible")
	if !strings.Contains(buf.String(), "still-visible") {
		t.Error("expected debug output to survive a sink change")
	}
}

func TestVerbosity(t *testing.T) {
	tests := []struct {
		count    int
		expected Level
	}{
		{0, Notice},
		{1, Info},
		{2, Debug},
		{5, Debug},
	}
	for _, tt := range tests {
		if got := Verbosity(tt.count); got != tt.expected {
			t.Errorf("Verbosity(%d) = %d, want %d", tt.count, got, tt.expected)
		}
	}
}
