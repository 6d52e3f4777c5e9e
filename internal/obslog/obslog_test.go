package obslog

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/duel-check/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{" warning ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.Debug("hidden")
	logger.Info("board_evaluated", zap.String("outcome", "E"))
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1:\n%s", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "board_evaluated" || entry["outcome"] != "E" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "warn", Format: "console"}, &buf)

	logger.Info("hidden")
	logger.Warn("board_failed", zap.String("path", "a.txt"))
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "board_failed") || !strings.Contains(out, "a.txt") {
		t.Errorf("console output = %q", out)
	}
}

func TestInitReplacesGlobal(t *testing.T) {
	before := L()

	var buf bytes.Buffer
	logger, restore := Init(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	if L() != logger {
		t.Fatal("L() did not return the initialised logger")
	}
	L().Debug("visible")
	Sync()
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("global logger output = %q", buf.String())
	}

	restore()
	if L() != before {
		t.Error("restore did not reinstate the previous logger")
	}
}

// TestInitConcurrent swaps and reads the global from many goroutines; run
// with -race.
func TestInitConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, restore := Init(config.LogConfig{Level: "error"}, io.Discard)
			L().Info("dropped")
			Sync()
			restore()
		}()
	}
	wg.Wait()
}
