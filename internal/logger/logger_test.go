package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr string
	}{
		{
			name: "valid text config",
			conf: Config{Level: LevelInfo, Format: FormatText},
		},
		{
			name: "valid json config",
			conf: Config{Level: LevelDebug, Format: FormatJSON},
		},
		{
			name:    "unknown level",
			conf:    Config{Level: "verbose", Format: FormatText},
			wantErr: "supported values are: debug, error, info, warn",
		},
		{
			name:    "unknown format",
			conf:    Config{Level: LevelWarn, Format: "yaml"},
			wantErr: "unsupported log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, Config{Level: LevelInfo, Format: FormatJSON})

	l.Debug("hidden")
	l.With("component", "shell").Info("expenses loaded", "count", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Failed to decode log line: %v", err)
	}

	if entry["msg"] != "expenses loaded" {
		t.Errorf("msg = %v, want expenses loaded", entry["msg"])
	}
	if entry["component"] != "shell" {
		t.Errorf("component = %v, want shell", entry["component"])
	}
	if entry["count"] != float64(2) {
		t.Errorf("count = %v, want 2", entry["count"])
	}
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expensetracker.log")

	l := New(Config{Level: LevelWarn, Format: FormatText, Output: path})
	l.Info("ignored")
	l.Warn("budget exceeded")

	if err := l.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if strings.Contains(string(content), "ignored") {
		t.Errorf("Expected info message to be filtered, got %q", content)
	}
	if !strings.Contains(string(content), "budget exceeded") {
		t.Errorf("Expected warn message in log file, got %q", content)
	}
}

func TestNewDiscard(t *testing.T) {
	l := New(Config{Output: "discard"})
	l.Error("nothing to see")

	if err := l.Close(); err != nil {
		t.Errorf("Close() on discard logger returned %v", err)
	}
}
