package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		logDebug  bool
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "Text Logger Info Level",
			config: Config{
				Level:  "info",
				Format: "text",
				Output: "stdout",
			},
			checkFunc: func(t *testing.T, output string) {
				if !bytes.Contains([]byte(output), []byte("level=INFO")) ||
					!bytes.Contains([]byte(output), []byte("msg=\"test message\"")) {
					t.Errorf("Expected text log output with info level and message, got: %s", output)
				}
			},
		},
		{
			name: "JSON Logger Debug Level",
			config: Config{
				Level:  "debug",
				Format: "json",
				Output: "stdout",
			},
			logDebug: true,
			checkFunc: func(t *testing.T, output string) {
				var logEntry map[string]interface{}
				err := json.Unmarshal([]byte(output), &logEntry)
				if err != nil {
					t.Fatalf("Failed to unmarshal JSON log: %v, output: %s", err, output)
				}
				if logEntry["level"] != "DEBUG" || logEntry["msg"] != "test message" {
					t.Errorf("Expected JSON log output with debug level and message, got: %v", logEntry)
				}
			},
		},
		{
			name: "Debug suppressed at warn level",
			config: Config{
				Level:  "warn",
				Format: "text",
			},
			logDebug: true,
			checkFunc: func(t *testing.T, output string) {
				if output != "" {
					t.Errorf("Expected no output below warn level, got: %s", output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.config, &buf)

			if tt.logDebug {
				logger.Debug("test message")
			} else {
				logger.Info("test message")
			}

			tt.checkFunc(t, buf.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLogger_NilOutputOpensNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	logger := NewLogger(Config{Level: "info", Format: "text", Output: "file"}, nil)
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if _, err := os.Stat(DefaultLogFile); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected no %s to be created, stat error: %v", DefaultLogFile, err)
	}
}

func TestOpenOutput_FileIsClosedByCleanup(t *testing.T) {
	t.Chdir(t.TempDir())

	output, cleanup := OpenOutput(Config{Output: "file"})
	file, ok := output.(*os.File)
	if !ok {
		t.Fatalf("Expected *os.File output, got %T", output)
	}
	NewLogger(Config{Level: "info"}, output).Info("written to file")
	cleanup()

	if _, err := file.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Expected write after cleanup to fail with os.ErrClosed, got %v", err)
	}
	data, err := os.ReadFile(DefaultLogFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !bytes.Contains(data, []byte("written to file")) {
		t.Errorf("Expected log line in file, got: %s", data)
	}
}
