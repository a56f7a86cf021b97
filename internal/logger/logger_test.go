package logger

import (
	"context"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"unknown level falls back to info", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if log := New(tt.level); log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info")

	// Stage-style messages must not panic at any level.
	log.Debug(ctx, "Slide %d: no keywords, skipping visual", 3)
	log.Info(ctx, "Extracted %d sections from %d pages", 7, 12)
	log.Warn(ctx, "Slide %d: narration failed, using caption frame", 2)
	log.Error(ctx, "Conversion failed: %v", context.Canceled)
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug suppressed at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"warn suppressed at error level", "error", "warn", false},
		{"error always logs", "debug", "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			if got := log.shouldLog(tt.logLevel); got != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", got, tt.shouldLog)
			}
		})
	}
}
