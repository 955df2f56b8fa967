package logging

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// captureLogs swaps in an observer core for the duration of a test.
func captureLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	old := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = old })
	return logs
}

func TestLogStep(t *testing.T) {
	logs := captureLogs(t)

	LogStep("build-binding", "start", zap.String("dir", "/tmp/src"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["step"] != "build-binding" {
		t.Errorf("step field = %v, want build-binding", fields["step"])
	}
	if fields["event"] != "start" {
		t.Errorf("event field = %v, want start", fields["event"])
	}
	if fields["dir"] != "/tmp/src" {
		t.Errorf("dir field = %v, want /tmp/src", fields["dir"])
	}
}

func TestLogCommand(t *testing.T) {
	logs := captureLogs(t)

	LogCommand([]string{"apt-get", "update"}, 2, 3*time.Second)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["exit_code"] != int64(2) {
		t.Errorf("exit_code field = %v, want 2", fields["exit_code"])
	}
	if fields["duration"] != 3*time.Second {
		t.Errorf("duration field = %v, want 3s", fields["duration"])
	}
}

func TestLogConfigLoad(t *testing.T) {
	logs := captureLogs(t)

	LogConfigLoad("panel.env", 2, nil)
	LogConfigLoad("broken.env", 0, errors.New("parse error"))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Errorf("clean load level = %v, want info", entries[0].Level)
	}
	if entries[0].ContextMap()["unknown_keys"] != int64(2) {
		t.Errorf("unknown_keys field = %v, want 2", entries[0].ContextMap()["unknown_keys"])
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("failed load level = %v, want error", entries[1].Level)
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitializeLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled zapcore.Level
		silent  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if err := Initialize(tt.level); err != nil {
				t.Fatalf("Initialize(%q) error = %v", tt.level, err)
			}
			core := GetLogger().Core()
			if !core.Enabled(tt.enabled) {
				t.Errorf("level %q should enable %v", tt.level, tt.enabled)
			}
			if core.Enabled(tt.silent) {
				t.Errorf("level %q should not enable %v", tt.level, tt.silent)
			}
		})
	}
}
