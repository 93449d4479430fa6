package zaplog

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	logger.Errorf("error %d", 1)
	logger.Warnf("warn %d", 2)
	logger.Infof("info %d", 3)
	logger.Debugf("debug %d", 4)

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	expected := []struct {
		level   zapcore.Level
		message string
	}{
		{zapcore.ErrorLevel, "error 1"},
		{zapcore.WarnLevel, "warn 2"},
		{zapcore.InfoLevel, "info 3"},
		{zapcore.DebugLevel, "debug 4"},
	}

	for i, want := range expected {
		if entries[i].Level != want.level {
			t.Errorf("entry %d: expected level %v, got %v", i, want.level, entries[i].Level)
		}

		if entries[i].Message != want.message {
			t.Errorf("entry %d: expected message %q, got %q", i, want.message, entries[i].Message)
		}
	}
}
