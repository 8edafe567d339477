package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		enabled   zapcore.Level
		disabled  zapcore.Level
		checkDrop bool
	}{
		{"default", DefaultConfig(), zapcore.InfoLevel, zapcore.DebugLevel, true},
		{"development", DevelopmentConfig(), zapcore.DebugLevel, zapcore.DebugLevel, false},
		{"warn json", LoggerConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel, zapcore.InfoLevel, true},
		{"bad level falls back to info", LoggerConfig{Level: "loud"}, zapcore.InfoLevel, zapcore.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewZapLogger(tt.cfg)
			if err != nil {
				t.Fatalf("NewZapLogger: %v", err)
			}
			if !l.Core().Enabled(tt.enabled) {
				t.Errorf("level %v should be enabled", tt.enabled)
			}
			if tt.checkDrop && l.Core().Enabled(tt.disabled) {
				t.Errorf("level %v should be disabled", tt.disabled)
			}
		})
	}
}

func TestNewZapLogger_Sampling(t *testing.T) {
	cfg := LoggerConfig{Level: "info", Format: "json", EnableSampling: true, SampleInitial: 10, SampleThereafter: 100}
	if _, err := NewZapLogger(cfg); err != nil {
		t.Fatalf("NewZapLogger with sampling: %v", err)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}

	core, recorded := observer.New(zapcore.InfoLevel)
	l := zap.New(core)
	OrNop(l).Info("kept", zap.String("component", "test"))

	logs := recorded.All()
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].ContextMap()["component"] != "test" {
		t.Errorf("component field = %v, want test", logs[0].ContextMap()["component"])
	}
}
