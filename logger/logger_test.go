package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNopBeforeInitialize(t *testing.T) {
	// Must be safe to log before Initialize is called.
	Infow("early message", "key", "value")
	Debugw("early debug")
	Errorw("early error")
}

func TestInitialize(t *testing.T) {
	if err := Initialize(false, VerbosityInfo); err != nil {
		t.Fatalf("Initialize(console) failed: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Initialize")
	}
	if JSONOutput {
		t.Error("JSONOutput should be false in console mode")
	}

	if err := Initialize(true, VerbosityDebug); err != nil {
		t.Fatalf("Initialize(json) failed: %v", err)
	}
	if !JSONOutput {
		t.Error("JSONOutput should be true in JSON mode")
	}
}

func TestVerbosityToLevel(t *testing.T) {
	cases := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
	}
	for _, c := range cases {
		if got := VerbosityToLevel(c.verbosity); got != c.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", c.verbosity, got, c.want)
		}
	}
}
