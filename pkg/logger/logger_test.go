package logger

import (
	"os"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level      string
		debugOn    bool
		infoOn     bool
		shouldFail bool
	}{
		{"none", false, false, false},
		{"", false, false, false},
		{"normal", false, true, false},
		{"debug", true, true, false},
		{"loud", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(tt.level)
			if tt.shouldFail {
				if err == nil {
					t.Fatal("expected error for unknown level")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := log.Core().Enabled(zapcore.DebugLevel); got != tt.debugOn {
				t.Errorf("debug enabled = %v, want %v", got, tt.debugOn)
			}
			if got := log.Core().Enabled(zapcore.InfoLevel); got != tt.infoOn {
				t.Errorf("info enabled = %v, want %v", got, tt.infoOn)
			}
		})
	}
}

func TestEnableColorOutput_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if EnableColorOutput(os.Stdout) {
		t.Error("NO_COLOR must disable colors")
	}
}
