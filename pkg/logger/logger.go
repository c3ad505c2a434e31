package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// New returns the diagnostic logger for the given level: "none", "normal" or "debug".
// Info and debug go to stdout, errors to stderr.
func New(level string) (*zap.Logger, error) {
	var minLevel zapcore.Level
	switch level {
	case "", "none":
		return zap.NewNop(), nil
	case "normal":
		minLevel = zapcore.InfoLevel
	case "debug":
		minLevel = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return minLevel <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder(os.Stdout), zapcore.Lock(os.Stdout), lowPriority),
		zapcore.NewCore(consoleEncoder(os.Stderr), zapcore.Lock(os.Stderr), highPriority),
	)
	return zap.New(core).Named("bgkit"), nil
}

func consoleEncoder(f *os.File) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(f) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}

// EnableColorOutput reports whether f is an interactive terminal
func EnableColorOutput(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
