package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger at the given level. The first
// call initializes it; later calls ignore the level and return the same
// instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}

// Named returns a child logger tagged with the given subsystem name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(name)}
}

func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func newZapLogger(levelStr string) *Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stdout),
		zap.NewAtomicLevelAt(toZapLevel(levelStr)),
	)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}
