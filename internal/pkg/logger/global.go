package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalMu     sync.RWMutex
	globalLogger = &Logger{Logger: zap.NewNop()}
)

// SetGlobal installs the process-wide logger used by the package-level
// functions. Called once during service startup.
func SetGlobal(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

func global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// Debug logs a message at debug level with structured fields
func Debug(msg string, fields ...Field) {
	global().Debug(msg, fields...)
}

// Info logs a message at info level with structured fields
func Info(msg string, fields ...Field) {
	global().Info(msg, fields...)
}

// Warn logs a message at warn level with structured fields
func Warn(msg string, fields ...Field) {
	global().Warn(msg, fields...)
}

// Error logs a message at error level with structured fields
func Error(msg string, fields ...Field) {
	global().Error(msg, fields...)
}

// Fatal logs a message at fatal level and exits
func Fatal(msg string, fields ...Field) {
	global().Fatal(msg, fields...)
}
