package logger

import (
	"io"
	"sync"
)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// Default returns the process-wide logger, creating it on first use. All
// package-level helpers log through this instance.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New()
	})
	return defaultLogger
}

// SetLevel sets the minimum level on the process-wide logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// SetOutput redirects the process-wide logger to w.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

func Tracef(format string, args ...any) {
	Default().Output(2, LevelTrace, format, args...)
}

func Debugf(format string, args ...any) {
	Default().Output(2, LevelDebug, format, args...)
}

func Infof(format string, args ...any) {
	Default().Output(2, LevelInfo, format, args...)
}

func Warnf(format string, args ...any) {
	Default().Output(2, LevelWarn, format, args...)
}

func Errorf(format string, args ...any) {
	Default().Output(2, LevelError, format, args...)
}

func Fatalf(format string, args ...any) {
	Default().Output(2, LevelFatal, format, args...)
}
