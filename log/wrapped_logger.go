package log

import "fmt"

// WrappedLogger is the internally used Logger struct that implements Logger and defines various methods for different
// levels of logging, eg: trace, debug, info, etc.
type WrappedLogger struct {
	Logger
}

// NewWrappedLogger returns a WrappedLogger for a given inputted Logger. If logger is nil then assign the nopLogger.
func NewWrappedLogger(logger Logger) WrappedLogger {
	if logger == nil {
		logger = nopLogger{}
	}

	return WrappedLogger{Logger: logger}
}

// Enabled reports whether a statement at level would be output. Loggers which don't implement LevelEnabler are
// assumed to output every level.
func (w *WrappedLogger) Enabled(level Level) bool {
	enabler, ok := w.Logger.(LevelEnabler)

	return !ok || enabler.Enabled(level)
}

// logf forwards to the wrapped logger, skipping levels it has reported as disabled.
func (w *WrappedLogger) logf(level Level, format string, args ...any) {
	if !w.Enabled(level) {
		return
	}

	w.Log(level, format, args...)
}

// Tracef logs the provided information at the trace level.
func (w *WrappedLogger) Tracef(format string, args ...any) {
	w.logf(LevelTrace, format, args...)
}

// Debugf logs the provided information at the debug level.
func (w *WrappedLogger) Debugf(format string, args ...any) {
	w.logf(LevelDebug, format, args...)
}

// Infof logs the provided information at the info level.
func (w *WrappedLogger) Infof(format string, args ...any) {
	w.logf(LevelInfo, format, args...)
}

// Warnf logs the provided information at the warn level.
func (w *WrappedLogger) Warnf(format string, args ...any) {
	w.logf(LevelWarning, format, args...)
}

// Errorf logs the provided information at the error level.
func (w *WrappedLogger) Errorf(format string, args ...any) {
	w.logf(LevelError, format, args...)
}

// Panicf logs the provided information at the panic level and then panics with the formatted message, even when the
// panic level is disabled.
func (w *WrappedLogger) Panicf(format string, args ...any) {
	w.logf(LevelPanic, format, args...)
	panic(fmt.Sprintf(format, args...))
}
