// Package log provides an interface to plug an application's logger into the collections in this module.
package log

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// LevelEnabler may optionally be implemented by a Logger to report which levels it will actually output, allowing
// callers to skip building arguments for statements which would be discarded.
type LevelEnabler interface {
	Enabled(level Level) bool
}
