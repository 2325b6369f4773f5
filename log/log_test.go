package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(level Level, format string, args ...any) {
	m.Called(level, format, args)
}

// leveledLogger only outputs statements at or above min.
type leveledLogger struct {
	mockLogger
	min Level
}

func (l *leveledLogger) Enabled(level Level) bool {
	return level >= l.min
}

func TestWrappedLoggerNil(t *testing.T) {
	logger := NewWrappedLogger(nil)
	require.IsType(t, nopLogger{}, logger.Logger)
	require.False(t, logger.Enabled(LevelPanic))
	require.NotPanics(t, func() { logger.Infof("ignored %d", 1) })
}

func TestWrappedLoggerEnabledWithoutEnabler(t *testing.T) {
	logger := NewWrappedLogger(&mockLogger{})
	require.True(t, logger.Enabled(LevelTrace))
}

func TestWrappedLoggerSkipsDisabledLevels(t *testing.T) {
	inner := &leveledLogger{min: LevelInfo}
	inner.On("Log", LevelInfo, "kept %d", []any{2}).Once()
	inner.On("Log", LevelError, "kept %d", []any{3}).Once()

	logger := NewWrappedLogger(inner)
	require.False(t, logger.Enabled(LevelDebug))
	require.True(t, logger.Enabled(LevelWarning))

	logger.Tracef("dropped %d", 0)
	logger.Debugf("dropped %d", 1)
	logger.Infof("kept %d", 2)
	logger.Errorf("kept %d", 3)

	inner.AssertExpectations(t)
}

func TestWrappedLoggerPanicfWhenDisabled(t *testing.T) {
	logger := NewWrappedLogger(nil)
	require.PanicsWithValue(t, "boom", func() { logger.Panicf("boom") })
}

func TestWrappedLoggerLevels(t *testing.T) {
	inner := &mockLogger{}

	for _, level := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError} {
		inner.On("Log", level, "value %d", []any{1}).Once()
	}

	logger := NewWrappedLogger(inner)
	logger.Tracef("value %d", 1)
	logger.Debugf("value %d", 1)
	logger.Infof("value %d", 1)
	logger.Warnf("value %d", 1)
	logger.Errorf("value %d", 1)

	inner.AssertExpectations(t)
}

func TestWrappedLoggerPanicf(t *testing.T) {
	inner := &mockLogger{}
	inner.On("Log", LevelPanic, "boom %s", []any{"here"}).Once()

	logger := NewWrappedLogger(inner)
	require.PanicsWithValue(t, "boom here", func() { logger.Panicf("boom %s", "here") })

	inner.AssertExpectations(t)
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "TRAC", LevelTrace.String())
	require.Equal(t, "WARN", LevelWarning.String())
	require.Equal(t, "PNIC", LevelPanic.String())
	require.Equal(t, "UNKN", Level(42).String())
}

func TestStdoutLogger(t *testing.T) {
	var buf bytes.Buffer

	StdoutLogger{Out: &buf}.Log(LevelInfo, "created bucket for priority %d", 3)
	require.Contains(t, buf.String(), " INFO: created bucket for priority 3\n")
}

func TestSlogLogger(t *testing.T) {
	var (
		buf    bytes.Buffer
		logger = NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	)

	logger.Log(LevelTrace, "hidden %d", 1)
	require.Empty(t, buf.String())

	logger.Log(LevelDebug, "shown %d", 2)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), `msg="shown 2"`)

	buf.Reset()

	logger.Log(LevelPanic, "fatal")
	require.Contains(t, buf.String(), "level=ERROR")
}

func TestSlogLoggerTrace(t *testing.T) {
	var (
		buf    bytes.Buffer
		logger = NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelSlogTrace})))
	)

	logger.Log(LevelTrace, "visible")
	require.Contains(t, buf.String(), `msg=visible`)
}

func TestSlogLoggerEnabled(t *testing.T) {
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})))

	require.False(t, logger.Enabled(LevelTrace))
	require.False(t, logger.Enabled(LevelDebug))
	require.True(t, logger.Enabled(LevelInfo))
	require.True(t, logger.Enabled(LevelPanic))

	wrapped := NewWrappedLogger(logger)
	require.False(t, wrapped.Enabled(LevelTrace))
}

func TestSlogLoggerDefault(t *testing.T) {
	require.NotNil(t, NewSlogLogger(nil).logger)
}
