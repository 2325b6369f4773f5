package log

// nopLogger is the no operations logger - ie, a nil logger that doesn't log anything.
type nopLogger struct{}

// Log method for the nopLogger which does nothing.
func (n nopLogger) Log(_ Level, _ string, _ ...any) {}

// Enabled reports that no level is ever output.
func (n nopLogger) Enabled(_ Level) bool { return false }
