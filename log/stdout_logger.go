package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutLogger prints every log line to standard output, prefixed with a timestamp and the level.
type StdoutLogger struct {
	// Out overrides the destination, nil means os.Stdout.
	Out io.Writer
}

// Log formats msg with args and writes it as a single line.
func (s StdoutLogger) Log(level Level, msg string, args ...any) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%s %s: %s\n", time.Now().Format(time.RFC3339Nano), level, fmt.Sprintf(msg, args...))
}
