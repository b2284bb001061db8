// Package console provides the shared leveled logger used across resource-swag.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger is the process-wide console logger. Debug output is off by default;
// set DebugLevel to a value greater than zero to enable it.
var Logger = &Console{Out: os.Stderr}

// Console writes leveled, printf-style log lines to Out.
type Console struct {
	// DebugLevel gates Debug output. Zero silences debug lines.
	DebugLevel int

	// Out is the destination writer. Defaults to os.Stderr when nil.
	Out io.Writer

	mu sync.Mutex
}

// Debug logs a debug-level message when DebugLevel > 0.
func (c *Console) Debug(format string, v ...interface{}) {
	if c.DebugLevel <= 0 {
		return
	}
	c.write("DEBUG", format, v...)
}

// Info logs an informational message.
func (c *Console) Info(format string, v ...interface{}) {
	c.write("INFO", format, v...)
}

// Warn logs a warning message.
func (c *Console) Warn(format string, v ...interface{}) {
	c.write("WARN", format, v...)
}

// Error logs an error message.
func (c *Console) Error(format string, v ...interface{}) {
	c.write("ERROR", format, v...)
}

func (c *Console) write(level, format string, v ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "%s\t%s\n", level, fmt.Sprintf(format, v...))
}
