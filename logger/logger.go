// Package logger provides the small leveled logging interface used by the
// collectors and the report pipeline. Everything goes to stderr so that stdout
// only ever carries the rendered report.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the logging operations used across machine-report: Debug for
// degraded collector queries, Warn for configuration problems. Both accept a
// format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

// envLogger writes through a standard library *log.Logger.
// Debug lines are dropped unless debug is enabled.
type envLogger struct {
	prefix string
	debug  bool
	out    *log.Logger
}

// NewEnvLogger creates a stderr logger. The prefix is prepended to every
// message (e.g. "[sysinfo]"); debug enables Debug output.
func NewEnvLogger(prefix string, debug bool) Logger {
	return newWriterLogger(os.Stderr, prefix, debug)
}

func newWriterLogger(w io.Writer, prefix string, debug bool) Logger {
	return &envLogger{
		prefix: prefix,
		debug:  debug,
		out:    log.New(w, "machine-report: ", log.LstdFlags),
	}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if l.debug {
		l.out.Printf(l.prefix+" debug: "+format, args...)
	}
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	l.out.Printf(l.prefix+" WARN: "+format, args...)
}

type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(format string, args ...interface{}) {}
func (noopLogger) Warn(format string, args ...interface{})  {}

// LogMessage is a captured log line.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for test assertions. It is safe for use
// from the concurrent collector tasks.
type BufferLogger struct {
	mu       sync.Mutex
	messages []LogMessage
}

// NewBufferLogger creates an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) { l.record("debug", format, args...) }
func (l *BufferLogger) Warn(format string, args ...interface{})  { l.record("warn", format, args...) }

// Messages returns a copy of everything logged so far.
func (l *BufferLogger) Messages() []LogMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages() {
		if m.Level == level {
			return true
		}
	}
	return false
}
