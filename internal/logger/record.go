package logger

import (
	"sync"

	"github.com/lucabaldini/labgroups/types"
)

// Entry is one captured log call.
type Entry struct {
	Level   string
	Message string
	Fields  []any
}

// RecordLogger captures log calls for assertions in tests.
type RecordLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// Compile-time assertion that RecordLogger implements Logger.
var _ types.Logger = (*RecordLogger)(nil)

// NewRecord creates a logger that records every call instead of writing it.
//
// Returns:
//   - *RecordLogger: Logger whose entries can be inspected afterwards
//
// Example:
//
//	rec := logger.NewRecord()
//	alloc, _ := labgroups.NewAllocator(&cfg, src, src, labgroups.WithLogger(rec))
//	// ... run, then assert on rec.ByLevel("WARN")
func NewRecord() *RecordLogger {
	return &RecordLogger{}
}

// Debug records a debug-level message.
func (l *RecordLogger) Debug(msg string, keysAndValues ...any) {
	l.record("DEBUG", msg, keysAndValues)
}

// Info records an info-level message.
func (l *RecordLogger) Info(msg string, keysAndValues ...any) {
	l.record("INFO", msg, keysAndValues)
}

// Warn records a warning-level message.
func (l *RecordLogger) Warn(msg string, keysAndValues ...any) {
	l.record("WARN", msg, keysAndValues)
}

// Error records an error-level message.
func (l *RecordLogger) Error(msg string, keysAndValues ...any) {
	l.record("ERROR", msg, keysAndValues)
}

// Fatal records a fatal-level message (does NOT call os.Exit).
func (l *RecordLogger) Fatal(msg string, keysAndValues ...any) {
	l.record("FATAL", msg, keysAndValues)
}

// Entries returns a copy of every recorded call, in order.
func (l *RecordLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)

	return entries
}

// ByLevel returns the recorded calls at the given level, in order.
//
// Parameters:
//   - level: "DEBUG", "INFO", "WARN", "ERROR" or "FATAL"
//
// Returns:
//   - []Entry: Matching entries
func (l *RecordLogger) ByLevel(level string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var entries []Entry
	for _, e := range l.entries {
		if e.Level == level {
			entries = append(entries, e)
		}
	}

	return entries
}

func (l *RecordLogger) record(level, msg string, keysAndValues []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make([]any, len(keysAndValues))
	copy(fields, keysAndValues)
	l.entries = append(l.entries, Entry{Level: level, Message: msg, Fields: fields})
}
