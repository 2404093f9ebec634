// Package history records deploy and selection events as a JSONL log.
//
// Each line of history.jsonl is one self-contained JSON object, so the log
// survives partial writes and foreign edits: unreadable lines are skipped on
// read, never fatal.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/matthewnyc2/LLM/internal/clock"
	"github.com/matthewnyc2/LLM/internal/fsops"
)

// Entry is one logged event.
type Entry struct {
	Timestamp string            `json:"timestamp"`
	Event     string            `json:"event"`
	Details   map[string]string `json:"details,omitempty"`
}

// Log records events and reads them back.
type Log interface {
	// Append adds one entry with the current timestamp.
	Append(event string, details map[string]string) error

	// Tail returns the most recent n entries in log order. n <= 0 returns
	// everything. A missing log is empty, not an error.
	Tail(n int) ([]Entry, error)
}

// FileLog is a Log backed by a JSONL file.
type FileLog struct {
	fs    fsops.FS
	path  string
	clock clock.Clock
}

// NewFileLog creates a FileLog writing to path.
func NewFileLog(fs fsops.FS, path string, clk clock.Clock) *FileLog {
	return &FileLog{fs: fs, path: path, clock: clk}
}

// Append adds one entry with the current timestamp.
func (l *FileLog) Append(event string, details map[string]string) error {
	entry := Entry{
		Timestamp: clock.Timestamp(l.clock.Now()),
		Event:     event,
		Details:   details,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	existing, err := l.fs.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read history: %w", err)
		}
		existing = nil
	}
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		existing = append(existing, '\n')
	}

	data := append(existing, append(line, '\n')...)
	if err := l.fs.AtomicWrite(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// Tail returns the most recent n entries in log order.
func (l *FileLog) Tail(n int) ([]Entry, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			// Foreign or truncated line, skip it
			continue
		}
		entries = append(entries, entry)
	}

	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// FakeLog is an in-memory Log for tests.
type FakeLog struct {
	Entries   []Entry
	appendErr error
}

// NewFakeLog creates an empty FakeLog.
func NewFakeLog() *FakeLog {
	return &FakeLog{}
}

// SetAppendError makes subsequent Append calls fail.
func (l *FakeLog) SetAppendError(err error) {
	l.appendErr = err
}

// Append records the entry in memory.
func (l *FakeLog) Append(event string, details map[string]string) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	l.Entries = append(l.Entries, Entry{Event: event, Details: details})
	return nil
}

// Tail returns the most recent n entries.
func (l *FakeLog) Tail(n int) ([]Entry, error) {
	entries := l.Entries
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}
