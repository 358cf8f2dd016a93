package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
)

// DeadLetterSchemaVersion identifies the entry format; bump it when
// DeadLetterEntry changes shape.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one JSONL record for an event that exhausted its
// publish retries.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends exhausted events to a JSONL file so they
// can be inspected and replayed once the fault is fixed.
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
}

// NewDeadLetterWriter opens (or creates) the dead-letter file for
// appending.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter file: %w", err)
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write appends one entry. Safe for concurrent use; a nil lastErr is
// recorded as an empty error string.
func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         evt,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"attempts", attempts,
		"error", entry.LastError)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal dead-letter entry: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append dead-letter entry: %w", err)
	}
	return nil
}

// Close closes the underlying file
func (w *DeadLetterWriter) Close() error {
	return w.file.Close()
}
