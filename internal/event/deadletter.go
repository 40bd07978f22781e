package event

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tamaverse/TamaPet_Go/internal/logger"
)

// DeadLetterSchemaVersion tags each entry so the log format can evolve.
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one JSONL record for an event that exhausted its retries.
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSONL file. Safe for
// concurrent use.
type DeadLetterWriter struct {
	mu      sync.Mutex
	file    *os.File
	encoder *json.Encoder
}

// NewDeadLetterWriter opens (or creates) the dead-letter file in append mode.
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file %s: %w", path, err)
	}
	return &DeadLetterWriter{file: f, encoder: json.NewEncoder(f)}, nil
}

// Write appends one entry for an event that could not be published.
func (w *DeadLetterWriter) Write(event Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         event,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	logger.FromContext(context.Background()).Warn("event_dead_lettered",
		"event_type", event.Type,
		"attempts", attempts,
		"error", entry.LastError)

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.encoder.Encode(entry)
}

func (w *DeadLetterWriter) Close() error {
	return w.file.Close()
}
