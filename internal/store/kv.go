package store

import (
	"context"
	"time"
)

// KV is a string-keyed store of JSON documents.
type KV interface {
	// Get returns the value stored at key. found is false when the key is
	// absent; that is not an error.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put stores value at key, replacing any previous value in one write.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every key starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Event kinds recorded in the activity log.
const (
	EventAnswer      = "answer"
	EventHint        = "hint"
	EventReset       = "reset"
	EventBadge       = "badge"
	EventStreak      = "streak"
	EventCompletion  = "completion"
	EventCertificate = "certificate"
)

// Event is one entry of the append-only activity log.
type Event struct {
	ID        string            `json:"id"`
	Sequence  int64             `json:"sequence"`
	UserID    string            `json:"user_id"`
	Kind      string            `json:"kind"`
	Subject   string            `json:"subject"` // question ID, badge ID, category...
	Detail    map[string]string `json:"detail,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// EventLog provides append and query access to the activity log.
type EventLog interface {
	// AppendEvent records an event. Sequence is assigned by the log.
	AppendEvent(ctx context.Context, ev Event) error

	// RecentEvents returns a user's events, newest first.
	// limit <= 0 means unlimited.
	RecentEvents(ctx context.Context, userID string, limit int) ([]Event, error)
}

// Backend is a complete persistence implementation.
type Backend interface {
	KV
	EventLog
	Close() error
}
