// Package analytics is the append-only interaction log. The log is created
// once at session start and passed by reference to everything that emits;
// records are never mutated or removed. A JSONL sink file mirrors every
// record so external tooling can consume the log without any extra API.
package analytics

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event types emitted by the page. Free-form types are allowed; these are
// the ones the kiosk itself uses.
const (
	EventPageLoad     = "page_load"
	EventThemeChange  = "theme_change"
	EventCTAClick     = "cta_click"
	EventSearch       = "search"
	EventFilterChange = "filter_change"
	EventSortChange   = "sort_change"
	EventSubmitOK     = "form_submit_success"
	EventSubmitErr    = "form_submit_error"
)

// Event is one appended record.
type Event struct {
	Type      string         `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Session   string         `json:"session"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Log is the process-scoped ordered event sequence. Append-only: nothing
// removes or rewrites a record during normal operation.
type Log struct {
	mu      sync.Mutex
	events  []Event
	session string
	sink    *os.File
	enc     *json.Encoder
	now     func() time.Time
	log     *zap.Logger
}

// New creates a log for this session. sinkPath may be empty for an
// in-memory-only log; a sink that cannot be opened is absorbed (the
// in-memory log still works) and only logged.
func New(sinkPath string, log *zap.Logger) *Log {
	l := &Log{
		session: uuid.NewString(),
		now:     time.Now,
		log:     log,
	}
	if sinkPath != "" {
		f, err := os.OpenFile(sinkPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Warn("analytics sink unavailable, keeping log in memory only", zap.Error(err))
		} else {
			l.sink = f
			l.enc = json.NewEncoder(f)
		}
	}
	return l
}

// Session returns this run's session id, attached to every record.
func (l *Log) Session() string { return l.session }

// Append records an event with the current timestamp. The payload map is
// owned by the log after the call.
func (l *Log) Append(eventType string, payload map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ev := Event{
		Type:      eventType,
		Timestamp: l.now(),
		Session:   l.session,
		Payload:   payload,
	}
	l.events = append(l.events, ev)
	if l.enc != nil {
		if err := l.enc.Encode(ev); err != nil {
			l.log.Warn("analytics sink write failed", zap.Error(err))
		}
	}
}

// Len returns the number of records appended so far.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// Events returns a copy of the full sequence, oldest first.
func (l *Log) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Tail returns the newest n records, newest first, for the debug
// overlay's read-only projection.
func (l *Log) Tail(n int) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, 0, n)
	for i := len(l.events) - 1; i >= len(l.events)-n; i-- {
		out = append(out, l.events[i])
	}
	return out
}

// CountType returns how many records of the given type have been appended.
func (l *Log) CountType(eventType string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, ev := range l.events {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

// Close flushes and closes the sink, if any.
func (l *Log) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sink != nil {
		_ = l.sink.Close()
		l.sink = nil
		l.enc = nil
	}
}
