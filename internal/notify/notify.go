// Package notify is the toast queue. Toasts stack: several can be visible
// at once and each is independently dismissible, either by its own expiry
// timer or manually. Manual dismissal wins; a timer firing for a toast that
// is already gone is ignored.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the toast's visual flavor.
type Kind int

const (
	Info Kind = iota
	Success
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// DefaultDuration is the auto-dismiss countdown used when the caller does
// not pick one.
const DefaultDuration = 4 * time.Second

// Toast is one notification. ID is unique per toast so a stale expiry timer
// can never dismiss a newer toast.
type Toast struct {
	ID        string
	Message   string
	Kind      Kind
	CreatedAt time.Time
	Duration  time.Duration
}

// Queue holds the currently visible toasts in arrival order. All access
// happens on the event loop; the queue itself runs no timers. The page
// schedules one expiry message per toast and calls Expire when it fires.
type Queue struct {
	toasts []Toast
	now    func() time.Time
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Show appends a toast and returns it; the caller schedules the expiry
// timer for the returned ID. A zero duration gets DefaultDuration.
func (q *Queue) Show(message string, kind Kind, duration time.Duration) Toast {
	if duration <= 0 {
		duration = DefaultDuration
	}
	t := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: q.now(),
		Duration:  duration,
	}
	q.toasts = append(q.toasts, t)
	return t
}

// Dismiss removes the toast manually. Returns false when the toast already
// expired or was dismissed, so the caller can ignore its pending timer.
func (q *Queue) Dismiss(id string) bool {
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Expire removes the toast when its countdown fires. Identical removal
// semantics to Dismiss; kept separate so call sites read correctly.
func (q *Queue) Expire(id string) bool {
	return q.Dismiss(id)
}

// DismissOldest removes the oldest visible toast, if any. Bound to a key so
// toasts can be cleared without a pointer device.
func (q *Queue) DismissOldest() (Toast, bool) {
	if len(q.toasts) == 0 {
		return Toast{}, false
	}
	t := q.toasts[0]
	q.toasts = q.toasts[1:]
	return t, true
}

// Active returns the visible toasts, oldest first. The returned slice is a
// copy.
func (q *Queue) Active() []Toast {
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Len returns the number of visible toasts.
func (q *Queue) Len() int { return len(q.toasts) }
