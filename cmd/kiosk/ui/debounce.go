package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceMsg fires when a debounce window elapses. Stale messages (an
// older Gen) must be ignored by the receiver.
type DebounceMsg struct {
	ID  string
	Gen int
}

// Debouncer owns one debounce site, implemented as cancellable scheduled
// messages on the event loop rather than background timers: each Trigger
// bumps a generation token, and only the message carrying the current
// generation is acted on. Trailing-edge: every Trigger supersedes the
// pending window and schedules a fresh one.
type Debouncer struct {
	id       string
	duration time.Duration
	gen      int
}

// NewDebouncer creates a debouncer for the given site id.
func NewDebouncer(id string, duration time.Duration) *Debouncer {
	return &Debouncer{id: id, duration: duration}
}

// Trigger invalidates any pending window and returns the command that
// delivers the new one.
func (d *Debouncer) Trigger() tea.Cmd {
	d.gen++
	gen := d.gen
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return DebounceMsg{ID: d.id, Gen: gen}
	})
}

// Cancel invalidates any pending window without scheduling a new one.
func (d *Debouncer) Cancel() {
	d.gen++
}

// Matches reports whether msg is this site's current-generation firing.
func (d *Debouncer) Matches(msg DebounceMsg) bool {
	return msg.ID == d.id && msg.Gen == d.gen
}
