package page

import (
	"time"

	"carekiosk/cmd/kiosk/ui"
	"carekiosk/internal/analytics"
	"carekiosk/internal/catalog"
	"carekiosk/internal/content"
	"carekiosk/internal/form"
	"carekiosk/internal/notify"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ContentReloadedMsg carries a freshly parsed manifest from the content
// watcher (sent via Program.Send from outside the loop).
type ContentReloadedMsg struct {
	Manifest *content.Manifest
}

// toastExpiredMsg fires when a toast's countdown elapses. The id keeps a
// stale timer from touching a newer toast.
type toastExpiredMsg struct {
	id string
}

// submitResultMsg resolves the simulated submission.
type submitResultMsg struct {
	success bool
}

// scrollTickMsg drives the animated back-to-top scroll.
type scrollTickMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = msg.Width
		m.body.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.debugVP.Width = max(msg.Width-4, 10)
		m.debugVP.Height = max(msg.Height-6, 3)
		m.messageArea.SetWidth(min(msg.Width-6, 72))
		m.rebuildTabRenderer() // word wrap follows the width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ui.DebounceMsg:
		if !m.searchDebounce.Matches(msg) {
			return m, nil // superseded by a later keystroke
		}
		return m.commitSearch(), nil

	case toastExpiredMsg:
		m.toasts.Expire(msg.id)
		return m, nil

	case submitResultMsg:
		return m.resolveSubmission(msg.success)

	case spinner.TickMsg:
		if m.form.Submission() != form.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scrollTickMsg:
		m.body.LineUp(smoothScrollStep)
		if m.body.AtTop() {
			return m, nil
		}
		return m, tea.Tick(smoothScrollInterval, func(time.Time) tea.Msg {
			return scrollTickMsg{}
		})

	case ContentReloadedMsg:
		m.applyManifest(msg.Manifest)
		m.log.Info("page content reloaded",
			zap.Int("services", len(m.manifest.Services)))
		return m, m.showToast("Page content updated", notify.Info)
	}

	return m, nil
}

// commitSearch applies the debounced search box value to the filter state
// and recomputes the visible set from the full collection.
func (m Model) commitSearch() Model {
	query := m.searchInput.Value()
	if query == m.filter.Query {
		return m
	}
	m.filter.Query = query
	m.recomputeVisible()
	m.events.Append(analytics.EventSearch, map[string]any{
		"query":   query,
		"results": len(m.visible),
	})
	return m
}

// resolveSubmission applies the simulated outcome: reset-and-celebrate on
// success, preserve-and-retry on failure. Focus and banner behavior follow
// the form contract; the analytics record is appended exactly once, here.
func (m Model) resolveSubmission(success bool) (tea.Model, tea.Cmd) {
	if m.form.Submission() != form.Submitting {
		return m, nil // stale message; nothing in flight
	}
	m.form.Resolve(success)

	if success {
		m.nameInput.SetValue("")
		m.emailInput.SetValue("")
		m.phoneInput.SetValue("")
		m.messageArea.Reset()
		m.banner = bannerState{visible: true, success: true,
			message: "Thanks! Your message has been sent. We'll be in touch soon."}
		m.focusFormIndex(0)
		m.events.Append(analytics.EventSubmitOK, map[string]any{
			"fields": len(form.FieldNames),
		})
		m.log.Info("form submission succeeded")
		return m, m.showToast("Message sent successfully", notify.Success)
	}

	m.banner = bannerState{visible: true, success: false,
		message: "Something went wrong sending your message. Please try again."}
	if name, ok := m.form.FirstInvalid(); ok {
		m.focusFormField(name)
	} else {
		m.focusFormIndex(0)
	}
	m.events.Append(analytics.EventSubmitErr, nil)
	m.log.Warn("form submission failed")
	return m, m.showToast("Message could not be sent", notify.Error)
}

// showToast pushes a toast and schedules its expiry message.
func (m *Model) showToast(message string, kind notify.Kind) tea.Cmd {
	t := m.toasts.Show(message, kind, m.cfg.UX.ToastDuration())
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: t.ID}
	})
}

// backToTop honors the reduced-motion preference, queried per action:
// instant jump when set, animated scroll otherwise.
func (m *Model) backToTop() tea.Cmd {
	if m.cfg.UX.ReducedMotion {
		m.body.GotoTop()
		return nil
	}
	if m.body.AtTop() {
		return nil
	}
	return tea.Tick(smoothScrollInterval, func(time.Time) tea.Msg {
		return scrollTickMsg{}
	})
}

// recomputeVisible re-runs the catalog engine over the full card set.
func (m *Model) recomputeVisible() {
	m.visible = catalog.Visible(m.manifest.Services, m.filter)
	if m.cardCursor >= len(m.visible) {
		m.cardCursor = 0
	}
}
