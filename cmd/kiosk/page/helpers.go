package page

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"carekiosk/cmd/kiosk/ui"
	"carekiosk/internal/analytics"
	"carekiosk/internal/form"
	"carekiosk/internal/kvstore"

	"github.com/charmbracelet/glamour"
)

const (
	headerHeight = 4
	footerHeight = 2

	smoothScrollStep     = 3
	smoothScrollInterval = 16 * time.Millisecond
)

// setTheme applies and persists a theme choice and records the change.
func (m *Model) setTheme(dark bool) {
	if dark {
		m.theme = ui.DarkTheme()
	} else {
		m.theme = ui.LightTheme()
	}
	m.styles = ui.NewStyles(m.theme)
	m.spin.Style = m.styles.FieldFocused
	m.rebuildTabRenderer() // glamour style follows the theme
	m.store.Set(kvstore.KeyTheme, m.theme.Name)
	m.events.Append(analytics.EventThemeChange, map[string]any{
		"theme": m.theme.Name,
	})
}

// focusFormField focuses the named field.
func (m *Model) focusFormField(name string) {
	for i, n := range form.FieldNames {
		if n == name {
			m.focusFormIndex(i)
			return
		}
	}
}

// focusFormIndex moves form focus to the given index (len(FieldNames) is
// the submit control). Leaving a field counts as its blur.
func (m *Model) focusFormIndex(idx int) {
	if m.formFocus < len(form.FieldNames) && idx != m.formFocus {
		m.form.Blur(form.FieldNames[m.formFocus])
	}
	m.blurFormInputs()
	m.formFocus = idx
	switch {
	case idx >= len(form.FieldNames):
		// submit control; no text input to focus
	case form.FieldNames[idx] == form.FieldName:
		m.nameInput.Focus()
	case form.FieldNames[idx] == form.FieldEmail:
		m.emailInput.Focus()
	case form.FieldNames[idx] == form.FieldPhone:
		m.phoneInput.Focus()
	case form.FieldNames[idx] == form.FieldMessage:
		m.messageArea.Focus()
	}
}

func (m *Model) blurFormInputs() {
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.phoneInput.Blur()
	m.messageArea.Blur()
}

// renderDebugLog formats the newest 20 analytics records, newest first.
func (m *Model) renderDebugLog() string {
	events := m.events.Tail(20)
	if len(events) == 0 {
		return m.styles.Muted.Render("No events recorded yet.")
	}
	var b strings.Builder
	b.WriteString(m.styles.Bold.Render(fmt.Sprintf("Analytics: last %d of %d events", len(events), m.events.Len())))
	b.WriteString("\n\n")
	for _, ev := range events {
		b.WriteString(fmt.Sprintf("%s  %s%s\n",
			m.styles.Muted.Render(ev.Timestamp.Format("15:04:05.000")),
			ev.Type,
			formatPayload(ev.Payload)))
	}
	return b.String()
}

func formatPayload(payload map[string]any) string {
	if len(payload) == 0 {
		return ""
	}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, payload[k]))
	}
	return "  {" + strings.Join(parts, " ") + "}"
}

// rebuildTabRenderer builds the glamour renderer for the current theme and
// width. Called from Update when either changes; View only reads the cache,
// so the build must happen where the assignment survives.
func (m *Model) rebuildTabRenderer() {
	style := "light"
	if m.theme.IsDark {
		style = "dark"
	}
	wrap := min(m.width-4, 76)
	if wrap < 20 {
		wrap = 76
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.tabRenderer = nil
		return
	}
	m.tabRenderer = r
}

// renderMarkdown renders tab panel bodies through the cached renderer,
// falling back to the raw body before the first window size arrives.
func (m Model) renderMarkdown(body string) string {
	if m.tabRenderer == nil {
		return body
	}
	out, err := m.tabRenderer.Render(body)
	if err != nil {
		return body
	}
	return out
}
