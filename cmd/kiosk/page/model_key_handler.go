package page

import (
	"time"

	"carekiosk/internal/analytics"
	"carekiosk/internal/catalog"
	"carekiosk/internal/form"
	"carekiosk/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes all keyboard input. Global chords are handled first;
// everything else goes to the focused section.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Debug overlay swallows everything except its own toggles.
	if m.showDebug {
		switch msg.String() {
		case "ctrl+g", "esc", "q":
			m.showDebug = false
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.debugVP, cmd = m.debugVP.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+g":
		// Re-render the projection on every open; the overlay is
		// read-only and never mutates the log.
		m.debugVP.SetContent(m.renderDebugLog())
		m.debugVP.GotoTop()
		m.showDebug = true
		return m, nil

	case "ctrl+t":
		m.toggleTheme()
		return m, nil

	case "ctrl+b":
		return m, m.backToTop()

	case "ctrl+x":
		m.toasts.DismissOldest()
		return m, nil

	case "esc":
		if m.banner.visible {
			m.banner.visible = false
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd

	case "ctrl+n":
		m.cycleSection(1)
		return m, nil

	case "ctrl+p":
		m.cycleSection(-1)
		return m, nil
	}

	switch m.section {
	case SectionServices:
		return m.handleServicesKey(msg)
	case SectionFAQ:
		return m.handleFAQKey(msg)
	case SectionTabs:
		return m.handleTabsKey(msg)
	case SectionForm:
		return m.handleFormKey(msg)
	}
	return m, nil
}

// cycleSection moves section focus, skipping sections with no content.
func (m *Model) cycleSection(dir int) {
	n := int(SectionForm) + 1
	s := int(m.section)
	for i := 0; i < n; i++ {
		s = (s + dir + n) % n
		if m.sectionWired(Section(s)) {
			break
		}
	}
	if Section(s) == SectionForm {
		m.focusFormIndex(m.formFocus)
	} else {
		m.blurFormInputs()
	}
	m.section = Section(s)
}

func (m *Model) toggleTheme() {
	m.setTheme(!m.theme.IsDark)
}

func (m Model) handleServicesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.svcFocus = (m.svcFocus + 1) % 4
		m.syncSearchFocus()
		return m, nil
	case "shift+tab":
		m.svcFocus = (m.svcFocus + 3) % 4
		m.syncSearchFocus()
		return m, nil
	}

	switch m.svcFocus {
	case focusSearch:
		before := m.searchInput.Value()
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if m.searchInput.Value() != before {
			// Trailing-edge debounce: each keystroke supersedes the
			// pending window.
			return m, tea.Batch(cmd, m.searchDebounce.Trigger())
		}
		return m, cmd

	case focusChips:
		switch msg.String() {
		case "left", "h":
			if m.chipCursor > 0 {
				m.chipCursor--
			}
		case "right", "l":
			if m.chipCursor < len(m.tagUniverse)-1 {
				m.chipCursor++
			}
		case "enter", " ":
			if len(m.tagUniverse) == 0 {
				break
			}
			tag := m.tagUniverse[m.chipCursor]
			m.filter.ToggleTag(tag)
			// Chip toggles hit the engine immediately, no debounce.
			m.recomputeVisible()
			m.events.Append(analytics.EventFilterChange, map[string]any{
				"tag":     tag,
				"active":  m.filter.TagActive(tag),
				"results": len(m.visible),
			})
		}
		return m, nil

	case focusSort:
		switch msg.String() {
		case "left", "right", "enter", " ", "h", "l":
			if m.filter.Sort == catalog.SortAlphabetical {
				m.filter.Sort = catalog.SortPopularity
			} else {
				m.filter.Sort = catalog.SortAlphabetical
			}
			m.recomputeVisible()
			m.events.Append(analytics.EventSortChange, map[string]any{
				"sort": m.filter.Sort.String(),
			})
		}
		return m, nil

	case focusCards:
		switch msg.String() {
		case "up", "k":
			if m.cardCursor > 0 {
				m.cardCursor--
			}
		case "down", "j":
			if m.cardCursor < len(m.visible)-1 {
				m.cardCursor++
			}
		case "enter":
			if m.cardCursor < len(m.visible) {
				card := m.visible[m.cardCursor]
				m.events.Append(analytics.EventCTAClick, map[string]any{
					"card": card.ID,
				})
				return m, m.showToast("We'll reach out about "+card.Title, notify.Info)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) syncSearchFocus() {
	if m.svcFocus == focusSearch {
		m.searchInput.Focus()
	} else {
		m.searchInput.Blur()
	}
}

func (m Model) handleFAQKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.faqCursor > 0 {
			m.faqCursor--
		}
	case "down", "j":
		if m.faqCursor < len(m.manifest.FAQ)-1 {
			m.faqCursor++
		}
	case "enter", " ":
		if m.faqCursor < len(m.manifest.FAQ) {
			m.faq.Toggle(m.manifest.FAQ[m.faqCursor].ID)
		}
	}
	return m, nil
}

// handleTabsKey implements the roving-focus keyboard policy: every
// movement activates the newly focused tab in the same step.
func (m Model) handleTabsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "down", "l", "j":
		m.tabGroup.Next()
	case "left", "up", "h", "k":
		m.tabGroup.Prev()
	case "home":
		m.tabGroup.First()
	case "end":
		m.tabGroup.Last()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submitIdx := len(form.FieldNames)

	switch msg.String() {
	case "tab":
		m.focusFormIndex((m.formFocus + 1) % (submitIdx + 1))
		return m, nil
	case "shift+tab":
		m.focusFormIndex((m.formFocus + submitIdx) % (submitIdx + 1))
		return m, nil
	}

	if m.formFocus == submitIdx {
		if msg.String() == "enter" || msg.String() == " " {
			return m.attemptSubmit()
		}
		return m, nil
	}

	name := form.FieldNames[m.formFocus]

	// Enter advances through single-line fields; the message textarea
	// keeps it for newlines.
	if msg.String() == "enter" && name != form.FieldMessage {
		m.focusFormIndex(m.formFocus + 1)
		return m, nil
	}

	var cmd tea.Cmd
	switch name {
	case form.FieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.form.SetValue(name, m.nameInput.Value())
	case form.FieldEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
		m.form.SetValue(name, m.emailInput.Value())
	case form.FieldPhone:
		m.phoneInput, cmd = m.phoneInput.Update(msg)
		// The formatting transform runs before validation on every
		// keystroke; mirror the formatted value back into the input.
		m.form.SetValue(name, m.phoneInput.Value())
		if formatted := m.form.Field(name).Value; formatted != m.phoneInput.Value() {
			m.phoneInput.SetValue(formatted)
			m.phoneInput.CursorEnd()
		}
	case form.FieldMessage:
		m.messageArea, cmd = m.messageArea.Update(msg)
		m.form.SetValue(name, m.messageArea.Value())
	}
	return m, cmd
}

// attemptSubmit enforces admission control: at most one submission in
// flight, and no transition at all while the form is invalid.
func (m Model) attemptSubmit() (tea.Model, tea.Cmd) {
	if m.form.Submission() == form.Submitting {
		return m, nil
	}
	if !m.form.Submit() {
		if name, ok := m.form.FirstInvalid(); ok {
			m.focusFormField(name)
		}
		return m, nil
	}

	m.banner.visible = false
	success := m.outcome()
	delay := m.delay()
	m.log.Debug("submission scheduled")
	return m, tea.Batch(
		m.spin.Tick,
		tea.Tick(delay, func(time.Time) tea.Msg {
			return submitResultMsg{success: success}
		}),
	)
}
