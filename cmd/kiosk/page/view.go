package page

import (
	"fmt"
	"strings"

	"carekiosk/cmd/kiosk/ui"
	"carekiosk/internal/catalog"
	"carekiosk/internal/form"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	if m.showDebug {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			m.styles.Overlay.Render(m.debugVP.View()),
			m.renderFooter(),
		)
	}

	body := m.body
	body.SetContent(m.renderSections())

	parts := []string{
		m.renderHeader(),
		body.View(),
	}
	if toasts := ui.RenderToasts(m.toasts.Active(), m.styles, m.width); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := m.manifest.Title
	if title == "" {
		title = "Care Kiosk"
	}
	mode := "light"
	if m.theme.IsDark {
		mode = "dark"
	}
	line := m.styles.Header.Render(title) +
		m.styles.Muted.Render("  ["+mode+"]")

	var nav []string
	for s := SectionServices; s <= SectionForm; s++ {
		if !m.sectionWired(s) {
			continue
		}
		label := s.String()
		if s == m.section {
			nav = append(nav, m.styles.SectionTitle.Render("▸ "+label))
		} else {
			nav = append(nav, m.styles.SectionInactive.Render("  "+label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		m.styles.Tagline.Render(m.manifest.Tagline),
		"  "+strings.Join(nav, "  "),
	)
}

func (m Model) renderFooter() string {
	help := "ctrl+n/p sections · tab focus · ctrl+t theme · ctrl+b top · ctrl+g events · esc quit"
	return m.styles.Footer.Render(help)
}

func (m Model) renderSections() string {
	var sections []string
	if m.sectionWired(SectionServices) {
		sections = append(sections, m.renderServices())
	}
	if m.sectionWired(SectionFAQ) {
		sections = append(sections, m.renderFAQ())
	}
	if m.sectionWired(SectionTabs) {
		sections = append(sections, m.renderTabs())
	}
	sections = append(sections, m.renderForm())
	return strings.Join(sections, "\n\n")
}

func (m Model) sectionHeading(s Section, label string) string {
	if s == m.section {
		return m.styles.SectionTitle.Render("── " + label + " ──")
	}
	return m.styles.SectionInactive.Render("── " + label + " ──")
}

func (m Model) renderServices() string {
	var b strings.Builder
	b.WriteString(m.sectionHeading(SectionServices, "Services"))
	b.WriteString("\n")

	search := m.searchInput.View()
	if m.section == SectionServices && m.svcFocus == focusSearch {
		search = m.styles.FieldFocused.Render("→ ") + search
	} else {
		search = "  " + search
	}
	b.WriteString(search)
	b.WriteString("\n")

	// Filter chips, OR semantics across active tags.
	var chips []string
	for i, tag := range m.tagUniverse {
		style := m.styles.Chip
		if m.filter.TagActive(tag) {
			style = m.styles.ChipActive
		}
		label := tag
		if m.section == SectionServices && m.svcFocus == focusChips && i == m.chipCursor {
			label = "[" + label + "]"
		}
		chips = append(chips, style.Render(label))
	}
	if len(chips) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
		b.WriteString("\n")
	}

	sortLabel := "Sort: A-Z"
	if m.filter.Sort == catalog.SortPopularity {
		sortLabel = "Sort: Most popular"
	}
	if m.section == SectionServices && m.svcFocus == focusSort {
		sortLabel = m.styles.FieldFocused.Render("→ " + sortLabel + " ⇄")
	} else {
		sortLabel = m.styles.Muted.Render("  " + sortLabel)
	}
	b.WriteString(sortLabel)
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(m.styles.Muted.Render("  No services match your search."))
		return b.String()
	}

	for i, card := range m.visible {
		style := m.styles.Card
		if m.section == SectionServices && m.svcFocus == focusCards && i == m.cardCursor {
			style = m.styles.CardSelected
		}
		body := m.styles.CardTitle.Render(card.Title) + "\n" +
			card.Description + "\n" +
			m.styles.CardMeta.Render(fmt.Sprintf("%s · popularity %d",
				strings.Join(card.Tags, ", "), card.Popularity))
		b.WriteString(style.Width(min(m.width-4, 76)).Render(body))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFAQ() string {
	var b strings.Builder
	b.WriteString(m.sectionHeading(SectionFAQ, "Frequently Asked Questions"))
	b.WriteString("\n")
	for i, item := range m.manifest.FAQ {
		marker := "▸"
		if m.faq.IsOpen(item.ID) {
			marker = "▾"
		}
		line := fmt.Sprintf("%s %s", marker, item.Question)
		if m.section == SectionFAQ && i == m.faqCursor {
			line = m.styles.FieldFocused.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if m.faq.IsOpen(item.ID) {
			b.WriteString(m.styles.Muted.Render("   " + item.Answer))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderTabs() string {
	var b strings.Builder
	b.WriteString(m.sectionHeading(SectionTabs, "Visitor Information"))
	b.WriteString("\n")

	var triggers []string
	for _, tab := range m.manifest.Tabs {
		if m.tabGroup.IsActive(tab.ID) {
			triggers = append(triggers, m.styles.TabActive.Render(tab.Label))
		} else {
			triggers = append(triggers, m.styles.TabInactive.Render(tab.Label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, triggers...))
	b.WriteString("\n")

	// Exactly one panel is rendered; the rest stay out of the output
	// entirely.
	for _, tab := range m.manifest.Tabs {
		if m.tabGroup.IsActive(tab.ID) {
			b.WriteString(m.renderMarkdown(tab.Body))
			break
		}
	}
	return b.String()
}

func (m Model) renderForm() string {
	var b strings.Builder
	heading := m.manifest.Form.Heading
	if heading == "" {
		heading = "Contact Us"
	}
	b.WriteString(m.sectionHeading(SectionForm, heading))
	b.WriteString("\n")
	if m.manifest.Form.Blurb != "" {
		b.WriteString(m.styles.Muted.Render(m.manifest.Form.Blurb))
		b.WriteString("\n")
	}

	if m.banner.visible {
		style := m.styles.BannerError
		if m.banner.success {
			style = m.styles.BannerSuccess
		}
		b.WriteString(style.Render(m.banner.message + "  (esc to dismiss)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fields := []struct {
		label string
		name  string
		view  string
	}{
		{"Name", form.FieldName, m.nameInput.View()},
		{"Email", form.FieldEmail, m.emailInput.View()},
		{"Phone (optional)", form.FieldPhone, m.phoneInput.View()},
		{"Message", form.FieldMessage, m.messageArea.View()},
	}
	for i, f := range fields {
		label := m.styles.FieldLabel.Render(f.label)
		if m.section == SectionForm && m.formFocus == i {
			label = m.styles.FieldFocused.Render("→ ") + label
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n  ")
		b.WriteString(f.view)
		b.WriteString("\n")
		// Inline error, shown once the field has been touched.
		if fld := m.form.Field(f.name); fld.Touched && fld.Err != form.ErrNone {
			b.WriteString("  " + m.styles.FieldError.Render(fld.Err.Message()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderSubmitControl())
	return b.String()
}

// renderSubmitControl reflects the submission machine: disabled and
// spinning while in flight, disabled while the form is invalid.
func (m Model) renderSubmitControl() string {
	switch m.form.Submission() {
	case form.Submitting:
		return "  " + m.spin.View() + m.styles.Muted.Render(" Sending...")
	default:
		label := "[ Send Message ]"
		if !m.form.Valid() {
			return "  " + m.styles.Muted.Render(label)
		}
		if m.section == SectionForm && m.formFocus == len(form.FieldNames) {
			return "  " + m.styles.FieldFocused.Render("→ "+label)
		}
		return "  " + m.styles.Bold.Render(label)
	}
}
