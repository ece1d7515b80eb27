// Package page is the kiosk's interactive page: one Bubble Tea model that
// wires the content sections to their controllers. The interface is split
// across files for maintainability:
//   - model.go: types, construction, Init (this file)
//   - model_update.go: Update loop and timer messages
//   - model_key_handler.go: keyboard routing
//   - view.go: rendering
//   - helpers.go: small shared helpers
package page

import (
	"math/rand"
	"time"

	"carekiosk/cmd/kiosk/ui"
	"carekiosk/internal/accordion"
	"carekiosk/internal/analytics"
	"carekiosk/internal/catalog"
	"carekiosk/internal/config"
	"carekiosk/internal/content"
	"carekiosk/internal/form"
	"carekiosk/internal/kvstore"
	"carekiosk/internal/notify"
	"carekiosk/internal/tabs"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// Section identifies one page section. Sections with no content are
// skipped by navigation and never receive input.
type Section int

const (
	SectionServices Section = iota
	SectionFAQ
	SectionTabs
	SectionForm
)

func (s Section) String() string {
	switch s {
	case SectionServices:
		return "Services"
	case SectionFAQ:
		return "FAQ"
	case SectionTabs:
		return "Info"
	case SectionForm:
		return "Contact"
	}
	return "?"
}

// servicesFocus is the sub-focus inside the services section.
type servicesFocus int

const (
	focusSearch servicesFocus = iota
	focusChips
	focusSort
	focusCards
)

// bannerState is the form's dismissible outcome banner.
type bannerState struct {
	visible bool
	success bool
	message string
}

// Model is the page bootstrap: it owns every controller and routes input
// events to them on the single event loop.
type Model struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *kvstore.Store
	events *analytics.Log

	manifest *content.Manifest

	theme  ui.Theme
	styles ui.Styles

	section Section

	// Services section
	searchInput    textinput.Model
	searchDebounce *ui.Debouncer
	filter         catalog.FilterState
	visible        []content.Card
	tagUniverse    []string
	svcFocus       servicesFocus
	chipCursor     int
	cardCursor     int
	sortCursor     catalog.SortKey

	// FAQ section
	faq       *accordion.Group
	faqCursor int

	// Info tabs section
	tabGroup    *tabs.Group
	tabRenderer *glamour.TermRenderer

	// Contact form section
	form        *form.State
	nameInput   textinput.Model
	emailInput  textinput.Model
	phoneInput  textinput.Model
	messageArea textarea.Model
	formFocus   int // index into form.FieldNames; len(form.FieldNames) = submit control
	spin        spinner.Model
	banner      bannerState

	// Notifications and debug overlay
	toasts    *notify.Queue
	showDebug bool
	debugVP   viewport.Model

	// Page body scrolling
	body        viewport.Model
	width       int
	height      int
	ready       bool
	quitting    bool
	statusFlash string

	// Simulated submission outcome; swapped for deterministic funcs in
	// tests.
	outcome func() bool
	delay   func() time.Duration
}

// New builds the page model. A nil or empty manifest section simply leaves
// that section unwired; the rest of the page stays interactive.
func New(cfg *config.Config, manifest *content.Manifest, store *kvstore.Store, events *analytics.Log, log *zap.Logger) Model {
	theme := ui.ThemeByName(store.Get(kvstore.KeyTheme, "light"))
	styles := ui.NewStyles(theme)

	search := textinput.New()
	search.Placeholder = "Search services..."
	search.Prompt = "⌕ "
	search.CharLimit = 120
	search.Focus()

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 120
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	phone := textinput.New()
	phone.Placeholder = "(555) 123-4567"
	phone.CharLimit = 14
	msg := textarea.New()
	msg.Placeholder = "How can we help? (20-1000 characters)"
	msg.CharLimit = 1200
	msg.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.FieldFocused

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	m := Model{
		cfg:            cfg,
		log:            log,
		store:          store,
		events:         events,
		manifest:       manifest,
		theme:          theme,
		styles:         styles,
		searchInput:    search,
		searchDebounce: ui.NewDebouncer("search", cfg.UX.SearchDebounce()),
		filter:         catalog.NewFilterState(),
		nameInput:      name,
		emailInput:     email,
		phoneInput:     phone,
		messageArea:    msg,
		form:           form.NewState(),
		spin:           sp,
		toasts:         notify.NewQueue(),
		outcome: func() bool {
			return rng.Float64() < cfg.Form.SuccessRate
		},
		delay: func() time.Duration {
			span := cfg.Form.MaxDelay() - cfg.Form.MinDelay()
			if span <= 0 {
				return cfg.Form.MinDelay()
			}
			return cfg.Form.MinDelay() + time.Duration(rng.Int63n(int64(span)))
		},
	}

	m.applyManifest(manifest)
	m.section = m.firstWiredSection()
	return m
}

// applyManifest (re)wires the sections from content. Called at build time
// and again on live reload.
func (m *Model) applyManifest(manifest *content.Manifest) {
	m.manifest = manifest
	if manifest == nil {
		m.manifest = &content.Manifest{}
	}

	m.tagUniverse = m.manifest.TagUniverse()
	if m.chipCursor >= len(m.tagUniverse) {
		m.chipCursor = 0
	}
	m.visible = catalog.Visible(m.manifest.Services, m.filter)
	if m.cardCursor >= len(m.visible) {
		m.cardCursor = 0
	}

	faqIDs := make([]string, len(m.manifest.FAQ))
	for i, it := range m.manifest.FAQ {
		faqIDs[i] = it.ID
	}
	if m.faq == nil {
		m.faq = accordion.New(faqIDs, m.store)
	} else {
		m.faq.SetItems(faqIDs)
	}
	if m.faqCursor >= len(faqIDs) {
		m.faqCursor = 0
	}

	tabIDs := make([]string, len(m.manifest.Tabs))
	for i, t := range m.manifest.Tabs {
		tabIDs[i] = t.ID
	}
	if m.tabGroup == nil {
		m.tabGroup = tabs.New(tabIDs)
	} else {
		m.tabGroup.SetTabs(tabIDs)
	}
}

// Init starts the cursor blink and records the page load.
func (m Model) Init() tea.Cmd {
	m.events.Append(analytics.EventPageLoad, map[string]any{
		"services": len(m.manifest.Services),
		"theme":    m.theme.Name,
	})
	return textinput.Blink
}

// sectionWired reports whether a section has content behind it.
func (m Model) sectionWired(s Section) bool {
	switch s {
	case SectionServices:
		return len(m.manifest.Services) > 0
	case SectionFAQ:
		return len(m.manifest.FAQ) > 0
	case SectionTabs:
		return len(m.manifest.Tabs) > 0
	case SectionForm:
		return true
	}
	return false
}

func (m Model) firstWiredSection() Section {
	for s := SectionServices; s <= SectionForm; s++ {
		if m.sectionWired(s) {
			return s
		}
	}
	return SectionForm
}

// Toasts exposes the toast queue for tests.
func (m Model) Toasts() *notify.Queue { return m.toasts }

// Form exposes the form state for tests.
func (m Model) Form() *form.State { return m.form }

// Visible exposes the current visible card set for tests.
func (m Model) Visible() []content.Card { return m.visible }
