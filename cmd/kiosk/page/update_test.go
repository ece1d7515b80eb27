package page

import (
	"path/filepath"
	"testing"

	"carekiosk/cmd/kiosk/ui"
	"carekiosk/internal/analytics"
	"carekiosk/internal/catalog"
	"carekiosk/internal/config"
	"carekiosk/internal/content"
	"carekiosk/internal/kvstore"
	"carekiosk/internal/notify"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testManifest() *content.Manifest {
	return &content.Manifest{
		Title:   "Harborview Family Clinic",
		Tagline: "Care for every stage of life",
		Services: []content.Card{
			{ID: "family", Title: "Family Medicine", Description: "Primary care for the whole family", Tags: []string{"primary-care"}, Popularity: 92},
			{ID: "peds", Title: "Pediatric Care", Description: "General pediatrics for newborns through teens", Tags: []string{"children", "primary-care"}, Popularity: 87},
			{ID: "tele", Title: "Telehealth Visits", Description: "Video visits from home", Tags: []string{"telehealth"}, Popularity: 83},
			{ID: "behavioral", Title: "Behavioral Health", Description: "Counseling services", Tags: []string{"specialty", "telehealth"}, Popularity: 79},
			{ID: "womens", Title: "Women's Health", Description: "Annual exams", Tags: []string{"specialty"}, Popularity: 74},
			{ID: "pt", Title: "Physical Therapy", Description: "Injury rehabilitation", Tags: []string{"rehab"}, Popularity: 68},
			{ID: "cardio", Title: "Cardiology Consults", Description: "Heart-health screenings", Tags: []string{"specialty", "seniors"}, Popularity: 61},
			{ID: "seniors", Title: "Senior Wellness", Description: "Wellness visits for older adults", Tags: []string{"seniors", "primary-care"}, Popularity: 55},
		},
		FAQ: []content.FAQItem{
			{ID: "hours", Question: "What are your hours?", Answer: "Weekdays 8-6."},
			{ID: "insurance", Question: "Which plans do you accept?", Answer: "Most major plans."},
			{ID: "records", Question: "How do I get my records?", Answer: "Through the portal."},
		},
		Tabs: []content.Tab{
			{ID: "visit", Label: "Your Visit", Body: "## Plan ahead"},
			{ID: "location", Label: "Location", Body: "## Finding us"},
			{ID: "portal", Label: "Portal", Body: "## Patient portal"},
		},
		Form: content.FormCopy{Heading: "Contact Us"},
	}
}

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.UX.SearchDebounceMs = 5
	cfg.UX.ToastDurationMs = 5
	cfg.Form.MinDelayMs = 1
	cfg.Form.MaxDelayMs = 2

	store := kvstore.Open(filepath.Join(cfg.DataDir, "kv.db"), zap.NewNop())
	t.Cleanup(store.Close)
	events := analytics.New("", zap.NewNop())

	m := New(cfg, testManifest(), store, events, zap.NewNop())
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(msg)
	return mm.(Model), cmd
}

// collect runs a command tree to completion and returns the produced
// messages. Timer commands actually sleep, so tests keep windows short.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(t *testing.T, m Model, s string) (Model, []tea.Cmd) {
	t.Helper()
	var cmds []tea.Cmd
	for _, r := range s {
		var cmd tea.Cmd
		m, cmd = update(t, m, keyRune(r))
		cmds = append(cmds, cmd)
	}
	return m, cmds
}

func findDebounce(t *testing.T, msgs []tea.Msg) (ui.DebounceMsg, bool) {
	t.Helper()
	for _, msg := range msgs {
		if d, ok := msg.(ui.DebounceMsg); ok {
			return d, true
		}
	}
	return ui.DebounceMsg{}, false
}

// --- Services: search, chips, sort -----------------------------------------

func TestSearch_DebouncedPediatricsScenario(t *testing.T) {
	m := testModel(t)
	require.Equal(t, SectionServices, m.section)
	require.Len(t, m.Visible(), 8)

	m, cmds := typeString(t, m, "Pediatrics")

	// A keystroke mid-typing produced a window that later keystrokes
	// superseded; its firing must be ignored.
	stale, ok := findDebounce(t, collect(t, cmds[0]))
	require.True(t, ok)
	m, _ = update(t, m, stale)
	assert.Len(t, m.Visible(), 8, "stale debounce firing must not filter")
	assert.Equal(t, 0, m.events.CountType(analytics.EventSearch))

	// The final keystroke's window elapses and commits the search.
	fresh, ok := findDebounce(t, collect(t, cmds[len(cmds)-1]))
	require.True(t, ok)
	m, _ = update(t, m, fresh)

	require.Len(t, m.Visible(), 1)
	assert.Equal(t, "Pediatric Care", m.Visible()[0].Title)
	assert.Equal(t, 1, m.events.CountType(analytics.EventSearch))
}

func TestSearch_RedundantFiringDoesNotDuplicate(t *testing.T) {
	m := testModel(t)
	m, cmds := typeString(t, m, "tele")
	fresh, ok := findDebounce(t, collect(t, cmds[len(cmds)-1]))
	require.True(t, ok)

	m, _ = update(t, m, fresh)
	require.Equal(t, 1, m.events.CountType(analytics.EventSearch))

	// The same (now stale) firing again changes nothing.
	m, _ = update(t, m, fresh)
	assert.Equal(t, 1, m.events.CountType(analytics.EventSearch))
}

func TestChips_ToggleImmediatelyRecomputes(t *testing.T) {
	m := testModel(t)
	m.svcFocus = focusChips
	m.chipCursor = 0 // "primary-care" is the first tag seen

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.filter.TagActive("primary-care"))
	assert.Len(t, m.Visible(), 3, "chip toggle applies with no debounce")
	assert.Equal(t, 1, m.events.CountType(analytics.EventFilterChange))

	// Toggling off restores the full set.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, m.Visible(), 8)
	assert.Equal(t, 2, m.events.CountType(analytics.EventFilterChange))
}

func TestSort_ToggleImmediatelyReorders(t *testing.T) {
	m := testModel(t)
	m.svcFocus = focusSort

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, catalog.SortPopularity, m.filter.Sort)
	require.NotEmpty(t, m.Visible())
	assert.Equal(t, "Family Medicine", m.Visible()[0].Title, "most popular first")
	assert.Equal(t, 1, m.events.CountType(analytics.EventSortChange))
}

func TestCards_EnterRecordsCTA(t *testing.T) {
	m := testModel(t)
	m.svcFocus = focusCards
	m.cardCursor = 0

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.events.CountType(analytics.EventCTAClick))
	require.Equal(t, 1, m.Toasts().Len())
	assert.NotNil(t, cmd, "a toast expiry must be scheduled")
}

// --- FAQ accordion ----------------------------------------------------------

func TestFAQ_SingleOpenAndPersisted(t *testing.T) {
	m := testModel(t)
	m.section = SectionFAQ

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // open "hours"
	assert.Equal(t, "hours", m.faq.OpenID())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // open "insurance"
	assert.Equal(t, "insurance", m.faq.OpenID())
	assert.False(t, m.faq.IsOpen("hours"), "previous item closed")

	// Persisted on every transition.
	assert.Equal(t, "insurance", m.store.Get(kvstore.KeyAccordionOpen, ""))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}) // close it again
	assert.Equal(t, "", m.faq.OpenID())
}

// --- Tabs -------------------------------------------------------------------

func TestTabs_KeyboardRovingActivation(t *testing.T) {
	m := testModel(t)
	m.section = SectionTabs
	require.Equal(t, "visit", m.tabGroup.ActiveID())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "location", m.tabGroup.ActiveID(), "movement activates in one step")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "portal", m.tabGroup.ActiveID())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "visit", m.tabGroup.ActiveID(), "wraps after last")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "portal", m.tabGroup.ActiveID(), "reverse wraps to last")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, "visit", m.tabGroup.ActiveID())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, "portal", m.tabGroup.ActiveID())
}

// --- Theme, debug overlay, navigation ---------------------------------------

func TestTheme_TogglePersistsAndRecords(t *testing.T) {
	m := testModel(t)
	require.False(t, m.theme.IsDark)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, m.theme.IsDark)
	assert.Equal(t, "dark", m.store.Get(kvstore.KeyTheme, "light"))
	assert.Equal(t, 1, m.events.CountType(analytics.EventThemeChange))

	// A fresh page restores the persisted theme.
	m2 := New(m.cfg, testManifest(), m.store, m.events, zap.NewNop())
	assert.True(t, m2.theme.IsDark)
}

func TestDebugOverlay_ShowsNewestEvents(t *testing.T) {
	m := testModel(t)
	for i := 0; i < 25; i++ {
		m.events.Append(analytics.EventCTAClick, map[string]any{"n": i})
	}
	before := m.events.Len()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.True(t, m.showDebug)
	assert.Contains(t, m.debugVP.View(), analytics.EventCTAClick)
	assert.Equal(t, before, m.events.Len(), "overlay never mutates the log")

	// While open, ordinary keys are swallowed.
	m, _ = update(t, m, keyRune('x'))
	assert.True(t, m.showDebug)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showDebug)
}

func TestSectionCycle_SkipsEmptySections(t *testing.T) {
	manifest := testManifest()
	manifest.FAQ = nil

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	store := kvstore.Open(filepath.Join(cfg.DataDir, "kv.db"), zap.NewNop())
	t.Cleanup(store.Close)
	m := New(cfg, manifest, store, analytics.New("", zap.NewNop()), zap.NewNop())

	require.Equal(t, SectionServices, m.section)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, SectionTabs, m.section, "empty FAQ section is skipped")
}

func TestEmptyManifest_PageStillRuns(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	store := kvstore.Open(filepath.Join(cfg.DataDir, "kv.db"), zap.NewNop())
	t.Cleanup(store.Close)

	m := New(cfg, &content.Manifest{}, store, analytics.New("", zap.NewNop()), zap.NewNop())
	assert.Equal(t, SectionForm, m.section, "form is the only wired section")

	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.NotEmpty(t, mm.(Model).View())
}

func TestContentReload_RewiresSections(t *testing.T) {
	m := testModel(t)
	fresh := testManifest()
	fresh.Services = fresh.Services[:2]

	m, cmd := update(t, m, ContentReloadedMsg{Manifest: fresh})
	assert.Len(t, m.Visible(), 2)
	assert.Equal(t, 1, m.Toasts().Len(), "reload announces itself")
	assert.NotNil(t, cmd)
}

// --- Toasts -----------------------------------------------------------------

func TestToast_ExpiryAndManualDismiss(t *testing.T) {
	m := testModel(t)
	cmd := m.showToast("hello", notify.Info)
	toast := m.Toasts().Active()[0]

	// Manual dismissal first; the later expiry firing must be a no-op.
	m.toasts.Dismiss(toast.ID)
	msgs := collect(t, cmd)
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])
	assert.Zero(t, m.Toasts().Len())

	// And a normal expiry removes exactly its own toast.
	cmd = m.showToast("one", notify.Info)
	m.showToast("two", notify.Success)
	msgs = collect(t, cmd)
	require.Len(t, msgs, 1)
	m, _ = update(t, m, msgs[0])
	require.Equal(t, 1, m.Toasts().Len())
	assert.Equal(t, "two", m.Toasts().Active()[0].Message)
}

// --- Back to top ------------------------------------------------------------

func TestBackToTop_ReducedMotionJumpsInstantly(t *testing.T) {
	m := testModel(t)
	m.cfg.UX.ReducedMotion = true
	m.body.SetContent(m.renderSections())
	m.body.GotoBottom()

	cmd := m.backToTop()
	assert.Nil(t, cmd, "reduced motion scrolls with no animation ticks")
	assert.True(t, m.body.AtTop())
}

func TestBackToTop_AnimatesOtherwise(t *testing.T) {
	m := testModel(t)
	m.body.SetContent(m.renderSections())
	m.body.GotoBottom()

	cmd := m.backToTop()
	require.NotNil(t, cmd, "animated scroll schedules ticks")

	for i := 0; i < 1000 && !m.body.AtTop(); i++ {
		msgs := collect(t, cmd)
		require.NotEmpty(t, msgs)
		m, cmd = update(t, m, msgs[0])
	}
	assert.True(t, m.body.AtTop())
}

// --- Markdown renderer cache ------------------------------------------------

func TestTabRenderer_CachedAcrossRenders(t *testing.T) {
	m := testModel(t)
	require.NotNil(t, m.tabRenderer, "window size builds the renderer")

	before := m.tabRenderer
	_ = m.View()
	_ = m.View()
	assert.Same(t, before, m.tabRenderer, "rendering reuses the cached renderer")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, m.tabRenderer)
	assert.NotSame(t, before, m.tabRenderer, "theme change rebuilds it")
}
