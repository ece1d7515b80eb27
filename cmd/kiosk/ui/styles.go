// Package ui provides the visual styling and timer helpers for the kiosk.
// Light and dark themes mirror the clinic brand palette.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand palette.
var (
	// Light mode
	LightBackground = lipgloss.Color("#f6f8fa")
	LightForeground = lipgloss.Color("#152a42")
	LightPrimary    = lipgloss.Color("#1d6fb8") // clinic blue
	LightAccent     = lipgloss.Color("#2fa37c") // calm green
	LightMuted      = lipgloss.Color("#7a8699")
	LightBorder     = lipgloss.Color("#d4dae2")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark mode
	DarkBackground = lipgloss.Color("#101824")
	DarkForeground = lipgloss.Color("#e8ecf1")
	DarkPrimary    = lipgloss.Color("#5aa7e0")
	DarkAccent     = lipgloss.Color("#4cc29a")
	DarkMuted      = lipgloss.Color("#6b7689")
	DarkBorder     = lipgloss.Color("#2b3850")
	DarkCard       = lipgloss.Color("#1a2535")

	// Semantic colors, same in both modes
	ColorSuccess = lipgloss.Color("#2fa37c")
	ColorError   = lipgloss.Color("#d6455d")
	ColorWarning = lipgloss.Color("#e0a63c")
	ColorInfo    = lipgloss.Color("#1d6fb8")
)

// Theme holds one color scheme. The active theme is persisted across
// sessions under the kvstore theme key.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the default light scheme.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark scheme.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName maps a persisted theme name to a Theme, defaulting to light
// for anything unrecognized.
func ThemeByName(name string) Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the pre-built lipgloss styles for one theme.
type Styles struct {
	Theme Theme

	Header  lipgloss.Style
	Tagline lipgloss.Style
	Footer  lipgloss.Style

	SectionTitle    lipgloss.Style
	SectionInactive lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style

	Chip       lipgloss.Style
	ChipActive lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	FieldLabel   lipgloss.Style
	FieldError   lipgloss.Style
	FieldFocused lipgloss.Style

	BannerSuccess lipgloss.Style
	BannerError   lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	Overlay lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t Theme) Styles {
	chip := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(t.Muted).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	banner := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)

	return Styles{
		Theme: t,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(0, 1),
		Tagline: lipgloss.NewStyle().
			Italic(true).
			Foreground(t.Muted).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		SectionInactive: lipgloss.NewStyle().
			Foreground(t.Muted),

		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Border),
		CardSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Primary),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Foreground),
		CardMeta: lipgloss.NewStyle().
			Foreground(t.Muted),

		Chip:       chip,
		ChipActive: chip.Foreground(t.Background).Background(t.Primary).BorderForeground(t.Primary),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(t.Primary).
			Underline(true),
		TabInactive: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(t.Muted),

		FieldLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Foreground),
		FieldError: lipgloss.NewStyle().
			Foreground(ColorError),
		FieldFocused: lipgloss.NewStyle().
			Foreground(t.Primary),

		BannerSuccess: banner.Foreground(ColorSuccess),
		BannerError:   banner.Foreground(ColorError),

		ToastInfo:    toast.BorderForeground(ColorInfo).Foreground(t.Foreground),
		ToastSuccess: toast.BorderForeground(ColorSuccess).Foreground(t.Foreground),
		ToastError:   toast.BorderForeground(ColorError).Foreground(t.Foreground),

		Overlay: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Accent),
		Muted: lipgloss.NewStyle().Foreground(t.Muted),
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}
