package ui

import (
	"strings"
	"testing"

	"carekiosk/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestThemeByName(t *testing.T) {
	assert.False(t, ThemeByName("light").IsDark)
	assert.True(t, ThemeByName("dark").IsDark)
	assert.False(t, ThemeByName("").IsDark, "unknown names default to light")
	assert.False(t, ThemeByName("solarized").IsDark)
}

func TestNewStyles_FollowsTheme(t *testing.T) {
	light := NewStyles(LightTheme())
	dark := NewStyles(DarkTheme())
	assert.Equal(t, "light", light.Theme.Name)
	assert.Equal(t, "dark", dark.Theme.Name)
}

func TestRenderToasts(t *testing.T) {
	s := NewStyles(LightTheme())

	assert.Empty(t, RenderToasts(nil, s, 80))

	toasts := []notify.Toast{
		{Message: "first", Kind: notify.Info},
		{Message: "second", Kind: notify.Success},
		{Message: "third", Kind: notify.Error},
	}
	out := RenderToasts(toasts, s, 80)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "third")
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"),
		"oldest renders on top")
	assert.Less(t, strings.Index(out, "second"), strings.Index(out, "third"))
}

func TestRenderToasts_TruncatesToWidth(t *testing.T) {
	s := NewStyles(LightTheme())
	long := []notify.Toast{{Message: strings.Repeat("x", 200), Kind: notify.Info}}
	out := RenderToasts(long, s, 40)
	assert.Contains(t, out, "…")
}
