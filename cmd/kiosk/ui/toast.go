package ui

import (
	"strings"

	"carekiosk/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

// RenderToasts renders the visible toast stack, oldest on top. Width bounds
// each toast's line length.
func RenderToasts(toasts []notify.Toast, s Styles, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		var style lipgloss.Style
		var icon string
		switch t.Kind {
		case notify.Success:
			style, icon = s.ToastSuccess, "✓"
		case notify.Error:
			style, icon = s.ToastError, "✗"
		default:
			style, icon = s.ToastInfo, "•"
		}
		msg := t.Message
		if width > 8 && len(msg) > width-8 {
			msg = msg[:width-8] + "…"
		}
		lines = append(lines, style.Render(icon+" "+msg))
	}
	return strings.Join(lines, "\n")
}
