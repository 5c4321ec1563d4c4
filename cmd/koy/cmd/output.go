package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/koy/foundation/koy/diag"
)

var (
	colorError = lipgloss.Color("#EF4444") // Red
	colorMuted = lipgloss.Color("#64748B") // Slate 500
	colorTitle = lipgloss.Color("#8B5CF6") // Violet
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
)

// paint styles s unless output.color is off
func paint(style lipgloss.Style, s string) string {
	if !settings.OutputColor {
		return s
	}
	return style.Render(s)
}

// reportError prints err to w; positioned diagnostics get a source snippet
func reportError(w io.Writer, err error) {
	var diagErr *diag.Error
	if !errors.As(err, &diagErr) {
		fmt.Fprintln(w, paint(errorStyle, err.Error()))
		return
	}

	fmt.Fprintln(w, paint(errorStyle, diagErr.Error()))
	if snippet := diagErr.Snippet(); snippet != "" {
		fmt.Fprintln(w, paint(mutedStyle, snippet))
	}
}
