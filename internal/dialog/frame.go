package dialog

import (
	"strings"

	"github.com/atomicstack/listedit/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultFrameWidth = 44
	minFrameWidth     = 24
)

var styles = theme.Default()

type button struct {
	label  string
	active bool
	danger bool
}

func frameWidth(width int) int {
	w := defaultFrameWidth
	if width > 0 && width-4 < w {
		w = width - 4
	}
	if w < minFrameWidth {
		w = minFrameWidth
	}
	return w
}

func renderButtons(buttons []button) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		label := "[ " + b.label + " ]"
		style := styles.Button
		switch {
		case b.active && b.danger:
			style = styles.DangerButton
		case b.active:
			style = styles.ActiveButton
		}
		parts = append(parts, theme.Render(style, label))
	}
	return strings.Join(parts, "  ")
}

// renderFrame lays out title, body lines and a button row inside a bordered
// box sized for the terminal width.
func renderFrame(frame *lipgloss.Style, width int, title string, body []string, buttons string, help string) string {
	lines := []string{theme.Render(styles.DialogTitle, title), ""}
	lines = append(lines, body...)
	if buttons != "" {
		lines = append(lines, "", buttons)
	}
	if help != "" {
		lines = append(lines, "", theme.Render(styles.Footer, help))
	}
	content := strings.Join(lines, "\n")
	if frame == nil {
		return content
	}
	// Width on a bordered style excludes the border itself.
	return frame.Copy().Width(frameWidth(width) - 2).Render(content)
}
