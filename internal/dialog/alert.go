package dialog

import (
	"github.com/atomicstack/listedit/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// Alert blocks all other input until dismissed.
type Alert struct {
	title   string
	message string
}

func NewAlert(title, message string) *Alert {
	return &Alert{title: title, message: message}
}

func (a *Alert) Title() string   { return a.title }
func (a *Alert) Message() string { return a.message }

// Update reports whether the alert was dismissed.
func (a *Alert) Update(msg tea.Msg) bool {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch m.String() {
	case "enter", "esc", " ", "o", "O":
		return true
	}
	return false
}

func (a *Alert) View(width int) string {
	buttons := renderButtons([]button{{label: "OK", active: true}})
	return renderFrame(styles.AlertFrame, width, a.title, []string{renderBody(a.message)}, buttons, "")
}

func renderBody(text string) string {
	return theme.Render(styles.DialogBody, text)
}
