package dialog

import (
	"github.com/atomicstack/listedit/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	confirmCancel = iota
	confirmDelete
)

// ConfirmDialog is a two-choice prompt. Cancel is selected initially.
type ConfirmDialog struct {
	title   string
	message string
	active  int
}

// NewConfirmDialog builds a prompt for the pending delete.
func NewConfirmDialog(req *state.PendingDelete) *ConfirmDialog {
	d := &ConfirmDialog{active: confirmCancel}
	if req != nil {
		d.title = req.Title
		d.message = req.Message
	}
	return d
}

func (d *ConfirmDialog) Title() string   { return d.title }
func (d *ConfirmDialog) Message() string { return d.message }

// Selected reports the answer the highlighted button stands for.
func (d *ConfirmDialog) Selected() state.Confirmation {
	if d.active == confirmDelete {
		return state.Confirmed
	}
	return state.Cancelled
}

// Update consumes key presses and reports the answer once the user decides.
func (d *ConfirmDialog) Update(msg tea.Msg) (state.Confirmation, bool) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return state.Cancelled, false
	}
	switch m.String() {
	case "esc", "n", "N":
		return state.Cancelled, true
	case "y", "Y":
		return state.Confirmed, true
	case "enter", " ":
		return d.Selected(), true
	case "left", "right", "tab", "shift+tab", "h", "l":
		d.active = 1 - d.active
	}
	return state.Cancelled, false
}

// View renders the prompt box.
func (d *ConfirmDialog) View(width int) string {
	buttons := renderButtons([]button{
		{label: "Cancel", active: d.active == confirmCancel},
		{label: "Delete", active: d.active == confirmDelete, danger: true},
	})
	body := []string{renderBody(d.message)}
	return renderFrame(styles.AlertFrame, width, d.title, body, buttons, "←/→ choose · enter confirm · esc cancel")
}
