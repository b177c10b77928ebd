package dialog

import (
	"github.com/atomicstack/listedit/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type editFocus int

const (
	editFocusInput editFocus = iota
	editFocusUpdate
	editFocusCancel
	editFocusCount
)

// EditForm is the "Edit Item" dialog.
type EditForm struct {
	input  textinput.Model
	itemID string
	focus  editFocus
	title  string
	help   string
}

// NewEditForm opens the dialog for itemID with value pre-filled. When blink
// is false the text cursor is drawn statically.
func NewEditForm(itemID, value string, blink bool) *EditForm {
	ti := textinput.New()
	ti.Placeholder = "Edit item"
	ti.Prompt = "» "
	configureInput(&ti, blink)
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	return &EditForm{
		input:  ti,
		itemID: itemID,
		title:  "Edit Item",
		help:   "enter update · tab switch · esc cancel",
	}
}

func (f *EditForm) ItemID() string    { return f.itemID }
func (f *EditForm) Title() string     { return f.title }
func (f *EditForm) Help() string      { return f.help }
func (f *EditForm) InputView() string { return f.input.View() }

// Value returns the input text exactly as typed.
func (f *EditForm) Value() string { return f.input.Value() }

// FocusedButton returns "update", "cancel" or "" when the input has focus.
func (f *EditForm) FocusedButton() string {
	switch f.focus {
	case editFocusUpdate:
		return "update"
	case editFocusCancel:
		return "cancel"
	default:
		return ""
	}
}

// Update handles a message and reports whether the form was submitted or
// cancelled. A submitted form stays usable so the caller can keep it open
// when validation fails.
func (f *EditForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+u":
			if f.focus == editFocusInput && f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		case "tab", "down":
			return f.setFocus((f.focus + 1) % editFocusCount), false, false
		case "shift+tab", "up":
			return f.setFocus((f.focus + editFocusCount - 1) % editFocusCount), false, false
		case "left", "right":
			if f.focus != editFocusInput {
				if f.focus == editFocusUpdate {
					return f.setFocus(editFocusCancel), false, false
				}
				return f.setFocus(editFocusUpdate), false, false
			}
		case "esc":
			events.Edit.Cancel(f.itemID, events.EditReasonEscape)
			return nil, false, true
		case "enter":
			if f.focus == editFocusCancel {
				events.Edit.Cancel(f.itemID, events.EditReasonButton)
				return nil, false, true
			}
			return nil, true, false
		}
	}
	if f.focus != editFocusInput {
		return nil, false, false
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

// ReturnFocus puts the cursor back into the text input, used after a
// validation alert is dismissed.
func (f *EditForm) ReturnFocus() tea.Cmd {
	return f.setFocus(editFocusInput)
}

// Blur drops keyboard focus while an alert is stacked above the form.
func (f *EditForm) Blur() {
	f.input.Blur()
}

func (f *EditForm) setFocus(next editFocus) tea.Cmd {
	f.focus = next
	if next == editFocusInput {
		return f.input.Focus()
	}
	f.input.Blur()
	return nil
}

// View renders the dialog box.
func (f *EditForm) View(width int) string {
	buttons := renderButtons([]button{
		{label: "Update", active: f.focus == editFocusUpdate},
		{label: "Cancel", active: f.focus == editFocusCancel},
	})
	return renderFrame(styles.DialogFrame, width, f.title, []string{f.InputView()}, buttons, f.help)
}

func configureInput(ti *textinput.Model, blink bool) {
	if styles.InputPrompt != nil {
		ti.PromptStyle = styles.InputPrompt.Copy()
	}
	if styles.InputText != nil {
		ti.TextStyle = styles.InputText.Copy()
	}
	if styles.Placeholder != nil {
		ti.PlaceholderStyle = styles.Placeholder.Copy()
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = styles.Cursor.Copy()
	}
	if !blink {
		ti.Cursor.SetMode(cursor.CursorStatic)
	}
}

// NewItemInput builds the single-line "Add new item" field used on the main
// screen; it shares styling with the edit form.
func NewItemInput(blink bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Add new item"
	ti.Prompt = "» "
	configureInput(&ti, blink)
	return ti
}
