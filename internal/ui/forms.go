package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/listedit/internal/dialog"
	"github.com/atomicstack/listedit/internal/logging"
	"github.com/atomicstack/listedit/internal/logging/events"
	"github.com/atomicstack/listedit/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) beginEditCurrent() tea.Cmd {
	item, ok := m.list.Current()
	if !ok {
		return nil
	}
	return m.beginEdit(item.ID)
}

func (m *Model) beginEdit(id string) tea.Cmd {
	if !m.editor.BeginEdit(id) {
		return nil
	}
	edit := m.editor.EditState()
	events.Edit.Begin(edit.ItemID)
	m.blurInput()
	m.editForm = dialog.NewEditForm(edit.ItemID, edit.Text, m.blink)
	m.errMsg = ""
	m.setMode(ModeEditForm)
	if m.blink {
		return m.editForm.ReturnFocus()
	}
	return nil
}

func (m *Model) handleEditForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.editForm == nil {
		return false, nil
	}
	cmd, done, cancel := m.editForm.Update(msg)
	m.editor.SetEditText(m.editForm.Value())
	if cancel {
		m.closeEditForm()
		return true, cmd
	}
	if done {
		return true, m.submitEdit()
	}
	return true, cmd
}

// submitEdit runs the update operation. A validation failure keeps the
// dialog open underneath the alert.
func (m *Model) submitEdit() tea.Cmd {
	edit := m.editor.EditState()
	events.Edit.Submit(edit.ItemID, edit.Text)
	item, updated, err := m.editor.UpdateItem()
	if err != nil {
		return m.handleOperationError(err, ModeEditForm)
	}
	m.editForm = nil
	m.setMode(ModeList)
	if !updated {
		events.Item.UpdateMissing(edit.ItemID)
		return nil
	}
	if m.verbose {
		m.setInfo(fmt.Sprintf("Updated %q", item.Value))
	}
	return nil
}

// closeEditForm is the dialog's Cancel path.
func (m *Model) closeEditForm() {
	m.editor.ResetEditState()
	m.editForm = nil
	m.setMode(ModeList)
}

func (m *Model) promptDeleteCurrent() {
	item, ok := m.list.Current()
	if !ok {
		return
	}
	m.promptDelete(item.ID)
}

func (m *Model) promptDelete(id string) {
	req := m.editor.DeleteItem(id)
	events.Item.DeletePrompt(id)
	m.pendingDelete = req
	m.confirm = dialog.NewConfirmDialog(req)
	m.errMsg = ""
	m.setMode(ModeConfirmDelete)
}

func (m *Model) handleConfirmDelete(msg tea.Msg) (bool, tea.Cmd) {
	if m.confirm == nil || m.pendingDelete == nil {
		m.setMode(ModeList)
		return false, nil
	}
	answer, done := m.confirm.Update(msg)
	if !done {
		return true, nil
	}
	m.resolveDelete(answer)
	return true, nil
}

func (m *Model) resolveDelete(answer state.Confirmation) {
	req := m.pendingDelete
	m.pendingDelete = nil
	m.confirm = nil
	m.setMode(ModeList)
	events.Item.DeleteResolve(req.ItemID, answer.String())
	if req.Resolve(answer) && m.verbose {
		m.setInfo("Deleted item")
	}
}

// handleOperationError shows a validation alert over returnTo, or records
// any other error on the status line.
func (m *Model) handleOperationError(err error, returnTo Mode) tea.Cmd {
	var verr *state.ValidationError
	if errors.As(err, &verr) {
		events.Item.Validation(verr.Field)
		m.alert = dialog.NewAlert(verr.Title, verr.Message)
		m.alertReturn = returnTo
		if m.editForm != nil {
			m.editForm.Blur()
		}
		m.setMode(ModeAlert)
		return nil
	}
	logging.Error(err)
	events.Action.Error(err)
	m.errMsg = err.Error()
	return nil
}

func (m *Model) handleAlert(msg tea.Msg) (bool, tea.Cmd) {
	if m.alert == nil {
		m.setMode(ModeList)
		return false, nil
	}
	if !m.alert.Update(msg) {
		return true, nil
	}
	m.alert = nil
	returnTo := m.alertReturn
	m.alertReturn = ModeList
	if returnTo == ModeEditForm && m.editForm != nil {
		m.setMode(ModeEditForm)
		return true, m.editForm.ReturnFocus()
	}
	m.setMode(ModeList)
	return true, nil
}
