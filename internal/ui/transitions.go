package ui

import (
	"github.com/atomicstack/listedit/internal/logging/events"
	"github.com/atomicstack/listedit/internal/state"
	"github.com/atomicstack/listedit/internal/ui/transition"
	tea "github.com/charmbracelet/bubbletea"
)

// observeChange keeps the rendered list in step with the editor and starts
// the row highlight for the mutation.
func (m *Model) observeChange(change state.Change) {
	m.list.UpdateItems(m.editor.Items())
	m.syncViewport()
	switch change.Kind {
	case state.ChangeInsert:
		events.Item.Add(change.Item.ID, change.Item.Value)
	case state.ChangeUpdate:
		events.Item.Update(change.Item.ID, change.Item.Value)
	case state.ChangeRemove:
		events.Item.Remove(change.Item.ID, change.Index)
	}
	if cmd := m.transitions.Start(change); cmd != nil {
		events.UI.Transition(change.Kind.String(), change.Item.ID)
		m.pendingCmds = append(m.pendingCmds, cmd)
	}
}

func (m *Model) handleTransitionExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(transition.ExpiredMsg)
	if !ok {
		return nil
	}
	if m.transitions.Expire(expired) {
		m.syncViewport()
	}
	return nil
}
