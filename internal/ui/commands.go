package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/listedit/internal/logging"
	"github.com/atomicstack/listedit/internal/logging/events"
	"github.com/atomicstack/listedit/internal/state"
	"github.com/atomicstack/listedit/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const actionCopy = "item:copy"

const infoTTL = 5 * time.Second

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	events.Action.Success(result.Info)
	return nil
}

// copyAction writes the item's value to the clipboard.
func (m *Model) copyAction(item state.Item) tea.Cmd {
	write := m.clipboard
	return func() tea.Msg {
		events.Item.Copy(item.ID)
		if err := write(item.Value); err != nil {
			return command.Result{ID: actionCopy, Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return command.Result{ID: actionCopy, Info: fmt.Sprintf("Copied %q", item.Value)}
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
