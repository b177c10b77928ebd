package ui

import (
	"github.com/atomicstack/listedit/internal/logging/events"
	"github.com/atomicstack/listedit/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeList {
		return nil
	}
	m.clearInfo()
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return tea.Quit
	}
	if m.inputFocused {
		return m.handleInputKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.FocusInput):
		return m.focusInput()
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.list.MoveCursorUp)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.list.MoveCursorDown)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(func() bool { return m.list.MoveCursorPageUp(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(func() bool { return m.list.MoveCursorPageDown(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.list.MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.list.MoveCursorEnd)
	case key.Matches(keyMsg, m.keys.Edit):
		return m.beginEditCurrent()
	case key.Matches(keyMsg, m.keys.Delete):
		m.promptDeleteCurrent()
	case key.Matches(keyMsg, m.keys.Copy):
		return m.copyCurrent()
	}
	return nil
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		item, _ := m.list.Current()
		events.UI.Cursor(m.list.Cursor, item.ID)
	}
	m.syncViewport()
}

func (m *Model) copyCurrent() tea.Cmd {
	item, ok := m.list.Current()
	if !ok {
		return nil
	}
	m.errMsg = ""
	return m.bus.Execute(command.Request{
		ID:      actionCopy,
		Label:   item.Value,
		Handler: m.copyAction,
		Item:    item,
	})
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.applyInputWidth()
	m.help.Width = m.width
	m.syncViewport()
	return nil
}
