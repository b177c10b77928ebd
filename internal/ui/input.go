package ui

import (
	"fmt"

	"github.com/atomicstack/listedit/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const addButtonWidth = 12 // "[ Add ]" with its padding, the gap and the cursor cell

func (m *Model) updateInputModel(msg tea.Msg) tea.Cmd {
	if !m.inputFocused {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.editor.SetNewItemText(m.input.Value())
	return cmd
}

func (m *Model) focusInput() tea.Cmd {
	if m.inputFocused {
		return nil
	}
	m.inputFocused = true
	events.UI.Focus("input")
	return m.input.Focus()
}

func (m *Model) blurInput() {
	if !m.inputFocused {
		return
	}
	m.inputFocused = false
	m.input.Blur()
	events.UI.Focus("list")
}

func (m *Model) applyInputWidth() {
	if m.width <= 0 {
		m.input.Width = 0
		return
	}
	w := m.width - addButtonWidth - lipgloss.Width(m.input.Prompt)
	if w < 8 {
		w = 8
	}
	m.input.Width = w
}

// handleInputKey processes keys while the new-item field has focus.
func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitNewItem()
	case key.Matches(msg, m.keys.Blur):
		m.blurInput()
		return nil
	}
	m.errMsg = ""
	return m.updateInputModel(msg)
}

// submitNewItem runs the add operation with whatever the field holds.
func (m *Model) submitNewItem() tea.Cmd {
	text := m.input.Value()
	m.editor.SetNewItemText(text)
	item, err := m.editor.AddItem(text)
	if err != nil {
		return m.handleOperationError(err, ModeList)
	}
	m.input.SetValue("")
	m.input.CursorStart()
	m.blurInput()
	m.list.Select(item.ID)
	m.syncViewport()
	m.errMsg = ""
	if m.verbose {
		m.setInfo(fmt.Sprintf("Added %q", item.Value))
	}
	return nil
}
