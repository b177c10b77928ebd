package command

import (
	"fmt"

	"github.com/atomicstack/listedit/internal/logging/events"
	"github.com/atomicstack/listedit/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Action runs a side effect for an item.
type Action func(state.Item) tea.Cmd

// Result communicates the outcome of executing an action.
type Result struct {
	ID   string
	Info string
	Err  error
}

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
	Item    state.Item
}

// Bus coordinates the execution of item actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(req.Item)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
