package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/listedit/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

func TestExecuteRunsHandler(t *testing.T) {
	var got state.Item
	handler := func(item state.Item) tea.Cmd {
		got = item
		return func() tea.Msg { return Result{ID: "copy", Info: "done"} }
	}
	item := state.Item{ID: "id-1", Value: "milk"}
	msg := New().Execute(Request{ID: "copy", Label: "milk", Handler: handler, Item: item})()
	result, ok := msg.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", msg)
	}
	if result.Info != "done" || got != item {
		t.Fatalf("unexpected result %#v for item %#v", result, got)
	}
}

func TestExecuteWithoutHandler(t *testing.T) {
	if msg := New().Execute(Request{ID: "noop"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
	noop := func(state.Item) tea.Cmd { return nil }
	if msg := New().Execute(Request{ID: "noop", Handler: noop})(); msg != nil {
		t.Fatalf("expected nil message from nil command, got %#v", msg)
	}
}

func TestExecutePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	handler := func(state.Item) tea.Cmd {
		return func() tea.Msg { return Result{Err: boom} }
	}
	msg := New().Execute(Request{ID: "copy", Handler: handler})()
	if result := msg.(Result); !errors.Is(result.Err, boom) {
		t.Fatalf("expected boom, got %v", result.Err)
	}
}
