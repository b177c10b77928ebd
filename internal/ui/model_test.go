package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listedit/internal/logging"
	"github.com/atomicstack/listedit/internal/state"
)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	n := 0
	if opts.IDs == nil {
		opts.IDs = func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = func(string) error { return nil }
	}
	return NewModel(opts)
}

func addItem(h *Harness, text string) {
	if !h.Model().inputFocused {
		h.Press("a")
	}
	h.Type(text)
	h.Press("enter")
}

func values(items []state.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Value
	}
	return out
}

func expectValues(t *testing.T, m *Model, want ...string) {
	t.Helper()
	got := values(m.Items())
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected items %q, got %q", want, got)
	}
}

func TestNewModelStartsWithFocusedInput(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.Mode() != ModeList {
		t.Fatalf("expected list mode, got %v", m.Mode())
	}
	if !m.inputFocused {
		t.Fatalf("expected new-item input to be focused")
	}
	if len(m.Items()) != 0 {
		t.Fatalf("expected empty list")
	}
	if m.title != defaultTitle {
		t.Fatalf("expected default title, got %q", m.title)
	}
	if m.Init() != nil {
		t.Fatalf("expected no init command without blinking cursor")
	}
}

func TestWorkedExample(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	addItem(h, "A")
	addItem(h, "B")
	addItem(h, "C")
	expectValues(t, h.Model(), "A", "B", "C")

	h.Press("up")
	h.Press("e")
	if h.Model().Mode() != ModeEditForm {
		t.Fatalf("expected edit form, got %v", h.Model().Mode())
	}
	edit := h.Model().EditState()
	if !edit.Editing || edit.ItemID != "id-2" || edit.Text != "B" || !edit.DialogVisible {
		t.Fatalf("unexpected edit state %+v", edit)
	}
	h.Type("2")
	if got := h.Model().EditState().Text; got != "B2" {
		t.Fatalf("expected pending edit text B2, got %q", got)
	}
	h.Press("enter")
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected list mode after update, got %v", h.Model().Mode())
	}
	if h.Model().EditState().Editing {
		t.Fatalf("expected edit state reset")
	}

	h.Press("home")
	h.Press("d")
	if h.Model().Mode() != ModeConfirmDelete {
		t.Fatalf("expected confirmation, got %v", h.Model().Mode())
	}
	h.Press("y")
	expectValues(t, h.Model(), "B2", "C")
	items := h.Model().Items()
	if items[0].ID != "id-2" || items[1].ID != "id-3" {
		t.Fatalf("expected ids preserved, got %+v", items)
	}
}

func TestAddStoresRawTextAndSelectsItem(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	addItem(h, "  milk ")
	expectValues(t, h.Model(), "  milk ")
	m := h.Model()
	if m.inputFocused {
		t.Fatalf("expected focus to move to the list")
	}
	if m.input.Value() != "" || m.editor.NewItemText() != "" {
		t.Fatalf("expected pending text cleared")
	}
	if item, ok := m.list.Current(); !ok || item.ID != "id-1" {
		t.Fatalf("expected cursor on new item, got %+v", item)
	}
}

func TestAddEmptyShowsValidationAlert(t *testing.T) {
	for _, text := range []string{"", "   "} {
		h := NewHarness(newTestModel(t, Options{}))
		h.Type(text)
		h.Press("enter")
		m := h.Model()
		if m.Mode() != ModeAlert {
			t.Fatalf("text %q: expected alert, got %v", text, m.Mode())
		}
		if m.alert.Title() != "Validation" || m.alert.Message() != "Item cannot be empty!" {
			t.Fatalf("unexpected alert %q / %q", m.alert.Title(), m.alert.Message())
		}
		if len(m.Items()) != 0 {
			t.Fatalf("expected no items added")
		}
		h.Press("q")
		if h.Model().Mode() != ModeAlert || h.Quit() {
			t.Fatalf("expected alert to block other keys")
		}
		h.Press("enter")
		if h.Model().Mode() != ModeList {
			t.Fatalf("expected list after dismissing, got %v", h.Model().Mode())
		}
		if h.Model().input.Value() != text {
			t.Fatalf("expected input text kept, got %q", h.Model().input.Value())
		}
	}
}

func TestEditValidationKeepsDialogOpen(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	addItem(h, "bread")
	h.Press("e")
	h.Press("ctrl+u")
	h.Type("  ")
	h.Press("enter")
	if h.Model().Mode() != ModeAlert {
		t.Fatalf("expected validation alert, got %v", h.Model().Mode())
	}
	edit := h.Model().EditState()
	if !edit.Editing || edit.Text != "  " {
		t.Fatalf("expected edit state kept, got %+v", edit)
	}
	h.Press("esc")
	if h.Model().Mode() != ModeEditForm {
		t.Fatalf("expected edit form after alert, got %v", h.Model().Mode())
	}
	h.Type("rye")
	h.Press("enter")
	expectValues(t, h.Model(), "  rye")
}

func TestEditCancelResetsState(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	addItem(h, "eggs")
	h.Press("e")
	h.Type("!!")
	h.Press("esc")
	if h.Model().Mode() != ModeList {
		t.Fatalf("expected list mode, got %v", h.Model().Mode())
	}
	if edit := h.Model().EditState(); edit != (state.EditState{}) {
		t.Fatalf("expected idle edit state, got %+v", edit)
	}
	expectValues(t, h.Model(), "eggs")

	h.Press("e")
	h.Press("tab")
	h.Press("tab")
	h.Press("enter")
	if h.Model().Mode() != ModeList || h.Model().EditState().Editing {
		t.Fatalf("expected cancel button to close the dialog")
	}
}

func TestDeleteDeclinedKeepsItem(t *testing.T) {
	for _, key := range []string{"esc", "n", "enter"} {
		h := NewHarness(newTestModel(t, Options{}))
		addItem(h, "tea")
		h.Press("d")
		if h.Model().confirm.Title() != "Confirm Deletion" {
			t.Fatalf("unexpected title %q", h.Model().confirm.Title())
		}
		h.Press(key)
		if h.Model().Mode() != ModeList {
			t.Fatalf("%s: expected list mode, got %v", key, h.Model().Mode())
		}
		expectValues(t, h.Model(), "tea")
	}
}

func TestDeleteConfirmedViaButton(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	addItem(h, "a")
	addItem(h, "b")
	h.Press("d")
	h.Press("right")
	h.Press("enter")
	expectValues(t, h.Model(), "a")
	if item, ok := h.Model().list.Current(); !ok || item.Value != "a" {
		t.Fatalf("expected cursor clamped onto remaining item")
	}
}

func TestListKeysIgnoredOnEmptyList(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Press("esc")
	for _, key := range []string{"e", "d", "y", "down", "end"} {
		h.Press(key)
		if h.Model().Mode() != ModeList {
			t.Fatalf("%s: expected list mode, got %v", key, h.Model().Mode())
		}
	}
}

func TestCopyWritesClipboard(t *testing.T) {
	var copied []string
	h := NewHarness(newTestModel(t, Options{Clipboard: func(s string) error {
		copied = append(copied, s)
		return nil
	}}))
	addItem(h, "coffee")
	h.Press("y")
	if len(copied) != 1 || copied[0] != "coffee" {
		t.Fatalf("expected clipboard write, got %q", copied)
	}
	if info := h.Model().currentInfo(); !strings.Contains(info, "coffee") {
		t.Fatalf("expected copy info, got %q", info)
	}
}

func TestCopyFailureSetsError(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })

	h := NewHarness(newTestModel(t, Options{Clipboard: func(string) error {
		return errors.New("no clipboard")
	}}))
	addItem(h, "coffee")
	h.Press("y")
	if got := h.Model().errMsg; got != "copy to clipboard: no clipboard" {
		t.Fatalf("unexpected error message %q", got)
	}
	expectValues(t, h.Model(), "coffee")
}

func TestQuitKeys(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.Type("q")
	if h.Quit() {
		t.Fatalf("expected q to be typed into the input")
	}
	h.Press("esc")
	h.Press("q")
	if !h.Quit() {
		t.Fatalf("expected q to quit from the list")
	}

	h = NewHarness(newTestModel(t, Options{}))
	h.Press("ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit from the input")
	}
}

func TestCursorNavigation(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	for _, v := range []string{"a", "b", "c"} {
		addItem(h, v)
	}
	m := h.Model()
	if m.list.Cursor != 2 {
		t.Fatalf("expected cursor on last added item, got %d", m.list.Cursor)
	}
	h.Press("down")
	if m.list.Cursor != 0 {
		t.Fatalf("expected wrap to top, got %d", m.list.Cursor)
	}
	h.Press("k")
	if m.list.Cursor != 2 {
		t.Fatalf("expected wrap to bottom, got %d", m.list.Cursor)
	}
	h.Press("home")
	h.Press("j")
	if m.list.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.list.Cursor)
	}
}

func TestInitialSizeLaysOutFirstFrame(t *testing.T) {
	m := newTestModel(t, Options{InitialWidth: 50, InitialHeight: 12})
	if m.width != 50 || m.height != 12 {
		t.Fatalf("expected 50x12 before any resize, got %dx%d", m.width, m.height)
	}
	if m.input.Width != 50-addButtonWidth-2 {
		t.Fatalf("expected input sized from initial width, got %d", m.input.Width)
	}
	for _, line := range strings.Split(m.View(), "\n") {
		if w := len([]rune(stripANSI(line))); w > 50 {
			t.Fatalf("expected first frame within 50 columns, got %d: %q", w, line)
		}
	}

	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.width != 90 || m.height != 30 {
		t.Fatalf("expected resize to apply, got %dx%d", m.width, m.height)
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	m := newTestModel(t, Options{Width: 60, Height: 20, InitialWidth: 100, InitialHeight: 40})
	if m.width != 60 || m.height != 20 {
		t.Fatalf("expected fixed size to win, got %dx%d", m.width, m.height)
	}
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	if m.width != 60 || m.height != 20 {
		t.Fatalf("expected fixed size kept after resize, got %dx%d", m.width, m.height)
	}
}
