package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/listedit/internal/dialog"
	"github.com/atomicstack/listedit/internal/logging/events"
	"github.com/atomicstack/listedit/internal/state"
	"github.com/atomicstack/listedit/internal/theme"
	"github.com/atomicstack/listedit/internal/ui/command"
	uistate "github.com/atomicstack/listedit/internal/ui/state"
	"github.com/atomicstack/listedit/internal/ui/transition"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeList Mode = iota
	ModeEditForm
	ModeConfirmDelete
	ModeAlert
)

func (m Mode) String() string {
	switch m {
	case ModeEditForm:
		return "edit"
	case ModeConfirmDelete:
		return "confirm-delete"
	case ModeAlert:
		return "alert"
	default:
		return "list"
	}
}

const defaultTitle = "CRUD Operation"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	// Width and Height pin the layout; WindowSizeMsg no longer changes them.
	Width         int
	Height        int
	// InitialWidth and InitialHeight lay out the first frame before the
	// program reports a size. Later resizes still apply.
	InitialWidth  int
	InitialHeight int
	ShowFooter    bool
	Verbose       bool
	Title         string
	Transition    time.Duration
	BlinkCursor   bool
	// IDs overrides item id generation; nil uses random UUIDs.
	IDs           state.IDGenerator
	// Clipboard overrides the system clipboard writer.
	Clipboard     func(string) error
}

// Model implements the Bubble Tea model for the list editor.
type Model struct {
	editor *state.Editor
	list   *uistate.List

	input        textinput.Model
	inputFocused bool

	mode          Mode
	editForm      *dialog.EditForm
	confirm       *dialog.ConfirmDialog
	pendingDelete *state.PendingDelete
	alert         *dialog.Alert
	alertReturn   Mode

	transitions *transition.Set
	pendingCmds []tea.Cmd

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	blink       bool
	title       string

	keys      KeyMap
	help      help.Model
	bus       *command.Bus
	clipboard func(string) error
	handlers  map[reflect.Type]msgHandler
}

// NewModel initialises an empty list with the new-item input focused.
func NewModel(opts Options) *Model {
	m := &Model{
		editor:      state.NewEditor(opts.IDs),
		list:        uistate.NewList(nil),
		input:       dialog.NewItemInput(opts.BlinkCursor),
		mode:        ModeList,
		transitions: transition.NewSet(opts.Transition),
		showFooter:  opts.ShowFooter,
		verbose:     opts.Verbose,
		blink:       opts.BlinkCursor,
		title:       opts.Title,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		bus:         command.New(),
		clipboard:   opts.Clipboard,
	}
	if m.title == "" {
		m.title = defaultTitle
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	} else if opts.InitialWidth > 0 {
		m.width = opts.InitialWidth
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	} else if opts.InitialHeight > 0 {
		m.height = opts.InitialHeight
	}
	m.help.Width = m.width
	m.editor.SetObserver(m.observeChange)
	m.focusInput()
	m.applyInputWidth()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.blink && m.inputFocused {
		return textinput.Blink
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if cmd := m.updateInputModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

// handleActiveForm routes input to the open dialog. Messages with a
// registered handler (resize, results, transition ticks) still reach it.
func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode == ModeList {
		return false, nil
	}
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.handlerFor(msg) != nil {
		return false, nil
	}
	switch m.mode {
	case ModeEditForm:
		return m.handleEditForm(msg)
	case ModeConfirmDelete:
		return m.handleConfirmDelete(msg)
	case ModeAlert:
		return m.handleAlert(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):            m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):     m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):        m.handleActionResultMsg,
		reflect.TypeOf(transition.ExpiredMsg{}): m.handleTransitionExpiredMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.pendingCmds) > 0 {
		cmds = append(cmds, m.pendingCmds...)
		m.pendingCmds = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	events.UI.Mode(mode.String())
}

// Items returns the current list contents.
func (m *Model) Items() []state.Item {
	return m.editor.Items()
}

// Mode reports which screen is active.
func (m *Model) Mode() Mode {
	return m.mode
}

// EditState exposes the editor's transient edit fields.
func (m *Model) EditState() state.EditState {
	return m.editor.EditState()
}
