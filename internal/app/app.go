package app

import (
	"errors"
	"time"

	"github.com/atomicstack/listedit/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width         int
	Height        int
	ShowFooter    bool
	Verbose       bool
	Title         string
	Transition    time.Duration
	BlinkCursor   bool
	// InitialWidth and InitialHeight come from the controlling terminal
	// rather than flags.
	InitialWidth  int
	InitialHeight int
}

// Options converts the configuration into model options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Width:         c.Width,
		Height:        c.Height,
		InitialWidth:  c.InitialWidth,
		InitialHeight: c.InitialHeight,
		ShowFooter:    c.ShowFooter,
		Verbose:       c.Verbose,
		Title:         c.Title,
		Transition:    c.Transition,
		BlinkCursor:   c.BlinkCursor,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(cfg.Options())
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
