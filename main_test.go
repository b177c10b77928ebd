package main

import (
	"errors"
	"testing"

	"github.com/atomicstack/listedit/internal/app"
	"github.com/atomicstack/listedit/internal/config"
)

func fakeTerminal(terminals map[int][2]int) (func(int) bool, func(int) (int, int, error)) {
	isTerminal := func(fd int) bool {
		_, ok := terminals[fd]
		return ok
	}
	getSize := func(fd int) (int, int, error) {
		size, ok := terminals[fd]
		if !ok || size[0] < 0 {
			return 0, 0, errors.New("not a terminal")
		}
		return size[0], size[1], nil
	}
	return isTerminal, getSize
}

func TestDetectTerminalSizeUsesFirstTerminal(t *testing.T) {
	fds := []descriptor{{"stdout", 1}, {"stdin", 0}, {"stderr", 2}}
	isTerminal, getSize := fakeTerminal(map[int][2]int{
		1: {-1, 0},
		0: {100, 30},
		2: {80, 24},
	})
	size, ok := detectTerminalSize(fds, isTerminal, getSize)
	if !ok {
		t.Fatalf("expected a terminal size")
	}
	if size != (terminalSize{Source: "stdin", Width: 100, Height: 30}) {
		t.Fatalf("unexpected size %+v", size)
	}
}

func TestDetectTerminalSizeWithoutTerminal(t *testing.T) {
	isTerminal, getSize := fakeTerminal(map[int][2]int{3: {0, 0}})
	fds := []descriptor{{"stdout", 1}, {"pipe", 3}, {"closed", -1}}
	if size, ok := detectTerminalSize(fds, isTerminal, getSize); ok {
		t.Fatalf("expected no size, got %+v", size)
	}
}

func TestWithTerminalSizeSeedsUnsetDimensions(t *testing.T) {
	size := terminalSize{Source: "stdout", Width: 120, Height: 40}

	cfg := withTerminalSize(app.Config{Title: "Groceries"}, size, true)
	if cfg.InitialWidth != 120 || cfg.InitialHeight != 40 {
		t.Fatalf("expected initial size 120x40, got %dx%d", cfg.InitialWidth, cfg.InitialHeight)
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Fatalf("expected size to stay resizable, got fixed %dx%d", cfg.Width, cfg.Height)
	}

	cfg = withTerminalSize(app.Config{Width: 60}, size, true)
	if cfg.Width != 60 || cfg.InitialWidth != 0 || cfg.InitialHeight != 40 {
		t.Fatalf("expected explicit width kept, got %+v", cfg)
	}

	cfg = withTerminalSize(app.Config{}, size, false)
	if cfg.InitialWidth != 0 || cfg.InitialHeight != 0 {
		t.Fatalf("expected no initial size without a terminal, got %+v", cfg)
	}
}

func TestStartupPayloadIncludesFlagsAndTerminal(t *testing.T) {
	cfg := config.Config{
		App: app.Config{Title: "Groceries"},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"title":  "Groceries",
			"footer": "true",
		},
		Args: []string{"-title", "Groceries"},
	}
	size := terminalSize{Source: "stdout", Width: 80, Height: 24}

	payload := startupPayload(cfg, size, true)
	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["title"] != "Groceries" || flags["footer"] != "true" {
		t.Fatalf("unexpected flags %v", flags)
	}
	if flags["trace"] != true || flags["logFile"] != "trace.log" {
		t.Fatalf("expected logging flags, got %v", flags)
	}
	if payload["terminal"] != size {
		t.Fatalf("expected terminal %+v, got %v", size, payload["terminal"])
	}

	payload = startupPayload(cfg, terminalSize{}, false)
	if _, ok := payload["terminal"]; ok {
		t.Fatalf("expected no terminal entry without a terminal")
	}
}
