package main

import (
	"os"

	"github.com/atomicstack/listedit/internal/app"
)

// terminalSize is the size reported by the first standard descriptor that
// is attached to a terminal.
type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptor struct {
	name string
	fd   int
}

func standardDescriptors() []descriptor {
	return []descriptor{
		{"stdout", int(os.Stdout.Fd())},
		{"stdin", int(os.Stdin.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

// detectTerminalSize returns the first usable size among fds. Descriptors
// that are not terminals or report a zero size are skipped.
func detectTerminalSize(fds []descriptor, isTerminal func(int) bool, getSize func(int) (int, int, error)) (terminalSize, bool) {
	for _, d := range fds {
		if d.fd < 0 || !isTerminal(d.fd) {
			continue
		}
		width, height, err := getSize(d.fd)
		if err != nil || width <= 0 || height <= 0 {
			continue
		}
		return terminalSize{Source: d.name, Width: width, Height: height}, true
	}
	return terminalSize{}, false
}

// withTerminalSize seeds the first frame's layout from size. An explicit
// -width or -height keeps its fixed value.
func withTerminalSize(cfg app.Config, size terminalSize, ok bool) app.Config {
	if !ok {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.InitialWidth = size.Width
	}
	if cfg.Height == 0 {
		cfg.InitialHeight = size.Height
	}
	return cfg
}
