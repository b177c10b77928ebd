package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/listedit/internal/app"
	"github.com/atomicstack/listedit/internal/config"
	"github.com/atomicstack/listedit/internal/logging"
	"github.com/atomicstack/listedit/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	size, ok := detectTerminalSize(standardDescriptors(), term.IsTerminal, term.GetSize)
	runtimeCfg.App = withTerminalSize(runtimeCfg.App, size, ok)
	events.App.Start(startupPayload(runtimeCfg, size, ok))

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupPayload records how the editor was launched.
func startupPayload(cfg config.Config, size terminalSize, ok bool) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
		"title": cfg.App.Title,
	}
	if ok {
		payload["terminal"] = size
	}
	return payload
}
