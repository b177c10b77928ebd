package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/listedit/internal/app"
	"github.com/atomicstack/listedit/internal/logging"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "LISTEDIT_WIDTH"
	envHeight     = "LISTEDIT_HEIGHT"
	envShowFooter = "LISTEDIT_FOOTER"
	envVerbose    = "LISTEDIT_VERBOSE"
	envTrace      = "LISTEDIT_TRACE"
	envLogFile    = "LISTEDIT_LOG_FILE"
	envTitle      = "LISTEDIT_TITLE"
	envTransition = "LISTEDIT_TRANSITION"
	envBlink      = "LISTEDIT_BLINK"
)

const (
	defaultTitle      = "CRUD Operation"
	defaultTransition = 400 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables; malformed environment values fall back to the
// defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("listedit", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for add, update and delete")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, logging.DefaultLogFile), "path to the log file")
	title := fs.String("title", envOrDefault(env, envTitle, defaultTitle), "screen title")
	transition := fs.Duration("transition", envOrDuration(env, envTransition, defaultTransition), "row highlight duration after a change (0 disables)")
	blink := fs.Bool("blink", envOrBool(env, envBlink, true), "blink the text cursor")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *transition < 0 {
		return Config{}, fmt.Errorf("transition must be >= 0 (got %s)", *transition)
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			Title:       *title,
			Transition:  *transition,
			BlinkCursor: *blink,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"trace":      strconv.FormatBool(*trace),
			"verbose":    strconv.FormatBool(*verbose),
			"logFile":    *logFile,
			"title":      *title,
			"transition": transition.String(),
			"blink":      strconv.FormatBool(*blink),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Title) == "" {
		return errors.New("title must not be empty")
	}
	if strings.TrimSpace(cfg.Logging.FilePath) == "" {
		return errors.New("log-file must not be empty")
	}
	return nil
}
