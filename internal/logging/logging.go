// Package logging owns the process-wide zerolog base logger and hands out
// per-component child loggers.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

var base = zerolog.Nop()

// Init configures the base logger to write human-readable lines to w at
// the given level ("debug", "info", "warn", "error", "disabled").
func Init(w io.Writer, level string) error {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	base = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return nil
}

// ParseLevel parses a level name. An empty name selects DefaultLevel.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", level)
	}
	return lvl, nil
}

// Component returns a child of the base logger tagged with name.
func Component(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

// Reset restores the no-op base logger.
func Reset() { base = zerolog.Nop() }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
