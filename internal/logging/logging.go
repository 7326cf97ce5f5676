// Package logging builds the leveled logger used by the generation service.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/kataras/golog"
)

// Levels accepted by New, lowest first.
var Levels = []string{"debug", "info", "warn", "error", "disable"}

// ValidLevel reports whether level is one of Levels.
func ValidLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

// New returns a logger writing to w at level. An unknown level falls back to info.
func New(w io.Writer, level string) *golog.Logger {
	if !ValidLevel(level) {
		level = "info"
	}
	l := golog.New()
	l.SetOutput(w)
	l.SetLevel(strings.ToLower(strings.TrimSpace(level)))
	return l
}

// Stderr returns a logger on os.Stderr at level.
func Stderr(level string) *golog.Logger {
	return New(os.Stderr, level)
}

// Discard returns a logger that drops everything.
func Discard() *golog.Logger {
	return New(io.Discard, "disable")
}
