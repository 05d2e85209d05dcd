// Package ui provides terminal output for the planner CLI.
package ui

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Spinner wraps a terminal spinner for loading states.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a spinner on stderr with the given message.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = "  " + msg
	s.Color("cyan")
	return &Spinner{s: s}
}

func (sp *Spinner) Start() { sp.s.Start() }

func (sp *Spinner) Stop() { sp.s.Stop() }

// Active reports whether the spinner is animating.
func (sp *Spinner) Active() bool { return sp.s.Active() }

// Success prints a green check on w.
func Success(w io.Writer, msg string) {
	color.New(color.FgGreen).Fprintf(w, "  ✓ %s\n", msg)
}

// Failure prints a red cross on w.
func Failure(w io.Writer, msg string) {
	color.New(color.FgRed).Fprintf(w, "  ✗ %s\n", msg)
}

// Info prints a dimmed line on w.
func Info(w io.Writer, msg string) {
	color.New(color.Faint).Fprintf(w, "  %s\n", msg)
}
