// Package cli implements the terminal front end of the perturb tool: it
// fans the self-test battery out over a bounded worker group, reports
// progress, and renders the run summary as text or JSON.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Spinner abstracts the terminal spinner so that progress reporting can be
// disabled (quiet mode, JSON mode, non-TTY output) without sprinkling
// conditionals through the run loop.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(text string)
}

// realSpinner wraps spinner.Spinner to satisfy the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (r *realSpinner) Start() { r.s.Start() }

func (r *realSpinner) Stop() { r.s.Stop() }

func (r *realSpinner) UpdateSuffix(text string) { r.s.Suffix = " " + text }

// noopSpinner silently discards all spinner operations.
type noopSpinner struct{}

func (noopSpinner) Start()              {}
func (noopSpinner) Stop()               {}
func (noopSpinner) UpdateSuffix(string) {}

// newSpinner returns a real spinner when out is an interactive terminal and
// progress output is wanted, and a no-op spinner otherwise.
func newSpinner(out io.Writer, enabled bool) Spinner {
	f, isFile := out.(*os.File)
	if !enabled || !isFile || !term.IsTerminal(int(f.Fd())) {
		return noopSpinner{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f))
	return &realSpinner{s: s}
}
