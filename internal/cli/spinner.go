// The cli package provides functions for rendering the duality benchmark
// results as a textual report. This file wraps the terminal spinner used
// while the simulation batch is running.
package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// spinnerRefreshRate defines the spinner animation interval.
const spinnerRefreshRate = 120 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner, decoupling the
// report layer from the concrete spinner implementation and making the
// progress display testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(text string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (r *realSpinner) Start() { r.s.Start() }

func (r *realSpinner) Stop() { r.s.Stop() }

func (r *realSpinner) UpdateSuffix(text string) { r.s.Suffix = " " + text }

// noopSpinner discards all spinner calls. Used in quiet mode and in
// tests.
type noopSpinner struct{}

func (noopSpinner) Start()              {}
func (noopSpinner) Stop()               {}
func (noopSpinner) UpdateSuffix(string) {}

// NewSpinner creates a spinner writing to w. In quiet mode a no-op
// spinner is returned so scripted runs stay silent.
func NewSpinner(w io.Writer, quiet bool) Spinner {
	if quiet {
		return noopSpinner{}
	}
	return &realSpinner{
		s: spinner.New(spinner.CharSets[14], spinnerRefreshRate, spinner.WithWriter(w)),
	}
}
