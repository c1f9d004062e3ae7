// The cli package provides functions for building the command-line
// interface of the multiplier. This file holds the presentation
// plumbing: color accessors delegating to the ui package and the
// spinner shown while a long multiplication runs.
package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/ntmul/internal/ui"
)

// SpinnerRefreshRate defines the refresh frequency of the progress spinner.
const SpinnerRefreshRate = 200 * time.Millisecond

// Color functions return ANSI escape codes from the current theme.
// They delegate to the ui package to reduce coupling.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return ui.GetCurrentTheme().Reset }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return ui.GetCurrentTheme().Error }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return ui.GetCurrentTheme().Success }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return ui.GetCurrentTheme().Warning }

// ColorBlue returns the primary color from the current theme.
func ColorBlue() string { return ui.GetCurrentTheme().Primary }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return ui.GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return ui.GetCurrentTheme().Bold }

// ThemeColors adapts the current theme to the apperrors.ColorProvider
// interface without creating an import cycle.
type ThemeColors struct{}

// Yellow returns the warning color escape code.
func (ThemeColors) Yellow() string { return ColorYellow() }

// Reset returns the reset escape code.
func (ThemeColors) Reset() string { return ColorReset() }

// Spinner is an interface that abstracts the behavior of a terminal
// spinner, decoupling the calculation driver from a specific spinner
// implementation and making it replaceable in tests.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// noopSpinner satisfies Spinner without any output, used in quiet and
// JSON modes and in tests.
type noopSpinner struct{}

func (noopSpinner) Start()                     {}
func (noopSpinner) Stop()                      {}
func (noopSpinner) UpdateSuffix(suffix string) {}

// newSpinner is replaceable in tests.
var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}
