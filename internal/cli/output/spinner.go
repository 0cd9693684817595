package output

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress on the diagnostic writer while work runs.
type Spinner struct {
	s *spinner.Spinner
	r *Renderer
}

// NewSpinner creates a stopped spinner with the given message.
func (r *Renderer) NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(r.errOut))
	s.Suffix = " " + msg
	return &Spinner{s: s, r: r}
}

// Start begins the animation.
func (sp *Spinner) Start() { sp.s.Start() }

// Stop ends the animation without a final line.
func (sp *Spinner) Stop() { sp.s.Stop() }

// Success stops the spinner and prints a success line.
func (sp *Spinner) Success(msg string) {
	sp.s.FinalMSG = sp.r.styles.Success.Render(SymbolSuccess+" "+msg) + "\n"
	sp.s.Stop()
}

// Fail stops the spinner and prints a failure line.
func (sp *Spinner) Fail(msg string) {
	sp.s.FinalMSG = sp.r.styles.Error.Render(SymbolError+" "+msg) + "\n"
	sp.s.Stop()
}
