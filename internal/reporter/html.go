package reporter

import (
	"fmt"
	"io"

	"github.com/ppiankov/scribeforge/internal/runner"
)

// HTMLReporter writes the full rendered HTML status block after every
// event, each snapshot separated by an HTML comment naming the event.
type HTMLReporter struct {
	w io.Writer
}

// NewHTMLReporter creates an HTML snapshot reporter. The run it drives must
// use HTMLLines.
func NewHTMLReporter(w io.Writer) *HTMLReporter {
	return &HTMLReporter{w: w}
}

// Start implements Reporter.
func (r *HTMLReporter) Start(run *runner.Run) {
	fmt.Fprintf(r.w, "<b>%s</b>\n", header)
}

// Event implements Reporter.
func (r *HTMLReporter) Event(_ *runner.Run, ev runner.Event) {
	fmt.Fprintf(r.w, "<!-- %d %s -->\n%s\n", ev.Index, ev.State, ev.Rendered)
}

// Finish implements Reporter.
func (r *HTMLReporter) Finish(run *runner.Run) {
	fmt.Fprintf(r.w, "<!-- finished %s -->\n", run.ID)
}
