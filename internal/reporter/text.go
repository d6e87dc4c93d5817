package reporter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/scribeforge/internal/runner"
	"github.com/ppiankov/scribeforge/internal/task"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[2m"
)

// header matches the caption shown above the live status region.
const header = "Executing steps for the article"

// TextReporter writes human-readable output to a writer, one line per event.
type TextReporter struct {
	w     io.Writer
	color bool
}

// NewTextReporter creates a text reporter.
// If w is nil, defaults to os.Stdout.
// color enables ANSI codes.
func NewTextReporter(w io.Writer, color bool) *TextReporter {
	if w == nil {
		w = os.Stdout
	}
	return &TextReporter{w: w, color: color}
}

// PrintPlan writes the parsed task list, flagging lines that fell back to
// the default duration.
func (r *TextReporter) PrintPlan(results []task.ParseResult) {
	tasks := make([]task.Task, 0, len(results))
	for _, res := range results {
		tasks = append(tasks, res.Task)
	}
	fmt.Fprintf(r.w, "%sPlan%s — %d steps, %s\n", r.c(colorCyan), r.c(colorReset), len(tasks), task.TotalDuration(tasks))
	for i, res := range results {
		note := ""
		if !res.Parsed {
			note = fmt.Sprintf("  %s(default duration)%s", r.c(colorYellow), r.c(colorReset))
		}
		fmt.Fprintf(r.w, "  %2d. %4s  %s%s\n", i+1, res.Task.Wait(), res.Task.Label, note)
	}
}

// Start implements Reporter.
func (r *TextReporter) Start(run *runner.Run) {
	fmt.Fprintf(r.w, "%s — %s (%d steps)\n\n", header, run.Persona.Name, len(run.Tasks))
}

// Event implements Reporter.
func (r *TextReporter) Event(_ *runner.Run, ev runner.Event) {
	code := colorCyan
	if ev.State == task.StateDone {
		code = colorGreen
	}
	fmt.Fprintf(r.w, "%s%s %s%s\n", r.c(code), marker(ev.State), ev.Label, r.c(colorReset))
}

// Finish implements Reporter.
func (r *TextReporter) Finish(run *runner.Run) {
	r.PrintSummary(run)
}

// PrintSummary writes the final summary line.
func (r *TextReporter) PrintSummary(run *runner.Run) {
	_, _, done := run.Counts()
	fmt.Fprintf(r.w, "\n%s--- Summary ---%s\n", r.c(colorCyan), r.c(colorReset))
	fmt.Fprintf(r.w, "%sDone: %d/%d%s  ", r.c(colorGreen), done, len(run.Tasks), r.c(colorReset))
	fmt.Fprintf(r.w, "%sRun: %s%s  ", r.c(colorDim), run.ID, r.c(colorReset))
	fmt.Fprintf(r.w, "Duration: %s\n", run.Elapsed().Truncate(time.Second))
}

func (r *TextReporter) c(code string) string {
	if !r.color {
		return ""
	}
	return code
}
