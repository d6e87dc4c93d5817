package reporter

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/ppiankov/scribeforge/internal/runner"
)

// LiveReporter redraws the whole status region in place after every event.
type LiveReporter struct {
	w         io.Writer
	lastLines int
	mu        sync.Mutex
}

// NewLiveReporter creates a live reporter writing to a terminal.
func NewLiveReporter(w io.Writer) *LiveReporter {
	return &LiveReporter{w: w}
}

// Start implements Reporter.
func (lr *LiveReporter) Start(run *runner.Run) {
	fmt.Fprintf(lr.w, "%s\n\n", header)
}

// Event implements Reporter.
func (lr *LiveReporter) Event(run *runner.Run, _ runner.Event) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	lr.draw(lr.buildLines(run))
}

// Finish implements Reporter.
func (lr *LiveReporter) Finish(run *runner.Run) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	lines := lr.buildLines(run)
	lines = append(lines, "", dimStyle.Render(fmt.Sprintf("  finished in %s", run.Elapsed().Round(time.Second))))
	lr.draw(lines)
	lr.lastLines = 0
}

// Render produces the display lines for the current state of run.
// Exported for testing.
func (lr *LiveReporter) Render(run *runner.Run) []string {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.buildLines(run)
}

func (lr *LiveReporter) draw(lines []string) {
	// move cursor up to overwrite previous frame
	if lr.lastLines > 0 {
		fmt.Fprintf(lr.w, "\033[%dA", lr.lastLines)
	}
	for _, line := range lines {
		fmt.Fprintf(lr.w, "\033[K%s\n", line)
	}
	lr.lastLines = len(lines)
}

func (lr *LiveReporter) buildLines(run *runner.Run) []string {
	var lines []string
	rendered := strings.TrimSuffix(run.Rendered(), "\n")
	if rendered != "" {
		lines = append(lines, strings.Split(rendered, "\n")...)
	}
	lines = append(lines, "", progressLine(run))
	return lines
}

func progressLine(run *runner.Run) string {
	pending, running, done := run.Counts()
	var parts []string
	if done > 0 {
		parts = append(parts, doneStyle.Render(fmt.Sprintf("%d done", done)))
	}
	if running > 0 {
		parts = append(parts, runStyle.Render(fmt.Sprintf("%d running", running)))
	}
	if pending > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d pending", pending)))
	}
	return fmt.Sprintf("  progress: %s", strings.Join(parts, ", "))
}
