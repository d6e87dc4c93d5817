package reporter

import (
	"html"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/scribeforge/internal/task"
)

// Status markers shown before a task label.
const (
	markRunning = "🔄"
	markDone    = "✅"
)

var (
	runStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

func marker(state task.State) string {
	switch state {
	case task.StateRunning:
		return markRunning
	case task.StateDone:
		return markDone
	default:
		return ""
	}
}

// HTMLLines renders status lines as colored HTML paragraphs.
type HTMLLines struct{}

// Line implements runner.LineRenderer.
func (HTMLLines) Line(state task.State, label string) string {
	label = html.EscapeString(label)
	switch state {
	case task.StateRunning:
		return "<p style='color: blue;'>" + markRunning + " " + label + "</p>"
	case task.StateDone:
		return "<p style='color: green;'>" + markDone + " " + label + "</p>"
	default:
		return ""
	}
}

// TerminalLines renders status lines styled with lipgloss, one per line.
type TerminalLines struct{}

// Line implements runner.LineRenderer.
func (TerminalLines) Line(state task.State, label string) string {
	switch state {
	case task.StateRunning:
		return runStyle.Render(markRunning+" "+label) + "\n"
	case task.StateDone:
		return doneStyle.Render(markDone+" "+label) + "\n"
	default:
		return ""
	}
}

// PlainLines renders unstyled status lines, one per line.
type PlainLines struct{}

// Line implements runner.LineRenderer.
func (PlainLines) Line(state task.State, label string) string {
	m := marker(state)
	if m == "" {
		return ""
	}
	return m + " " + label + "\n"
}
