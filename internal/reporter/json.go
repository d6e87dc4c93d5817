package reporter

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/ppiankov/scribeforge/internal/runner"
	"github.com/ppiankov/scribeforge/internal/task"
)

// jsonEvent is one line of JSON output.
type jsonEvent struct {
	Type     string      `json:"type"`
	RunID    string      `json:"run_id"`
	Persona  string      `json:"persona,omitempty"`
	Index    *int        `json:"index,omitempty"`
	State    *task.State `json:"state,omitempty"`
	Label    string      `json:"label,omitempty"`
	Duration *int        `json:"duration,omitempty"`
	Tasks    *int        `json:"tasks,omitempty"`
	Elapsed  string      `json:"elapsed,omitempty"`
	At       time.Time   `json:"at"`
}

// JSONReporter writes newline-delimited JSON, one object per event.
type JSONReporter struct {
	enc *json.Encoder
}

// NewJSONReporter creates a JSON lines reporter.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w)}
}

// Start implements Reporter.
func (r *JSONReporter) Start(run *runner.Run) {
	n := len(run.Tasks)
	r.write(jsonEvent{Type: "run_started", RunID: run.ID, Persona: run.Persona.Name, Tasks: &n, At: time.Now()})
}

// Event implements Reporter.
func (r *JSONReporter) Event(run *runner.Run, ev runner.Event) {
	idx, state, dur := ev.Index, ev.State, ev.Duration
	r.write(jsonEvent{
		Type:     "task",
		RunID:    run.ID,
		Index:    &idx,
		State:    &state,
		Label:    ev.Label,
		Duration: &dur,
		At:       ev.At,
	})
}

// Finish implements Reporter.
func (r *JSONReporter) Finish(run *runner.Run) {
	n := len(run.Tasks)
	r.write(jsonEvent{
		Type:    "run_finished",
		RunID:   run.ID,
		Persona: run.Persona.Name,
		Tasks:   &n,
		Elapsed: run.Elapsed().String(),
		At:      run.EndedAt,
	})
}

func (r *JSONReporter) write(ev jsonEvent) {
	if err := r.enc.Encode(ev); err != nil {
		slog.Warn("write json event", "error", err)
	}
}
