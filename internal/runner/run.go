package runner

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/scribeforge/internal/persona"
	"github.com/ppiankov/scribeforge/internal/task"
)

// Phase is the whole-run progression.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Run is the state of one execution of a persona's task list. It is owned
// by the caller and mutated only by Runner while events are drawn.
type Run struct {
	ID        string
	Persona   persona.Persona
	Tasks     []task.Task
	Status    []task.State
	Lines     []string // rendered line per task; "" while pending
	Phase     Phase
	StartedAt time.Time
	EndedAt   time.Time
}

// NewRun creates a run with every task pending.
func NewRun(p persona.Persona, tasks []task.Task) *Run {
	ts := make([]task.Task, len(tasks))
	copy(ts, tasks)
	return &Run{
		ID:      uuid.NewString(),
		Persona: p,
		Tasks:   ts,
		Status:  make([]task.State, len(ts)),
		Lines:   make([]string, len(ts)),
	}
}

// Rendered concatenates the per-task lines. Pending tasks contribute nothing.
func (r *Run) Rendered() string {
	return strings.Join(r.Lines, "")
}

// Counts returns the number of pending, running and done tasks.
func (r *Run) Counts() (pending, running, done int) {
	for _, s := range r.Status {
		switch s {
		case task.StateRunning:
			running++
		case task.StateDone:
			done++
		default:
			pending++
		}
	}
	return pending, running, done
}

// Finished reports whether every task has completed.
func (r *Run) Finished() bool {
	return r.Phase == PhaseFinished
}

// Elapsed returns the wall-clock time spent so far, or in total once finished.
func (r *Run) Elapsed() time.Duration {
	switch r.Phase {
	case PhaseNotStarted:
		return 0
	case PhaseFinished:
		return r.EndedAt.Sub(r.StartedAt)
	default:
		return time.Since(r.StartedAt)
	}
}
