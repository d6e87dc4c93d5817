package runner

import (
	"iter"
	"log/slog"
	"time"

	"github.com/ppiankov/scribeforge/internal/task"
)

// LineRenderer renders the status line shown for a task.
type LineRenderer interface {
	Line(state task.State, label string) string
}

// Runner executes a run's tasks one at a time, waiting each task's
// duration between its running and done events.
type Runner struct {
	Sleep  func(time.Duration)
	Render LineRenderer
	Now    func() time.Time
}

// New creates a runner that blocks with time.Sleep.
func New(render LineRenderer) *Runner {
	return &Runner{
		Sleep:  time.Sleep,
		Render: render,
		Now:    time.Now,
	}
}

// Events returns the run's event sequence. For each task in order it yields
// a running event, sleeps the task's duration, then yields a done event.
// Every event is yielded before the following sleep starts. The sequence is
// single-use: it yields nothing for a run that has already started.
func (r *Runner) Events(run *Run) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if run.Phase != PhaseNotStarted {
			return
		}
		run.Phase = PhaseInProgress
		run.StartedAt = r.now()
		slog.Info("run started", "run_id", run.ID, "persona", run.Persona.Name, "tasks", len(run.Tasks))

		for i, t := range run.Tasks {
			if !yield(r.transition(run, i, task.StateRunning)) {
				return
			}
			r.sleep(t.Wait())
			if !yield(r.transition(run, i, task.StateDone)) {
				return
			}
		}

		run.Phase = PhaseFinished
		run.EndedAt = r.now()
		slog.Info("run finished", "run_id", run.ID, "elapsed", run.EndedAt.Sub(run.StartedAt))
	}
}

// RunAll drains the run's events, calling emit for each.
func (r *Runner) RunAll(run *Run, emit func(Event)) {
	for ev := range r.Events(run) {
		if emit != nil {
			emit(ev)
		}
	}
}

func (r *Runner) transition(run *Run, i int, state task.State) Event {
	t := run.Tasks[i]
	run.Status[i] = state
	run.Lines[i] = r.line(state, t.Label)
	slog.Debug("task transition", "run_id", run.ID, "index", i, "state", state, "label", t.Label)
	return Event{
		Index:    i,
		State:    state,
		Label:    t.Label,
		Duration: t.Duration,
		Line:     run.Lines[i],
		Rendered: run.Rendered(),
		At:       r.now(),
	}
}

func (r *Runner) line(state task.State, label string) string {
	if r.Render == nil {
		return label + "\n"
	}
	return r.Render.Line(state, label)
}

func (r *Runner) sleep(d time.Duration) {
	if r.Sleep == nil {
		time.Sleep(d)
		return
	}
	r.Sleep(d)
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
