package reporter

import (
	"github.com/ppiankov/scribeforge/internal/runner"
)

// Reporter displays the progress of a run as its events arrive.
type Reporter interface {
	Start(run *runner.Run)
	Event(run *runner.Run, ev runner.Event)
	Finish(run *runner.Run)
}

// Drive runs every task of run through rn, reporting each event to rep
// before the next task wait begins.
func Drive(rn *runner.Runner, run *runner.Run, rep Reporter) {
	rep.Start(run)
	rn.RunAll(run, func(ev runner.Event) {
		rep.Event(run, ev)
	})
	rep.Finish(run)
}
