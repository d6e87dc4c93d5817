package runner

import (
	"time"

	"github.com/ppiankov/scribeforge/internal/task"
)

// Event is emitted for every task state transition of a run.
type Event struct {
	Index    int        `json:"index"`
	State    task.State `json:"state"`
	Label    string     `json:"label"`
	Duration int        `json:"duration"`
	Line     string     `json:"-"` // rendered line of this task
	Rendered string     `json:"-"` // rendered lines of all tasks so far
	At       time.Time  `json:"at"`
}
