// Package progress defines the per-task progress record and the generic
// Progress façade that lets callers depend on an interface instead of the
// concrete tree implementation.
package progress

import (
	"time"

	"github.com/ShayCichocki/prodash/unit"
)

// Value is the progress record for a single task in the tree.
type Value struct {
	// Name is the display label, mutable via SetName.
	Name string
	// Step is the current progress. Monotonic between Init calls.
	Step uint64
	// Max is nil when the task's progress is unbounded.
	Max *uint64
	// Unit formats Step/Max for display; nil means show the raw step.
	Unit unit.Unit
	// State reflects whether the task can currently make progress.
	State State
	// DoneAt is set when Done or Fail was last called, driving the TUI's
	// fade-out of finished rows.
	DoneAt *time.Time
}

// Fraction returns step/max, or false if Max is unset or zero. The result
// is not clamped: it is greater than 1 when Step exceeds Max.
func (v Value) Fraction() (float64, bool) {
	if v.Max == nil || *v.Max == 0 {
		return 0, false
	}
	return float64(v.Step) / float64(*v.Max), true
}
