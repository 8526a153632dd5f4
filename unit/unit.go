// Package unit formats task progress (step, optional max) into display
// strings: a plain label, byte sizes, durations, human-readable counts, or
// "N of M" ranges. Every implementation is total: none panics on step >
// max, a nil max, or a zero max.
package unit

import (
	"fmt"
	"math"
)

// Unit formats the step/max pair of a progress.Value for display.
type Unit interface {
	// Display renders the current step, and the max if set, joined with
	// the unit's own separator and label, e.g. "512 B/1.0 MiB" or "3 files".
	Display(step uint64, max *uint64) string

	// DisplayPercentage renders step as a percentage of max, e.g. "[50.00%]".
	DisplayPercentage(step, max uint64) string

	// DisplayThroughput renders rate in this unit's terms, or "" if the
	// unit was not constructed with WithThroughput.
	DisplayThroughput(rate float64) string

	// DisplayUnitOnly renders just the unit label, for column headers.
	DisplayUnitOnly() string
}

// Option configures a unit constructor.
type Option func(*throughputMode)

// WithThroughput opts a unit into DisplayThroughput reporting a rate
// instead of always returning "".
func WithThroughput() Option {
	return func(t *throughputMode) { t.enabled = true }
}

// throughputMode is embedded by concrete units to implement the opt-in
// WithThroughput() flag described in the progress model: a unit only
// reports a rate once a caller has asked it to.
type throughputMode struct {
	enabled bool
}

func (t throughputMode) displayThroughput(render func(rate float64) string, rate float64) string {
	if !t.enabled {
		return ""
	}
	return render(rate)
}

// percentage computes step/max as a percentage, rounded half-to-even and
// clamped to [0, 100]. A zero max is treated as 0%, never a divide-by-zero.
func percentage(step, max uint64) float64 {
	if max == 0 {
		return 0
	}
	p := math.RoundToEven(float64(step) / float64(max) * 100 * 100) / 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func formatPercentage(step, max uint64) string {
	return fmt.Sprintf("[%.02f%%]", percentage(step, max))
}
