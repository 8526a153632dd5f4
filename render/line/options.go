// Package line implements the single-region, in-place line renderer: a
// fixed block of terminal lines redrawn at a steady tick, with log
// messages scrolling above it.
package line

import "time"

// LevelRange restricts which tree depths a renderer shows, 1-based and
// inclusive on both ends.
type LevelRange struct {
	Min, Max int
}

func (r *LevelRange) contains(level int) bool {
	if r == nil {
		return true
	}
	return level >= r.Min && level <= r.Max
}

// Dimensions overrides terminal size detection.
type Dimensions struct {
	Columns, Rows int
}

// Options configures Render.
type Options struct {
	// OutputIsTerminal controls whether progress rows are drawn at all;
	// when false, only log messages are printed.
	OutputIsTerminal bool
	// Colored enables ANSI coloring of messages and rows.
	Colored bool
	// Timestamp prefixes each message with its send time.
	Timestamp bool
	// LevelFilter restricts which task depths are drawn; nil shows all.
	LevelFilter *LevelRange
	// InitialDelay defers the first progress render; messages are never
	// delayed.
	InitialDelay time.Duration
	// FramesPerSecond sets the redraw tick rate.
	FramesPerSecond float64
	// Throughput enables the throughput column.
	Throughput bool
	// HideCursor hides the cursor for the renderer's lifetime.
	HideCursor bool
	// KeepRunningIfProgressIsEmpty keeps the ticker alive even once a
	// snapshot comes back with no visible rows.
	KeepRunningIfProgressIsEmpty bool
	// TerminalDimensions overrides size detection; nil auto-detects,
	// falling back to 80x24 if detection fails.
	TerminalDimensions *Dimensions
	// DoneMessage, if set, is printed after the final frame on shutdown.
	// The progress region is not cleared on shutdown, whether or not
	// DoneMessage is set.
	DoneMessage string
}

const minFramesPerSecondToShutdownFast = 6.0

func (o Options) tickInterval() time.Duration {
	fps := o.FramesPerSecond
	if fps <= 0 {
		fps = minFramesPerSecondToShutdownFast
	}
	return time.Duration(float64(time.Second) / fps)
}

const fallbackColumns, fallbackRows = 80, 24
