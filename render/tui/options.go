// Package tui implements the full-screen dashboard renderer: an alternate
// screen buffer with a title bar, a task pane, and a scrollable message
// pane, driven by charmbracelet/bubbletea.
package tui

import "time"

// Dimensions overrides terminal size detection, mirroring render/line's
// escape hatch for tests and non-interactive hosts.
type Dimensions struct {
	Columns, Rows int
}

// Options configures Start.
type Options struct {
	// Title is shown in the title bar.
	Title string
	// FramesPerSecond sets the redraw tick rate.
	FramesPerSecond float64
	// RecomputeColumnWidthEveryNthFrame throttles name-column resizing;
	// values < 1 are treated as 1 (recompute every frame).
	RecomputeColumnWidthEveryNthFrame int
	// WindowSize overrides terminal size detection; nil lets bubbletea
	// report it via tea.WindowSizeMsg.
	WindowSize *Dimensions
	// StopIfEmptyProgress exits the program once a snapshot comes back
	// with no tasks at all (not merely none visible after filtering).
	StopIfEmptyProgress bool
	// Throughput enables the throughput column.
	Throughput bool
	// Interruptible allows q/Ctrl-C to quit; when false those keys are
	// ignored and the caller must cancel the context passed to Start.
	Interruptible bool
	// Colored enables lipgloss styling; false renders plain text.
	Colored bool
	// Timestamp prefixes each message with its send time.
	Timestamp bool
}

const minFramesPerSecond = 1.0

func (o Options) tickInterval() time.Duration {
	fps := o.FramesPerSecond
	if fps <= 0 {
		fps = minFramesPerSecond
	}
	return time.Duration(float64(time.Second) / fps)
}

func (o Options) recomputeEveryNthFrame() int {
	if o.RecomputeColumnWidthEveryNthFrame < 1 {
		return 1
	}
	return o.RecomputeColumnWidthEveryNthFrame
}

const minNameColumnWidth = 1
