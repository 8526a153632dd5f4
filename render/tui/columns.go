package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/ShayCichocki/prodash/tree"
)

// columnWidthTracker recomputes the task-name column width only every Nth
// frame, never selecting a width below minNameColumnWidth and retaining the
// previous width whenever a fresh computation would fall under it.
type columnWidthTracker struct {
	everyNthFrame int
	frame         int
	width         int
}

func newColumnWidthTracker(everyNthFrame int) *columnWidthTracker {
	return &columnWidthTracker{everyNthFrame: everyNthFrame, width: minNameColumnWidth}
}

// Observe advances the frame counter and, at a recomputation boundary,
// updates the tracked width from entries. It always returns a width >= 1.
func (c *columnWidthTracker) Observe(entries []tree.Entry, maxWidth int) int {
	c.frame++
	if c.frame%c.everyNthFrame != 0 {
		return c.width
	}
	computed := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Value.Name); w > computed {
			computed = w
		}
	}
	if computed > maxWidth {
		computed = maxWidth
	}
	if computed < minNameColumnWidth {
		return c.width
	}
	c.width = computed
	return c.width
}
