package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/ShayCichocki/prodash/key"
	"github.com/ShayCichocki/prodash/progress"
	"github.com/ShayCichocki/prodash/tree"
	"github.com/ShayCichocki/prodash/unit"
)

// connector renders the tree-drawing glyph for entries[index], one "│  " or
// "   " per ancestor level plus a final "├─ " or "└─ " for the entry's own
// level, derived from its adjacency to its lexicographic neighbors.
func connector(entries []tree.Entry, index int) string {
	adj := key.ComputeAdjacency(entries, index)
	depth := entries[index].Key.Depth()
	if depth == 0 {
		return ""
	}
	var b strings.Builder
	for level := 1; level < depth; level++ {
		switch adj.At(level) {
		case key.Below, key.AboveAndBelow:
			b.WriteString("│  ")
		default:
			b.WriteString("   ")
		}
	}
	switch adj.At(depth) {
	case key.Below, key.AboveAndBelow:
		b.WriteString("├─ ")
	default:
		b.WriteString("└─ ")
	}
	return b.String()
}

func stateMarker(v progress.Value) string {
	switch s := v.State.(type) {
	case progress.Blocked:
		return " (blocked: " + s.Reason + ")"
	case progress.Halted:
		return " (halted: " + s.Reason + ")"
	default:
		return ""
	}
}

// taskRow formats one task-pane row: tree-connector, name, value (via the
// unit when one is set), percentage, state marker, throughput. No progress
// bar is drawn.
func taskRow(entries []tree.Entry, index int, nameWidth, columns int, showThroughput bool, rate float64, hasRate bool) string {
	e := entries[index]
	conn := connector(entries, index)

	name := truncateName(e.Value.Name, nameWidth)
	name = name + strings.Repeat(" ", nameWidth-runewidth.StringWidth(name))

	var value string
	if e.Value.Unit != nil {
		value = e.Value.Unit.Display(e.Value.Step, e.Value.Max)
	} else {
		value = fmt.Sprintf("%d", e.Value.Step)
	}

	var percentage string
	if e.Value.Unit != nil && e.Value.Max != nil {
		percentage = e.Value.Unit.DisplayPercentage(e.Value.Step, *e.Value.Max)
	}

	row := fmt.Sprintf("%s%s %s %s%s", conn, name, value, percentage, stateMarker(e.Value))
	if showThroughput && hasRate && e.Value.Unit != nil {
		if tp := e.Value.Unit.DisplayThroughput(rate); tp != "" {
			row += " " + tp
		}
	}
	return truncateName(strings.TrimRight(row, " "), columns)
}

// truncateName clamps s to width display columns, appending an ellipsis
// marker if it had to cut.
func truncateName(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, width-1, "…")
}

func throughputFor(tp *unit.Throughput, e tree.Entry, elapsed time.Duration) (float64, bool) {
	if tp == nil {
		return 0, false
	}
	return tp.Update(e.Key, e.Value.Step, elapsed)
}
