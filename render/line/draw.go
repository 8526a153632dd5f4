package line

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/ShayCichocki/prodash/key"
	"github.com/ShayCichocki/prodash/progress"
	"github.com/ShayCichocki/prodash/tree"
	"github.com/ShayCichocki/prodash/unit"
)

// state carries the reusable buffers and cursor bookkeeping across ticks,
// mirroring the original's draw::State.
type state struct {
	entries    []tree.Entry
	messages   []tree.Message
	lastMsgSeq uint64
	lastLines  int
}

var (
	originColor  = color.New(color.FgYellow, color.Faint)
	infoColor    = color.New(color.FgWhite)
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
)

func messageColor(level progress.MessageLevel) *color.Color {
	switch level {
	case progress.Success:
		return successColor
	case progress.Failure:
		return failureColor
	default:
		return infoColor
	}
}

func writeMessages(out io.Writer, messages []tree.Message, opts Options) error {
	for _, m := range messages {
		var origin, body string
		if opts.Colored {
			origin = originColor.Sprint(m.Origin)
			body = messageColor(m.Level).Sprint(m.Content)
		} else {
			origin, body = m.Origin, m.Content
		}
		prefix := ""
		if opts.Timestamp {
			prefix = m.Time.Local().Format("15:04:05.000") + " "
		}
		if _, err := fmt.Fprintf(out, "%s%s→%s\n", prefix, origin, body); err != nil {
			return err
		}
	}
	return nil
}

// cursorUp moves the cursor up n lines. It leaves the column unchanged and
// erases nothing; each row written afterwards erases its own line first.
func cursorUp(out io.Writer, n int) {
	if n <= 0 {
		return
	}
	fmt.Fprintf(out, "\x1b[%dA", n)
}

const eraseToEndOfLine = "\x1b[K"

func dimensions(opts Options) (columns, rows int) {
	if opts.TerminalDimensions != nil {
		return opts.TerminalDimensions.Columns, opts.TerminalDimensions.Rows
	}
	return fallbackColumns, fallbackRows
}

// truncate clamps s to width display columns, appending an ellipsis marker
// if it had to cut, and never wraps.
func truncate(s string, width int) string {
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

func nameColumnWidth(entries []tree.Entry, maxWidth int) int {
	width := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Value.Name); w > width {
			width = w
		}
	}
	if width > maxWidth {
		width = maxWidth
	}
	if width < 1 {
		width = 1
	}
	return width
}

func renderRow(e tree.Entry, nameWidth int, columns int, showThroughput bool, rate float64, hasRate bool) string {
	name := truncate(e.Value.Name, nameWidth)
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

	stateMarker := ""
	switch s := e.Value.State.(type) {
	case progress.Blocked:
		stateMarker = " (blocked: " + s.Reason + ")"
	case progress.Halted:
		stateMarker = " (halted: " + s.Reason + ")"
	}

	row := fmt.Sprintf("%s %s %s%s", name, value, percentage, stateMarker)
	if showThroughput && hasRate && e.Value.Unit != nil {
		if tp := e.Value.Unit.DisplayThroughput(rate); tp != "" {
			row += " " + tp
		}
	}
	return truncate(strings.TrimRight(row, " "), columns)
}

// visibleEntries applies the level filter and returns at most maxRows
// entries plus the count of rows dropped by the row cap (not the filter).
func visibleEntries(entries []tree.Entry, filter *LevelRange, maxRows int) ([]tree.Entry, int) {
	filtered := entries[:0:0]
	for _, e := range entries {
		if filter == nil || filter.contains(e.Key.Depth()) {
			filtered = append(filtered, e)
		}
	}
	if maxRows <= 0 || len(filtered) <= maxRows {
		return filtered, 0
	}
	return filtered[:maxRows], len(filtered) - maxRows
}

func throughputFor(tp *unit.Throughput, e tree.Entry, elapsed time.Duration) (float64, bool) {
	if tp == nil {
		return 0, false
	}
	return tp.Update(e.Key, e.Value.Step, elapsed)
}

// reconcileThroughput drops tracked keys no longer present in the latest
// snapshot, run once per tick after the snapshot is taken.
func reconcileThroughput(tp *unit.Throughput, entries []tree.Entry) {
	keys := make([]key.Key, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	tp.Reconcile(keys)
}
