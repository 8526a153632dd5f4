package line

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/ShayCichocki/prodash/internal/termcolor"
	"github.com/ShayCichocki/prodash/tree"
	"github.com/ShayCichocki/prodash/unit"
)

// Handle controls a running line renderer, mirroring the original's
// JoinHandle: detach/forget/wait/shutdown-and-wait around one background
// goroutine driven by a caller-owned time.Ticker.
type Handle struct {
	cancel       context.CancelFunc
	disconnected bool
	wg           sync.WaitGroup
	forgotten    bool
}

// Disconnect removes this handle's ability to stop the renderer: the
// renderer keeps running until the progress tree runs dry (or forever, if
// KeepRunningIfProgressIsEmpty is set) without this handle requesting a
// final render first.
func (h *Handle) Disconnect() {
	h.disconnected = true
}

// Forget drops the handle's ability to Wait, leaking the goroutine.
func (h *Handle) Forget() {
	h.forgotten = true
}

// Wait blocks until the render goroutine exits naturally, unless Forget
// was called.
func (h *Handle) Wait() {
	if h.forgotten {
		return
	}
	h.wg.Wait()
}

// ShutdownAndWait requests a final render and shutdown, then blocks until
// the render goroutine exits.
func (h *Handle) ShutdownAndWait() {
	if !h.disconnected {
		h.cancel()
	}
	h.Wait()
}

// Render starts a background goroutine that redraws root's progress into
// out at opts.FramesPerSecond, returning a Handle to control it.
func Render(out io.Writer, root *tree.Root, opts Options) *Handle {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{cancel: cancel}

	h.wg.Add(1)
	go run(ctx, out, root, opts, h)
	return h
}

// DetectIsTerminal reports whether out is a terminal, for callers building
// Options.OutputIsTerminal. Non-file writers (buffers, pipes wrapped in a
// type other than *os.File) are reported as not a terminal.
func DetectIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func detectDimensions(opts Options, out io.Writer) Dimensions {
	if opts.TerminalDimensions != nil {
		return *opts.TerminalDimensions
	}
	if f, ok := out.(*os.File); ok {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			return Dimensions{Columns: w, Rows: h}
		}
	}
	return Dimensions{Columns: fallbackColumns, Rows: fallbackRows}
}

func run(ctx context.Context, out io.Writer, root *tree.Root, opts Options, h *Handle) {
	defer h.wg.Done()

	if opts.HideCursor {
		fmt.Fprint(out, "\x1b[?25l")
		defer fmt.Fprint(out, "\x1b[?25h")
	}

	colored := opts.Colored && termcolor.Allowed()
	opts.Colored = colored

	st := &state{}
	var throughput *unit.Throughput
	if opts.Throughput {
		throughput = unit.NewThroughput()
	}

	ticker := time.NewTicker(opts.tickInterval())
	defer ticker.Stop()

	var showProgress atomic.Bool
	showProgress.Store(opts.InitialDelay <= 0)
	if !showProgress.Load() {
		time.AfterFunc(opts.InitialDelay, func() { showProgress.Store(true) })
	}

	lastTick := time.Now()
	for {
		select {
		case <-ctx.Done():
			drawFrame(out, root, opts, st, throughput, true, time.Since(lastTick))
			finish(out, opts)
			return
		case now := <-ticker.C:
			elapsed := now.Sub(lastTick)
			lastTick = now
			empty := drawFrame(out, root, opts, st, throughput, showProgress.Load(), elapsed)
			if empty && !opts.KeepRunningIfProgressIsEmpty {
				finish(out, opts)
				return
			}
		}
	}
}

func finish(out io.Writer, opts Options) {
	if opts.DoneMessage != "" {
		fmt.Fprintln(out, opts.DoneMessage)
	}
}

// drawFrame runs one tick of the redraw protocol and reports whether the
// snapshot came back with no visible rows.
func drawFrame(out io.Writer, root *tree.Root, opts Options, st *state, tp *unit.Throughput, showProgress bool, elapsed time.Duration) bool {
	st.entries = root.SortedSnapshot(st.entries)
	st.messages, st.lastMsgSeq = root.CopyNewMessages(st.messages[:0], st.lastMsgSeq)

	if !opts.OutputIsTerminal || !showProgress {
		writeMessages(out, st.messages, opts)
		return len(st.entries) == 0
	}

	dims := detectDimensions(opts, out)

	maxRows := dims.Rows
	if maxRows <= 0 {
		maxRows = fallbackRows
	}
	visible, dropped := visibleEntries(st.entries, opts.LevelFilter, maxRows)

	// Move the cursor above last tick's whole redrawn block (progress rows
	// plus any messages printed below them) before inserting this tick's
	// new messages, so they land above the progress region instead of
	// scrolling in below a block the cursor never backed out of.
	cursorUp(out, st.lastLines)
	writeMessages(out, st.messages, opts)

	nameWidth := nameColumnWidth(visible, dims.Columns/2)
	lines := 0
	for _, e := range visible {
		rate, hasRate := throughputFor(tp, e, elapsed)
		fmt.Fprint(out, eraseToEndOfLine)
		fmt.Fprintln(out, renderRow(e, nameWidth, dims.Columns, opts.Throughput, rate, hasRate))
		lines++
	}
	if dropped > 0 {
		fmt.Fprint(out, eraseToEndOfLine)
		fmt.Fprintf(out, "(+%d more)\n", dropped)
		lines++
	}
	if tp != nil {
		reconcileThroughput(tp, st.entries)
	}
	st.lastLines = lines + len(st.messages)
	return len(st.entries) == 0
}
