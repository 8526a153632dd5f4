package line

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ShayCichocki/prodash/tree"
	"github.com/ShayCichocki/prodash/unit"
)

// TestShutdownRendersFinalFrame mirrors scenario S6: after adding three
// tasks and shutting the renderer down, the final frame must show all
// three at their last step, and no stray escape sequences should appear
// past a well-formed erase-to-end-of-line.
func TestShutdownRendersFinalFrame(t *testing.T) {
	root := tree.NewRoot(tree.Options{})
	for i := 0; i < 3; i++ {
		item := root.AddChild(strings.Repeat("x", i+1))
		item.Init(nil, unit.NewLabel("steps"))
		item.IncBy(uint64(i + 1))
	}

	var buf bytes.Buffer
	h := Render(&buf, root, Options{
		OutputIsTerminal:             true,
		FramesPerSecond:              30,
		TerminalDimensions:           &Dimensions{Columns: 80, Rows: 24},
		KeepRunningIfProgressIsEmpty: true,
	})
	h.ShutdownAndWait()

	out := buf.String()
	for i := 0; i < 3; i++ {
		name := strings.Repeat("x", i+1)
		if !strings.Contains(out, name) {
			t.Fatalf("final frame missing task %q:\n%s", name, out)
		}
	}
}

// TestDisconnectSkipsFinalRender exercises Disconnect: the renderer should
// stop without the caller forcing one last frame out of it via context
// cancellation from ShutdownAndWait.
func TestDisconnectSkipsFinalRender(t *testing.T) {
	root := tree.NewRoot(tree.Options{})
	var buf bytes.Buffer
	h := Render(&buf, root, Options{
		OutputIsTerminal: true,
		FramesPerSecond:  30,
	})
	h.Disconnect()
	// With nothing in the tree and KeepRunningIfProgressIsEmpty unset,
	// the render loop exits on its own shortly after the first tick.
	time.Sleep(100 * time.Millisecond)
	h.Wait()
}

// TestDrawFrameMovesCursorAboveBlockBeforeMessages mirrors spec.md:118's
// "messages are printed above the progress region" guarantee: the second
// tick's cursorUp escape sequence, which backs out of the first tick's
// whole redrawn block, must be written before that tick's new message
// text, not after it.
func TestDrawFrameMovesCursorAboveBlockBeforeMessages(t *testing.T) {
	root := tree.NewRoot(tree.Options{})
	item := root.AddChild("task")
	item.Init(nil, unit.NewLabel("steps"))
	item.IncBy(1)

	var buf bytes.Buffer
	opts := Options{
		OutputIsTerminal:   true,
		TerminalDimensions: &Dimensions{Columns: 80, Rows: 24},
	}
	st := &state{}

	drawFrame(&buf, root, opts, st, nil, true, 0)
	if st.lastLines != 1 {
		t.Fatalf("lastLines after first tick = %d, want 1", st.lastLines)
	}

	item.Info("hello")
	drawFrame(&buf, root, opts, st, nil, true, 0)

	out := buf.String()
	cursorUpIdx := strings.Index(out, "\x1b[1A")
	helloIdx := strings.Index(out, "hello")
	if cursorUpIdx == -1 {
		t.Fatalf("expected a cursorUp escape sequence in output:\n%s", out)
	}
	if helloIdx == -1 {
		t.Fatalf("expected the message to appear in output:\n%s", out)
	}
	if cursorUpIdx > helloIdx {
		t.Fatalf("cursorUp at %d came after message at %d, want cursorUp first:\n%s", cursorUpIdx, helloIdx, out)
	}
	if st.lastLines != 2 {
		t.Fatalf("lastLines after second tick = %d, want 2 (1 progress row + 1 message line)", st.lastLines)
	}
}

func TestVisibleEntriesTruncatesAndMarksDropped(t *testing.T) {
	root := tree.NewRoot(tree.Options{})
	for i := 0; i < 5; i++ {
		root.AddChild("task")
	}
	snap := root.SortedSnapshot(nil)

	visible, dropped := visibleEntries(snap, nil, 3)
	if len(visible) != 3 {
		t.Fatalf("len(visible) = %d, want 3", len(visible))
	}
	if dropped != 2 {
		t.Fatalf("dropped = %d, want 2", dropped)
	}
}

func TestTruncateAddsEllipsisOnlyWhenNeeded(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate short string changed it: %q", got)
	}
	got := truncate("a very long task name indeed", 10)
	if len([]rune(got)) > 10 {
		t.Fatalf("truncate did not respect width: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("truncate did not add ellipsis: %q", got)
	}
}
