package tree

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ShayCichocki/prodash/progress"
	"github.com/ShayCichocki/prodash/unit"
)

// TestBasicCounting mirrors scenario S1: a single child counted up to its
// max via four IncBy(25) calls should read 100% done, with done_at unset.
func TestBasicCounting(t *testing.T) {
	root := NewRoot(Options{})
	item := root.AddChild("copy")
	max := uint64(100)
	item.Init(&max, unit.NewBytes())
	for i := 0; i < 4; i++ {
		item.IncBy(25)
	}

	snap := root.SortedSnapshot(nil)
	if len(snap) != 1 {
		t.Fatalf("snapshot len = %d, want 1", len(snap))
	}
	v := snap[0].Value
	if v.Step != 100 {
		t.Fatalf("step = %d, want 100", v.Step)
	}
	if v.DoneAt != nil {
		t.Fatal("DoneAt should be unset, Done was never called")
	}
	if got := v.Unit.DisplayPercentage(v.Step, *v.Max); got != "[100.00%]" {
		t.Fatalf("DisplayPercentage = %q", got)
	}
}

// TestStepMonotonicBetweenInitCalls covers invariant 2.
func TestStepMonotonicBetweenInitCalls(t *testing.T) {
	root := NewRoot(Options{})
	item := root.AddChild("task")
	item.Init(nil, nil)
	var last uint64
	for i := 0; i < 10; i++ {
		item.Inc()
		snap := root.SortedSnapshot(nil)
		step := snap[0].Value.Step
		if step < last {
			t.Fatalf("step went backwards: %d then %d", last, step)
		}
		last = step
	}
	item.Init(nil, nil)
	snap := root.SortedSnapshot(nil)
	if snap[0].Value.Step != 0 {
		t.Fatalf("step after re-Init = %d, want 0", snap[0].Value.Step)
	}
}

// TestTraversalIsStrictlyLexicographic covers invariant 1.
func TestTraversalIsStrictlyLexicographic(t *testing.T) {
	root := NewRoot(Options{})
	a := root.AddChild("a")
	b := root.AddChild("b")
	a.AddChild("a-child")
	_ = b

	snap := root.SortedSnapshot(nil)
	for i := 1; i < len(snap); i++ {
		if !snap[i-1].Key.Less(snap[i].Key) {
			t.Fatalf("snapshot not strictly increasing at %d: %v >= %v", i, snap[i-1].Key, snap[i].Key)
		}
	}
}

// TestMessageRingOverflow mirrors scenario S3.
func TestMessageRingOverflow(t *testing.T) {
	root := NewRoot(Options{MessageBufferCapacity: 4})
	item := root.AddChild("task")
	for i := 1; i <= 6; i++ {
		item.Info(fmt.Sprintf("m%d", i))
	}

	all := root.CopyMessages(nil)
	if len(all) != 4 {
		t.Fatalf("len(all) = %d, want 4", len(all))
	}
	wantContents := []string{"m3", "m4", "m5", "m6"}
	for i, w := range wantContents {
		if all[i].Content != w {
			t.Fatalf("all[%d] = %q, want %q", i, all[i].Content, w)
		}
	}

	seqOfM4 := all[1].Seq
	newer, lastSeq := root.CopyNewMessages(nil, seqOfM4)
	if len(newer) != 2 || newer[0].Content != "m5" || newer[1].Content != "m6" {
		t.Fatalf("CopyNewMessages after m4 = %+v, want [m5 m6]", newer)
	}
	if lastSeq != newer[1].Seq {
		t.Fatalf("lastSeq = %d, want %d", lastSeq, newer[1].Seq)
	}
}

// TestCopyNewMessagesNoDuplicatesNoGaps covers invariant 3 directly.
func TestCopyNewMessagesNoDuplicatesNoGaps(t *testing.T) {
	root := NewRoot(Options{MessageBufferCapacity: 10})
	item := root.AddChild("task")
	for i := 0; i < 5; i++ {
		item.Info(fmt.Sprintf("m%d", i))
	}
	all := root.CopyMessages(nil)
	seq := all[1].Seq
	newer, _ := root.CopyNewMessages(nil, seq)
	if len(newer) != 3 {
		t.Fatalf("len(newer) = %d, want 3", len(newer))
	}
	seen := map[uint64]bool{}
	prev := seq
	for _, m := range newer {
		if seen[m.Seq] {
			t.Fatalf("duplicate seq %d", m.Seq)
		}
		seen[m.Seq] = true
		if m.Seq <= prev {
			t.Fatalf("gap/out-of-order: %d after %d", m.Seq, prev)
		}
		prev = m.Seq
	}
}

// TestConcurrentProducers mirrors scenario S5: many goroutines each create
// a run of sequential children and close them; after all join, no
// record should remain live and no key collision should have occurred.
func TestConcurrentProducers(t *testing.T) {
	root := NewRoot(Options{MessageBufferCapacity: 64})
	const goroutines = 32
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < perGoroutine; n++ {
				item := root.AddChild(fmt.Sprintf("task-%d", n))
				for m := 0; m < 10; m++ {
					item.Info("progress")
				}
				item.Close()
			}
		}()
	}
	wg.Wait()

	if got := root.NumTasks(); got != 0 {
		t.Fatalf("NumTasks() = %d, want 0 after every Item was closed", got)
	}
	used, capacity := root.MessageBufferUsage()
	if used != capacity {
		t.Fatalf("used = %d, want full ring at capacity %d", used, capacity)
	}
}

// TestDoneRecordRetainedBriefly covers the retained-for-fade-out half of
// invariant 1.
func TestDoneRecordRetainedBriefly(t *testing.T) {
	root := NewRoot(Options{RetainDoneFor: 20 * time.Millisecond})
	item := root.AddChild("task")
	item.Done("finished")

	if root.NumTasks() != 1 {
		t.Fatal("record should still be present immediately after Done")
	}
	time.Sleep(60 * time.Millisecond)
	if root.NumTasks() != 0 {
		t.Fatal("record should have been reaped after RetainDoneFor elapsed")
	}
}

// TestCloseRemovesChildrenWhenConfigured exercises
// Options.RemoveChildrenOnClose.
func TestCloseRemovesChildrenWhenConfigured(t *testing.T) {
	root := NewRoot(Options{RemoveChildrenOnClose: true})
	parent := root.AddChild("parent")
	parent.AddChild("child-a")
	parent.AddChild("child-b")

	if root.NumTasks() != 3 {
		t.Fatalf("NumTasks() = %d, want 3 before close", root.NumTasks())
	}
	parent.Close()
	if root.NumTasks() != 0 {
		t.Fatalf("NumTasks() = %d, want 0 after closing with RemoveChildrenOnClose", root.NumTasks())
	}
}

func TestBlockedStateClearedByInc(t *testing.T) {
	root := NewRoot(Options{})
	item := root.AddChild("task")
	item.Init(nil, nil)
	item.Blocked("waiting on network", nil)

	snap := root.SortedSnapshot(nil)
	if _, ok := snap[0].Value.State.(progress.Blocked); !ok {
		t.Fatalf("state = %T, want Blocked", snap[0].Value.State)
	}

	item.Inc()
	snap = root.SortedSnapshot(nil)
	if _, ok := snap[0].Value.State.(progress.Running); !ok {
		t.Fatalf("state after Inc = %T, want Running", snap[0].Value.State)
	}
}
