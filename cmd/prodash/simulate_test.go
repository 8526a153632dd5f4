package main

import (
	"context"
	"testing"
	"time"

	"github.com/ShayCichocki/prodash/tree"
)

// TestSimulateCompletesAllTasks mirrors scenario S5's shape (many
// concurrent producers mutating the shared tree) at a scale small enough to
// run quickly, and checks that the tree is empty once every producer closes
// its group.
func TestSimulateCompletesAllTasks(t *testing.T) {
	root := tree.NewRoot(tree.Options{RetainDoneFor: time.Millisecond})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := simulate(ctx, root, simulateOptions{
		Producers:     6,
		TasksPerGroup: 2,
		StepsPerTask:  3,
		StepInterval:  time.Millisecond,
	})
	if err != nil {
		t.Fatalf("simulate() error = %v", err)
	}

	time.Sleep(20 * time.Millisecond) // let RetainDoneFor's reap timers fire
	if root.NumTasks() != 0 {
		t.Fatalf("NumTasks() = %d, want 0 once every producer group is closed and done tasks reaped", root.NumTasks())
	}
}

// TestSimulateCancellationStopsPromptly ensures a canceled context unwinds
// every producer instead of hanging.
func TestSimulateCancellationStopsPromptly(t *testing.T) {
	root := tree.NewRoot(tree.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := simulate(ctx, root, simulateOptions{
		Producers:     3,
		TasksPerGroup: 1,
		StepsPerTask:  1000,
		StepInterval:  time.Millisecond,
	})
	if err == nil {
		t.Fatal("expected simulate to report cancellation")
	}
}
