package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ShayCichocki/prodash/progress"
	"github.com/ShayCichocki/prodash/tree"
	"github.com/ShayCichocki/prodash/unit"
)

// simulateOptions configures the concurrent producer load generator used to
// manually exercise scenario S5 (many goroutines mutating the tree at once)
// against either renderer.
type simulateOptions struct {
	Producers     int
	TasksPerGroup int
	StepsPerTask  uint64
	StepInterval  time.Duration
}

// simulate runs opts.Producers goroutines in parallel, each owning a group
// of child tasks under its own top-level entry, incrementing them with
// jitter until every task reaches its max step, then marking each done.
// It returns once every producer's group has finished or ctx is canceled.
func simulate(ctx context.Context, root *tree.Root, opts simulateOptions) error {
	g, ctx := errgroup.WithContext(ctx)

	for p := 0; p < opts.Producers; p++ {
		p := p
		g.Go(func() error {
			return runProducer(ctx, root, p, opts)
		})
	}
	return g.Wait()
}

func runProducer(ctx context.Context, root *tree.Root, index int, opts simulateOptions) error {
	group := root.AddChild(fmt.Sprintf("worker-%d", index))
	defer group.Close()

	r := rand.New(rand.NewSource(int64(index) + 1))

	for t := 0; t < opts.TasksPerGroup; t++ {
		max := opts.StepsPerTask
		item := group.AddChild(fmt.Sprintf("task-%d.%d", index, t))
		item.Init(&max, unit.NewHuman("items"))

		for step := uint64(0); step < max; step++ {
			select {
			case <-ctx.Done():
				item.Fail("canceled")
				return ctx.Err()
			case <-time.After(opts.StepInterval + time.Duration(r.Intn(5))*time.Millisecond):
			}
			item.Inc()
			if step == max/2 {
				item.Info("halfway there")
			}
		}
		item.Done("complete")
	}
	group.Message(progress.Success, "worker finished")
	return nil
}
