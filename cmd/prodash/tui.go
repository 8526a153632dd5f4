package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/prodash/internal/xdgconfig"
	"github.com/ShayCichocki/prodash/render/tui"
	"github.com/ShayCichocki/prodash/tree"
)

var (
	tuiProducers int
	tuiTasks     int
	tuiSteps     uint64
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Render simulated progress with the full-screen dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&tuiProducers, "producers", 4, "number of concurrent task producers")
	tuiCmd.Flags().IntVar(&tuiTasks, "tasks", 3, "tasks per producer")
	tuiCmd.Flags().Uint64Var(&tuiSteps, "steps", 40, "steps per task")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := xdgconfig.Watch(func(_ *xdgconfig.Config, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "prodash: reloading config: %v\n", err)
			return
		}
		fmt.Fprintln(os.Stderr, "prodash: config file changed, restart to pick it up")
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	root := tree.NewRoot(tree.Options{})
	handle, err := tui.Start(ctx, os.Stdout, os.Stdin, root, tui.Options{
		Title:                             "prodash",
		FramesPerSecond:                   cfg.TUI.FramesPerSecond,
		RecomputeColumnWidthEveryNthFrame: cfg.TUI.RecomputeColumnWidthEveryNthFrame,
		Throughput:                        cfg.TUI.Throughput,
		Colored:                           cfg.TUI.Colored,
		Interruptible:                     true,
	})
	if err != nil {
		return err
	}

	err = simulate(ctx, root, simulateOptions{
		Producers:     tuiProducers,
		TasksPerGroup: tuiTasks,
		StepsPerTask:  tuiSteps,
		StepInterval:  60 * time.Millisecond,
	})
	closeErr := handle.Close()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err == nil {
		err = closeErr
	}
	return err
}
