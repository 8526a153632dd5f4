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
	"github.com/ShayCichocki/prodash/render/line"
	"github.com/ShayCichocki/prodash/tree"
)

var (
	lineProducers int
	lineTasks     int
	lineSteps     uint64
)

var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Render simulated progress with the line renderer",
	RunE:  runLine,
}

func init() {
	lineCmd.Flags().IntVar(&lineProducers, "producers", 4, "number of concurrent task producers")
	lineCmd.Flags().IntVar(&lineTasks, "tasks", 3, "tasks per producer")
	lineCmd.Flags().Uint64Var(&lineSteps, "steps", 20, "steps per task")
}

func runLine(cmd *cobra.Command, args []string) error {
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
	handle := line.Render(os.Stdout, root, line.Options{
		OutputIsTerminal: line.DetectIsTerminal(os.Stdout),
		Colored:          cfg.Line.Colored,
		Timestamp:        cfg.Line.Timestamp,
		FramesPerSecond:  cfg.Line.FramesPerSecond,
		InitialDelay:     cfg.Line.InitialDelay,
		HideCursor:       true,
		DoneMessage:      "done",
	})

	err = simulate(ctx, root, simulateOptions{
		Producers:     lineProducers,
		TasksPerGroup: lineTasks,
		StepsPerTask:  lineSteps,
		StepInterval:  80 * time.Millisecond,
	})
	handle.ShutdownAndWait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
