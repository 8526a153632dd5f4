package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/ShayCichocki/prodash/internal/termcolor"
	"github.com/ShayCichocki/prodash/tree"
)

// Handle controls a running dashboard. Close enforces the mandatory
// shutdown order: stopping the repaint ticker (bubbletea simply never
// calls Update again once quitting), flushing the terminal and dropping
// the alternate screen, then flushing the underlying writer — all of
// which tea.Program.Run performs internally before returning, in that
// order, once Quit is requested.
type Handle struct {
	program *tea.Program
	wg      sync.WaitGroup
	err     error
}

// Start starts the dashboard against root, writing to out and reading key
// events from in, until the returned Handle is closed or ctx is canceled.
// It fails synchronously, before launching anything, if out isn't a
// terminal the alternate screen can be opened on.
func Start(ctx context.Context, out io.Writer, in io.Reader, root *tree.Root, opts Options) (*Handle, error) {
	if err := checkTerminalAvailable(out); err != nil {
		return nil, err
	}
	// out is confirmed a terminal above, so this is the renderers' shared
	// "colored && output_is_terminal" check with output_is_terminal fixed true.
	opts.Colored = opts.Colored && termcolor.Resolve(true)

	m := newModel(root, opts)

	teaOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(out), tea.WithInput(in)}
	program := tea.NewProgram(m, teaOpts...)

	h := &Handle{program: program}
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		_, h.err = program.Run()
	}()
	if opts.WindowSize != nil {
		program.Send(tea.WindowSizeMsg{Width: opts.WindowSize.Columns, Height: opts.WindowSize.Rows})
	}
	go func() {
		<-ctx.Done()
		program.Quit()
	}()
	return h, nil
}

// checkTerminalAvailable reports an error if out is not a terminal file
// bubbletea can put into raw mode and draw the alternate screen on.
func checkTerminalAvailable(out io.Writer) error {
	f, ok := out.(*os.File)
	if !ok {
		return fmt.Errorf("tui: output is not a terminal: %T does not wrap a file descriptor", out)
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return fmt.Errorf("tui: output %s is not a terminal", f.Name())
	}
	return nil
}

// Wait blocks until the dashboard exits on its own (e.g. q was pressed, or
// StopIfEmptyProgress fired) and reports any error bubbletea returned.
func (h *Handle) Wait() error {
	h.wg.Wait()
	return h.err
}

// Close requests shutdown and blocks until it completes.
func (h *Handle) Close() error {
	h.program.Quit()
	return h.Wait()
}
