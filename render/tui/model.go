package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/prodash/key"
	"github.com/ShayCichocki/prodash/progress"
	"github.com/ShayCichocki/prodash/tree"
	"github.com/ShayCichocki/prodash/unit"
)

func growFloat64(s []float64, n int) []float64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]float64, n)
}

func growBool(s []bool, n int) []bool {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]bool, n)
}

const (
	minMessagePaneHeight = 1
	minTaskPaneRows      = 1
	messagePaneStep      = 1
	defaultScrollSpeed   = 1
)

type tickMsg time.Time

// model is the bubbletea tea.Model driving the dashboard: one ticker-driven
// repaint per frame, with the task pane and message pane laid out under a
// single title bar.
type model struct {
	root *tree.Root
	opts Options

	width, height int
	started       time.Time
	lastTick      time.Time

	entries    []tree.Entry
	messages   []tree.Message
	lastMsgSeq uint64

	throughput *unit.Throughput
	rates      []float64
	hasRate    []bool
	columns    *columnWidthTracker

	messageHeight int
	scrollSpeed   int
	showHelp      bool
	quitting      bool

	viewport viewport.Model
}

func newModel(root *tree.Root, opts Options) *model {
	m := &model{
		root:          root,
		opts:          opts,
		columns:       newColumnWidthTracker(opts.recomputeEveryNthFrame()),
		messageHeight: 5,
		scrollSpeed:   defaultScrollSpeed,
		viewport:      viewport.New(0, 5),
	}
	if opts.Throughput {
		m.throughput = unit.NewThroughput()
	}
	return m
}

func (m *model) Init() tea.Cmd {
	m.started = time.Now()
	m.lastTick = m.started
	return tickCmd(m.opts.tickInterval())
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeViewport()

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		now := time.Time(msg)
		elapsed := now.Sub(m.lastTick)
		m.lastTick = now
		empty := m.refresh(elapsed)
		if empty && m.opts.StopIfEmptyProgress {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.opts.tickInterval())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.opts.Interruptible {
			m.quitting = true
			return m, tea.Quit
		}
	case "?":
		m.showHelp = !m.showHelp
	case "j":
		m.viewport.LineDown(m.scrollSpeed)
	case "k":
		m.viewport.LineUp(m.scrollSpeed)
	case "{":
		m.resizeMessagePane(-messagePaneStep)
	case "}":
		m.resizeMessagePane(messagePaneStep)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.scrollSpeed = int(msg.String()[0] - '0')
	}
	return m, nil
}

func (m *model) resizeMessagePane(delta int) {
	h := m.messageHeight + delta
	maxHeight := m.height - 1 - minTaskPaneRows
	if maxHeight < minMessagePaneHeight {
		maxHeight = minMessagePaneHeight
	}
	if h < minMessagePaneHeight {
		h = minMessagePaneHeight
	}
	if h > maxHeight {
		h = maxHeight
	}
	m.messageHeight = h
	m.resizeViewport()
}

func (m *model) resizeViewport() {
	m.viewport.Width = m.width
	m.viewport.Height = m.messageHeight
	if m.viewport.Height < 0 {
		m.viewport.Height = 0
	}
}

// refresh takes a fresh snapshot of the tree and message ring and reports
// whether the tree currently holds no tasks at all.
func (m *model) refresh(elapsed time.Duration) bool {
	m.entries = m.root.SortedSnapshot(m.entries)
	m.messages, m.lastMsgSeq = m.root.CopyNewMessages(m.messages[:0], m.lastMsgSeq)

	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(renderMessages(m.messages, m.opts))
	if atBottom {
		m.viewport.GotoBottom()
	}

	m.rates = growFloat64(m.rates, len(m.entries))
	m.hasRate = growBool(m.hasRate, len(m.entries))
	if m.throughput != nil {
		for i, e := range m.entries {
			m.rates[i], m.hasRate[i] = throughputFor(m.throughput, e, elapsed)
		}
		sortedKeys := make([]key.Key, len(m.entries))
		for i, e := range m.entries {
			sortedKeys[i] = e.Key
		}
		m.throughput.Reconcile(sortedKeys)
	}

	return len(m.entries) == 0
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return ""
	}

	elapsed := time.Since(m.started)
	bar := titleBar(m.opts.Title, len(m.entries), elapsed, m.width, m.opts.Colored)

	taskPaneHeight := m.height - 1 - m.messageHeight
	if taskPaneHeight < 0 {
		taskPaneHeight = 0
	}

	var body string
	if m.showHelp {
		body = helpOverlay(m.width, taskPaneHeight)
	} else {
		body = m.renderTaskPane(taskPaneHeight)
	}

	return strings.Join([]string{bar, body, m.viewport.View()}, "\n")
}

func (m *model) renderTaskPane(maxRows int) string {
	if maxRows <= 0 || len(m.entries) == 0 {
		return ""
	}
	nameWidth := m.columns.Observe(m.entries, m.width/2)

	rows := m.entries
	dropped := 0
	if len(rows) > maxRows {
		dropped = len(rows) - maxRows
		rows = rows[:maxRows]
	}

	lines := make([]string, 0, len(rows)+1)
	for i := range rows {
		var rate float64
		var hasRate bool
		if i < len(m.rates) {
			rate, hasRate = m.rates[i], m.hasRate[i]
		}
		lines = append(lines, taskRow(m.entries, i, nameWidth, m.width, m.opts.Throughput, rate, hasRate))
	}
	if dropped > 0 {
		lines = append(lines, dimStyle.Render("(+"+strconv.Itoa(dropped)+" more)"))
	}
	return strings.Join(lines, "\n")
}

func messageColor(level progress.MessageLevel, colored bool) func(string) string {
	if !colored {
		return func(s string) string { return s }
	}
	var style lipgloss.Style
	switch level {
	case progress.Success:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	case progress.Failure:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	}
	return func(s string) string { return style.Render(s) }
}

func renderMessages(messages []tree.Message, opts Options) string {
	var b strings.Builder
	for _, m := range messages {
		prefix := ""
		if opts.Timestamp {
			prefix = m.Time.Local().Format("15:04:05.000") + " "
		}
		color := messageColor(m.Level, opts.Colored)
		b.WriteString(prefix)
		b.WriteString(dimStyle.Render(m.Origin))
		b.WriteString("→")
		b.WriteString(color(m.Content))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
