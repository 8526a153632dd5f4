package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

const legend = "?:help  j/k:scroll  {/}:resize  1-9:speed  q:quit"

func titleBar(title string, taskCount int, elapsed time.Duration, width int, colored bool) string {
	left := fmt.Sprintf("%s  tasks:%d  %s", title, taskCount, elapsed.Round(time.Second))
	right := legend
	if colored {
		left = titleStyle.Render(title) + fmt.Sprintf("  tasks:%d  %s", taskCount, elapsed.Round(time.Second))
		right = dimStyle.Render(legend)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return truncateName(line, width)
}

func helpOverlay(width, height int) string {
	lines := []string{
		"Keyboard controls",
		"",
		"?        toggle this help",
		"j / k    scroll the message pane",
		"{ / }    shrink / grow the message pane",
		"1-9      set scroll speed (lines per key press)",
		"q, ^C    quit",
	}
	body := ""
	for i, l := range lines {
		if i == height-1 {
			break
		}
		body += truncateName(l, width) + "\n"
	}
	return body
}
