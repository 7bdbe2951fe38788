package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // Shared immutable styles.
var (
	clockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// View implements tea.Model. It pads the cached frame down to the bottom row
// and draws the status bar there; all screen clearing and cursor motion is
// the alt-screen renderer's business.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.frame)
	for i := m.lastRender.RowsUsed; i < m.vp.ContentRows(); i++ {
		b.WriteByte('\n')
	}
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderStatusBar formats the bottom row: wall clock, the inclusive line
// range on screen, and a pause badge, padded toward the right edge. When the
// help overlay is toggled the key bindings take the row instead.
func (m Model) renderStatusBar() string {
	if m.helpVisible {
		return m.help.View(m.keys)
	}

	start := m.sched.StartLine()
	status := fmt.Sprintf("%s Lines: %d-%d",
		clockStyle.Render(m.now.Format("15:04:05")),
		start, start+m.lastRender.LinesShown-1)
	if m.sched.Paused() {
		status += " " + pausedStyle.Render("PAUSED")
	}

	pad := m.vp.Cols - statusRightMargin - lipgloss.Width(status)
	if pad > 0 {
		status += strings.Repeat(" ", pad)
	}
	return status
}
