package viewer

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rneiva/autoscroll/internal/layout"
	"github.com/rneiva/autoscroll/internal/scroll"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract
	switch x := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(x)

	case tickMsg:
		return m.handleTick()

	case tea.WindowSizeMsg:
		// Geometry is fixed at startup; resize handling is out of scope.
		return m, nil
	}

	return m, nil
}

// handleTick runs one scheduler step and rebuilds the frame. The scheduler
// decides first, then the layout engine renders whatever the window holds
// afterwards.
func (m Model) handleTick() (Model, tea.Cmd) {
	m.now = time.Now()

	if m.sched.Tick(m.store) == scroll.OutcomeFinished {
		m.quitting = true
		return m, tea.Quit
	}

	var b strings.Builder
	m.lastRender = layout.Render(m.store.Lines(), m.vp, &b)
	m.frame = b.String()
	m.sched.ObserveRender(m.lastRender)

	return m, m.scheduleTick()
}

// handleKey processes key bindings and returns the updated model.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.sched.Pause()

	case key.Matches(msg, m.keys.Resume):
		m.sched.Resume()

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	}

	return m, nil
}
