// Package viewer drives the autoscrolling display as a Bubble Tea program:
// the runtime delivers one message at a time (timer tick, key press,
// termination) and the model dispatches on it, so all state lives on a
// single goroutine.
package viewer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rneiva/autoscroll/internal/layout"
	"github.com/rneiva/autoscroll/internal/scroll"
	"github.com/rneiva/autoscroll/internal/textfile"
)

// Model is the root Bubble Tea model. It exclusively owns the line store;
// the layout engine only borrows it during a render cycle.
type Model struct {
	store *textfile.List
	vp    layout.Viewport
	sched *scroll.Scheduler

	// now is the wall clock shown on the status bar. It keeps advancing
	// every tick even while scrolling is paused.
	now time.Time

	// frame and lastRender are rebuilt once per tick, never in View.
	frame      string
	lastRender layout.Result

	helpVisible bool
	quitting    bool

	keys keyMap
	help help.Model
}

// NewModel constructs a Model over an already-loaded store.
func NewModel(store *textfile.List, vp layout.Viewport, intervalSeconds int) Model {
	h := help.New()
	h.Width = vp.Cols
	return Model{
		store: store,
		vp:    vp,
		sched: scroll.NewScheduler(intervalSeconds),
		now:   time.Now(),
		keys:  newKeyMap(),
		help:  h,
	}
}

// Init implements tea.Model. The first tick fires immediately so the first
// scroll interval is measured from program start.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg{} }
}

// scheduleTick arms the next one-second tick.
func (m Model) scheduleTick() tea.Cmd {
	return func() tea.Msg {
		time.Sleep(tickInterval)
		return tickMsg{}
	}
}
