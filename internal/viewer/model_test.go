//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package viewer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rneiva/autoscroll/internal/layout"
	"github.com/rneiva/autoscroll/internal/textfile"
)

func newTestModel(t *testing.T, interval int, vp layout.Viewport, content string) Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	store, err := textfile.Load(path)
	require.NoError(t, err)
	return NewModel(store, vp, interval)
}

// apply runs one Update and recovers the concrete model type.
func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runePress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTick_RendersWindowAndStatusBar(t *testing.T) {
	vp := layout.Viewport{Rows: 4, Cols: 80}
	m := newTestModel(t, 2, vp, "a\nb\nc\nd\ne\n")

	m, cmd := apply(t, m, tickMsg{})
	require.NotNil(t, cmd)

	assert.Equal(t, "a\nb\nc\n", m.frame)

	view := m.View()
	rows := strings.Split(view, "\n")
	require.Len(t, rows, vp.Rows)
	assert.Contains(t, rows[vp.Rows-1], "Lines: 1-3")
}

func TestTick_ScrollAdvancesWindow(t *testing.T) {
	vp := layout.Viewport{Rows: 4, Cols: 80}
	m := newTestModel(t, 2, vp, "a\nb\nc\nd\ne\n")

	// t=0 and t=1: countdown running, window pinned at line 1.
	m, _ = apply(t, m, tickMsg{})
	m, _ = apply(t, m, tickMsg{})
	assert.Equal(t, "a\nb\nc\n", m.frame)

	// t=2: interval elapsed, head dropped.
	m, _ = apply(t, m, tickMsg{})
	assert.Equal(t, "b\nc\nd\n", m.frame)
	assert.Contains(t, m.View(), "Lines: 2-4")
}

func TestTick_ShortFileDisplaysOnceThenQuits(t *testing.T) {
	vp := layout.Viewport{Rows: 4, Cols: 80}
	m := newTestModel(t, 1, vp, "only\ntwo\n")

	m, _ = apply(t, m, tickMsg{})
	assert.Equal(t, "only\ntwo\n", m.frame)

	m, cmd := apply(t, m, tickMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestTick_ExactFitFileDisplaysOnceThenQuits(t *testing.T) {
	// Exactly rows-1 lines: the content budget is filled to the last row
	// with nothing left over, and the viewer must still exit after one
	// display instead of scrolling.
	vp := layout.Viewport{Rows: 4, Cols: 80} // 3 content rows
	m := newTestModel(t, 1, vp, "a\nb\nc\n")

	m, _ = apply(t, m, tickMsg{})
	assert.Equal(t, "a\nb\nc\n", m.frame)
	require.True(t, m.lastRender.ReachedEnd)

	m, cmd := apply(t, m, tickMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Equal(t, 1, m.sched.StartLine())
	assert.Equal(t, 3, m.store.Len())
}

func TestTick_QuitsWhenStoreDrains(t *testing.T) {
	vp := layout.Viewport{Rows: 3, Cols: 80} // 2 content rows
	m := newTestModel(t, 1, vp, "a\nb\nc\nd\n")

	var cmd tea.Cmd
	var quit bool
	for i := 0; i < 10; i++ {
		m, cmd = apply(t, m, tickMsg{})
		if m.quitting {
			quit = true
			break
		}
	}
	require.True(t, quit, "viewer never terminated")
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPause_FreezesScrollButClockKeepsTicking(t *testing.T) {
	vp := layout.Viewport{Rows: 4, Cols: 80}
	m := newTestModel(t, 1, vp, "a\nb\nc\nd\ne\n")

	m, _ = apply(t, m, tickMsg{})
	m, _ = apply(t, m, keyPress(tea.KeyCtrlZ))
	require.True(t, m.sched.Paused())

	stale := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = stale

	for i := 0; i < 5; i++ {
		m, _ = apply(t, m, tickMsg{})
	}
	// Scrolling is frozen, the wall clock is not.
	assert.Equal(t, "a\nb\nc\n", m.frame)
	assert.Equal(t, 1, m.sched.StartLine())
	assert.NotEqual(t, stale, m.now)
	assert.Contains(t, m.View(), "PAUSED")

	// Resume lets the pending boundary fire again.
	m, _ = apply(t, m, keyPress(tea.KeyCtrlC))
	require.False(t, m.sched.Paused())
	m, _ = apply(t, m, tickMsg{})
	assert.Equal(t, "b\nc\nd\n", m.frame)
	assert.NotContains(t, m.View(), "PAUSED")
}

func TestKeys_QuitBindings(t *testing.T) {
	vp := layout.Viewport{Rows: 4, Cols: 80}
	for _, msg := range []tea.KeyMsg{keyPress(tea.KeyCtrlBackslash), runePress('q')} {
		m := newTestModel(t, 1, vp, "a\nb\nc\nd\ne\n")
		m, cmd := apply(t, m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
	}
}

func TestKeys_HelpToggleReplacesStatusBar(t *testing.T) {
	vp := layout.Viewport{Rows: 4, Cols: 80}
	m := newTestModel(t, 1, vp, "a\nb\nc\nd\ne\n")

	m, _ = apply(t, m, tickMsg{})
	m, _ = apply(t, m, runePress('?'))
	assert.Contains(t, m.View(), "pause")

	m, _ = apply(t, m, runePress('?'))
	assert.Contains(t, m.View(), "Lines: 1-3")
}

func TestResize_IsIgnored(t *testing.T) {
	vp := layout.Viewport{Rows: 4, Cols: 80}
	m := newTestModel(t, 1, vp, "a\nb\nc\nd\ne\n")

	m, _ = apply(t, m, tickMsg{})
	before := m.View()

	m, cmd := apply(t, m, tea.WindowSizeMsg{Width: 10, Height: 2})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.View())
}
