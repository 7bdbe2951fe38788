package viewer

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/rneiva/autoscroll/internal/layout"
	"github.com/rneiva/autoscroll/internal/textfile"
)

// Run loads path into memory and drives the viewer until end of file or an
// explicit quit. The alt screen restores the terminal on the way out, so a
// clean exit leaves no frame behind.
func Run(path string, intervalSeconds int, vp layout.Viewport) error {
	store, err := textfile.Load(path)
	if err != nil {
		return err
	}

	model := NewModel(store, vp, intervalSeconds)

	// Silence external logs during the program to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
