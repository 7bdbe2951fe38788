// Package layout decides how many whole logical lines fit a terminal
// viewport, accounting for line wrapping. Lines are never split or
// truncated; one that would overflow the remaining rows is deferred to the
// next render cycle.
package layout

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rneiva/autoscroll/internal/textfile"
)

// Viewport is the terminal geometry, queried once at startup and treated as
// constant for the run.
type Viewport struct {
	Rows int
	Cols int
}

// ContentRows is the row budget for file content; the bottom row belongs to
// the status bar.
func (vp Viewport) ContentRows() int {
	return vp.Rows - 1
}

// Result is the per-cycle render context; counters reset with every render.
type Result struct {
	LinesShown int
	RowsUsed   int
	ReachedEnd bool
}

// RowsNeeded computes the physical rows a line occupies when wrapped at cols.
// An empty line still costs one row.
func RowsNeeded(l textfile.Line, cols int) int {
	if l.Empty() {
		return 1
	}
	return (l.Width() + cols - 1) / cols
}

// Render walks lines from the front, greedily emitting to w every line that
// still fits the content budget, and stops at the first one that would not.
// Emitted lines are hard-wrapped at the viewport width so each occupies
// exactly the rows it was budgeted. ReachedEnd reports that no lines remain
// beyond the last one shown; a deferred line means the end was not reached
// even if it is the last line.
func Render(lines []textfile.Line, vp Viewport, w io.Writer) Result {
	var res Result
	for _, l := range lines {
		needed := RowsNeeded(l, vp.Cols)
		if res.RowsUsed+needed > vp.ContentRows() {
			return res
		}
		if _, err := io.WriteString(w, wrap(l, vp.Cols)); err != nil {
			// Writes target an in-memory frame; failure means the
			// builder is broken, not the terminal.
			return res
		}
		res.LinesShown++
		res.RowsUsed += needed
	}
	res.ReachedEnd = true
	return res
}

// wrap breaks a logical line into terminator-ended physical rows of at most
// cols display cells each.
func wrap(l textfile.Line, cols int) string {
	text := strings.TrimSuffix(l.Text, "\n")
	if runewidth.StringWidth(text) <= cols {
		return text + "\n"
	}

	var b strings.Builder
	width := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if width+rw > cols {
			b.WriteByte('\n')
			width = 0
		}
		b.WriteRune(r)
		width += rw
	}
	b.WriteByte('\n')
	return b.String()
}
