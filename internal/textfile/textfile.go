// Package textfile loads a text file into an ordered, forward-only list of
// lines. The viewer consumes the list strictly from the front; once a line is
// popped it is gone for good.
package textfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Line is one logical line of the input file, terminator included when the
// file had one.
type Line struct {
	Text string
}

// Width reports the display width of the line in terminal cells, excluding
// the trailing terminator.
func (l Line) Width() int {
	return runewidth.StringWidth(strings.TrimSuffix(l.Text, "\n"))
}

// Empty reports whether the line holds only its terminator (or nothing).
func (l Line) Empty() bool {
	return l.Text == "" || l.Text == "\n"
}

// List is an ordered collection of lines supporting pop-from-front only.
type List struct {
	head  int
	lines []Line
}

// Load reads path in full and returns its lines in order. Terminators are
// preserved; a final line without one still counts as a line. Open and read
// failures are returned as errors, a clean EOF is not.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []Line
	r := bufio.NewReader(f)
	for {
		text, err := r.ReadString('\n')
		if text != "" {
			lines = append(lines, Line{Text: text})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	return &List{lines: lines}, nil
}

// PopFront removes and returns the oldest line. The second return is false
// when the list is empty, which is a valid terminal state.
func (s *List) PopFront() (Line, bool) {
	if s.head >= len(s.lines) {
		return Line{}, false
	}
	l := s.lines[s.head]
	s.lines[s.head] = Line{}
	s.head++
	return l, true
}

// Lines returns the remaining lines in order, oldest first. Callers must not
// hold the slice across a PopFront.
func (s *List) Lines() []Line {
	return s.lines[s.head:]
}

// Len reports how many lines remain.
func (s *List) Len() int {
	return len(s.lines) - s.head
}
