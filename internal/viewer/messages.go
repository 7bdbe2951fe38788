package viewer

// Message types for the Bubble Tea update loop.

// tickMsg fires every second to advance the scroll countdown and repaint.
// The first one is raised immediately at startup so the first interval is
// measured from program start.
type tickMsg struct{}
