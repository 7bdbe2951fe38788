package viewer

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	tickSeconds  = 1
	tickInterval = time.Duration(tickSeconds) * time.Second

	// MinInterval and MaxInterval bound the -s flag and the config file.
	MinInterval = 1
	MaxInterval = 59

	// statusRightMargin keeps the status bar padding shy of the terminal's
	// right edge.
	statusRightMargin = 2
)
