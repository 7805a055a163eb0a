package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the header drops the
	// location and the table drops the segment column.
	LayoutCompactWidth = 80
)

// Display limits.
const (
	// LogTailLines is the number of daemon log lines kept for the log pane.
	LogTailLines = 200

	// LogPaneHeight is the log pane height including its border.
	LogPaneHeight = 10
)

// Timing constants.
const (
	// DefaultUIInterval is the default snapshot refresh interval.
	DefaultUIInterval = time.Second
)
