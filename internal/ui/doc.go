// Package ui provides the terminal interface for daywall.
//
// # Architecture Overview
//
// The watch view is a Bubble Tea program. It never talks to the scheduler
// directly: the scheduler publishes into a state.Store and the model pulls a
// snapshot on every tick, the same producer/consumer split the store was
// built for. The daemon log is tailed from disk with logtail.
//
// # Package Structure
//
//   - app.go: Model, Update loop, commands and Run
//   - header.go: status bar and day progress bar
//   - timeline.go: timeline table (bubbles/table) with the active entry marked
//   - logs.go: log pane (bubbles/viewport) coloured by severity
//   - help.go: help overlay and footer built from the key map
//   - theme.go: Nightfox, Kanagawa and Slate palettes with segment colours
//   - print.go: static lipgloss tables for the timeline and anchors commands
//
// # Event Flow
//
//  1. Run starts the program; Init schedules the first tick and snapshot
//  2. tickMsg fetches a snapshot and, when the pane is open, the log tail
//  3. snapshotMsg rebuilds the table; in follow mode the cursor tracks the
//     active entry
//  4. Quit calls Options.OnQuit so the caller can stop the scheduler
//
// # Key Bindings
//
//   - j/k, g/G: Move through the timeline (turns follow off)
//   - f or Space: Follow the active entry again
//   - l: Toggle the log pane
//   - T: Cycle theme (saved to prefs)
//   - h or ?: Help
//   - q or Ctrl+C: Quit
package ui
