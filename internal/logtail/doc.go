// Package logtail reads the tail of the daemon log for the watch TUI.
//
// The log file is written by internal/logging as uncoloured zerolog console
// lines. Read keeps a ring buffer of the last N lines so large files are
// scanned once without holding everything in memory, and LevelOf recovers
// the severity token so the TUI can colour each line.
package logtail
