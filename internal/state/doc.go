// Package state shares scheduler state with the watch TUI.
//
// # Overview
//
// The scheduler goroutine is the only writer; the TUI reads on its own tick.
//
//	Producer (Scheduler):          Consumer (UI):
//	┌──────────────────┐          ┌──────────────────┐
//	│ SetPhase()       │          │                  │
//	│ SetDay()         │ (mutex)  │ store.Snapshot() │
//	│ SetActive()      │─────────→│       ↓          │
//	│ SetError()       │          │   render view    │
//	└──────────────────┘          └──────────────────┘
//
// # Core Types
//
// Store guards a Snapshot with a sync.RWMutex. The zero value is ready to use.
//
// Snapshot holds the pack and location, the scheduler phase, the current
// day's anchors and timeline, the last applied entry and the last error.
// Snapshot() returns a copy whose timeline shares no memory with the store.
//
// # Update Semantics
//
//   - SetDay replaces anchors and timeline together and clears the active
//     entry; every call after the first counts as a recompute
//   - SetActive clears LastError, since a successful apply supersedes it
//   - SetError keeps all other fields so the TUI still shows the last plan
//
// # Helpers
//
// ActiveIndex locates the active entry in the timeline. DayProgress reports
// how far a time lies between Midnight and NextDayMidnight.
package state
