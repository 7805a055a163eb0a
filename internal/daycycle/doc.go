// Package daycycle drives the wallpaper through the day.
//
// A Planner asks an astro.Provider for the day's transits and expands the
// pack images into a timeline. The Scheduler then polls the clock: each tick
// it applies the first timeline entry later than now, so the wallpaper shown
// during a stretch is the one due at the end of it. Once the clock passes
// the next-day midnight anchor the whole day is rebuilt on its own tick,
// with nothing applied on that tick.
//
// Phases run Initializing, Running, Recomputing (during rollover) and
// Terminating. Stop only sets a flag and wakes the sleep; the loop notices
// at the top of its next iteration.
//
// A transit that cannot be computed, or an apply failure, ends Run with an
// error unless ContinueOnApplyError is set for the latter.
package daycycle
