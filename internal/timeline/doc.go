// Package timeline turns a day's anchors and per-segment image lists into an
// ordered activation schedule.
//
// Partition spreads N images over a segment: with step = (end-start)/N the
// activation points are start+step, start+2*step, ..., start+N*step. Integer
// division truncates, so the last point may fall slightly before end.
//
// Build runs Partition for every segment in cyclic order and concatenates the
// results. Next implements the selection rule used by the scheduler: the
// first entry whose timestamp is strictly greater than now wins.
//
// Example, for an 8 hour test day:
//
//	Partition(0, 3600, 2)  // [1800 3600]
//	tl.Next(1000)          // {1800 image[0]}
package timeline
