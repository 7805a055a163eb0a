package anchor

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Anchor names one of the fixed instants that bound the day segments.
// Values are declared in cyclic day order.
type Anchor int

const (
	Midnight Anchor = iota
	Moonset
	Sunrise
	Noon
	Sunset
	Moonrise
	NextDayMidnight
)

// Count is the number of anchors in a Set, NextDayMidnight included.
const Count = int(NextDayMidnight) + 1

var anchorNames = [Count]string{
	Midnight:        "midnight",
	Moonset:         "moonset",
	Sunrise:         "sunrise",
	Noon:            "noon",
	Sunset:          "sunset",
	Moonrise:        "moonrise",
	NextDayMidnight: "next_midnight",
}

func (a Anchor) String() string {
	if !a.Valid() {
		return fmt.Sprintf("anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// Valid reports whether a is one of the declared anchors.
func (a Anchor) Valid() bool {
	return a >= Midnight && a <= NextDayMidnight
}

// All returns every anchor in cyclic order.
func All() []Anchor {
	out := make([]Anchor, Count)
	for i := range out {
		out[i] = Anchor(i)
	}
	return out
}

// Transits holds the six instants computed for one day. NextDayMidnight is
// derived by NewSet.
type Transits struct {
	Midnight int64
	Sunrise  int64
	Noon     int64
	Sunset   int64
	Moonrise int64
	Moonset  int64
}

// Set maps every anchor to a POSIX timestamp in seconds. The zero value is an
// empty set; use NewSet or FromTimes to build one.
type Set struct {
	times [Count]int64
}

// NewSet builds a Set from a day's transits. NextDayMidnight is one calendar
// day after Midnight in loc, so it follows DST changes.
func NewSet(t Transits, loc *time.Location) Set {
	if loc == nil {
		loc = time.Local
	}
	next := time.Unix(t.Midnight, 0).In(loc).AddDate(0, 0, 1).Unix()
	return Set{times: [Count]int64{
		Midnight:        t.Midnight,
		Moonset:         t.Moonset,
		Sunrise:         t.Sunrise,
		Noon:            t.Noon,
		Sunset:          t.Sunset,
		Moonrise:        t.Moonrise,
		NextDayMidnight: next,
	}}
}

// FromTimes builds a Set from explicit timestamps indexed by Anchor.
func FromTimes(times [Count]int64) Set {
	return Set{times: times}
}

// At returns the timestamp for a.
func (s Set) At(a Anchor) int64 {
	if !a.Valid() {
		return 0
	}
	return s.times[a]
}

// Time returns the anchor as a time.Time in loc.
func (s Set) Time(a Anchor, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(s.At(a), 0).In(loc)
}

// Span returns the start and end timestamps of seg.
func (s Set) Span(seg Segment) (start, end int64) {
	from, to := seg.Bounds()
	return s.At(from), s.At(to)
}

// Expired reports whether now lies past the end of the day.
func (s Set) Expired(now int64) bool {
	return now > s.times[NextDayMidnight]
}

// OrderError reports the first pair of anchors that is not strictly increasing.
type OrderError struct {
	Before Anchor
	After  Anchor
	At     [2]int64
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("anchor %s (%d) is not before %s (%d)", e.Before, e.At[0], e.After, e.At[1])
}

// Validate checks that anchors are strictly increasing in cyclic order. The
// timeline builder relies on this ordering but does not enforce it.
func (s Set) Validate() error {
	for i := 1; i < Count; i++ {
		prev, cur := s.times[i-1], s.times[i]
		if cur <= prev {
			return &OrderError{Before: Anchor(i - 1), After: Anchor(i), At: [2]int64{prev, cur}}
		}
	}
	return nil
}

// MarshalZerologObject lets a Set be logged with zerolog's Object field.
func (s Set) MarshalZerologObject(e *zerolog.Event) {
	for i, ts := range s.times {
		e.Time(anchorNames[i], time.Unix(ts, 0))
	}
}
