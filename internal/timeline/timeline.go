package timeline

import (
	"time"

	"github.com/five82/daywall/internal/anchor"
)

// Entry activates Image once the wall clock reaches At (POSIX seconds).
type Entry struct {
	At    int64
	Image string
}

// Time returns the activation instant in loc.
func (e Entry) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(e.At, 0).In(loc)
}

// Images holds one ordered image list per day segment.
type Images [anchor.SegmentCount][]string

// Len returns the total number of images across all segments.
func (im Images) Len() int {
	n := 0
	for _, list := range im {
		n += len(list)
	}
	return n
}

// Timeline is the ordered activation schedule for one day.
type Timeline []Entry

// Partition splits [start, end) into count activation points spaced by the
// truncated step (end-start)/count. The start instant itself is never
// returned. Inputs are not validated: end < start gives a decreasing sequence.
func Partition(start, end int64, count int) []int64 {
	if count <= 0 {
		return nil
	}
	step := (end - start) / int64(count)
	points := make([]int64, count)
	for i := range points {
		points[i] = start + step*int64(i+1)
	}
	return points
}

// Build lays out each segment's images evenly across that segment and
// concatenates the segments in cyclic order. The result is only ordered when
// the anchors are strictly increasing; Build does not sort.
func Build(anchors anchor.Set, images Images) Timeline {
	out := make(Timeline, 0, images.Len())
	for _, seg := range anchor.Segments() {
		list := images[seg]
		start, end := anchors.Span(seg)
		for i, at := range Partition(start, end, len(list)) {
			out = append(out, Entry{At: at, Image: list[i]})
		}
	}
	return out
}

// Next returns the first entry scheduled strictly after now. The scan always
// starts from the beginning and stops at the first match.
func (t Timeline) Next(now int64) (Entry, bool) {
	for _, e := range t {
		if e.At > now {
			return e, true
		}
	}
	return Entry{}, false
}

// Index returns the position of the entry Next would select, or -1.
func (t Timeline) Index(now int64) int {
	for i, e := range t {
		if e.At > now {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no backing array with t.
func (t Timeline) Clone() Timeline {
	if len(t) == 0 {
		return nil
	}
	dup := make(Timeline, len(t))
	copy(dup, t)
	return dup
}
