package anchor

import "fmt"

// Segment is one of the six intervals between consecutive anchors.
type Segment int

const (
	MidnightToMoonset Segment = iota
	MoonsetToSunrise
	SunriseToNoon
	NoonToSunset
	SunsetToMoonrise
	MoonriseToNextDayMidnight
)

// SegmentCount is the number of day segments.
const SegmentCount = int(MoonriseToNextDayMidnight) + 1

// Segments returns every segment in the order the timeline is assembled.
func Segments() []Segment {
	out := make([]Segment, SegmentCount)
	for i := range out {
		out[i] = Segment(i)
	}
	return out
}

// Valid reports whether s is one of the declared segments.
func (s Segment) Valid() bool {
	return s >= MidnightToMoonset && s <= MoonriseToNextDayMidnight
}

// Bounds returns the anchors that open and close the segment.
func (s Segment) Bounds() (start, end Anchor) {
	return Anchor(s), Anchor(s) + 1
}

// Key is the configuration key of the segment's image list, which is the
// name of its opening anchor.
func (s Segment) Key() string {
	start, _ := s.Bounds()
	return start.String()
}

func (s Segment) String() string {
	if !s.Valid() {
		return fmt.Sprintf("segment(%d)", int(s))
	}
	start, end := s.Bounds()
	return start.String() + "->" + end.String()
}

// SegmentForKey returns the segment whose image list uses key.
func SegmentForKey(key string) (Segment, bool) {
	for _, seg := range Segments() {
		if seg.Key() == key {
			return seg, true
		}
	}
	return 0, false
}
