// Package anchor defines the named instants of a day and the segments between
// them.
//
// Anchors are a closed set declared in cyclic day order:
//
//	Midnight < Moonset < Sunrise < Noon < Sunset < Moonrise < NextDayMidnight
//
// Segment i spans anchor i to anchor i+1, so arrays indexed by Anchor or
// Segment cover every case without map lookups. A Set is an immutable value;
// the scheduler replaces it wholesale when the day rolls over.
package anchor
