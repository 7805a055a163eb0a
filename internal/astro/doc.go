// Package astro computes the sun and moon transits that anchor a day.
//
// Sunrise, sunset and solar noon come from github.com/nathan-osman/go-sunrise.
// Solar midnight is taken as twelve hours before solar noon. Moonrise and
// moonset come from github.com/sixdouglas/suncalc, which scans the 24 hours
// after the requested day for horizon crossings.
//
// Sunrise, sunset, moonrise and moonset can be unavailable (polar day or
// night, or a day on which the moon does not rise or set). That is reported
// as an *UnavailableError naming the transit, never as a default value.
//
// The moon misses a rise or a set on roughly two days each month at mid
// latitudes. On those days Anchors fails and the scheduler stops with
// "can't get moonrise" or "can't get moonset".
package astro
