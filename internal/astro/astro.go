package astro

import (
	"errors"
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"

	"github.com/five82/daywall/internal/anchor"
)

// ErrUnavailable is returned when a transit does not happen on the requested
// day at the requested location, e.g. polar day or night.
var ErrUnavailable = errors.New("transit unavailable")

// UnavailableError names the transit that could not be computed.
type UnavailableError struct {
	Transit string
	Day     int64
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("can't get %s for %s", e.Transit, time.Unix(e.Day, 0).UTC().Format(time.DateOnly))
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// Provider computes the transit instants for a day. day is the POSIX
// timestamp of UTC midnight of the calendar date; results are POSIX seconds.
type Provider interface {
	Sunrise(day int64, lon, lat float64) (int64, error)
	Sunset(day int64, lon, lat float64) (int64, error)
	Moonrise(day int64, lon, lat float64) (int64, error)
	Moonset(day int64, lon, lat float64) (int64, error)
	Noon(day int64, lon float64) int64
	Midnight(day int64, lon float64) int64
}

// Calculator is the default Provider.
type Calculator struct{}

var _ Provider = Calculator{}

func (Calculator) Sunrise(day int64, lon, lat float64) (int64, error) {
	rise, _ := sunTimes(day, lon, lat)
	if rise.IsZero() {
		return 0, &UnavailableError{Transit: "sunrise", Day: day}
	}
	return rise.Unix(), nil
}

func (Calculator) Sunset(day int64, lon, lat float64) (int64, error) {
	_, set := sunTimes(day, lon, lat)
	if set.IsZero() {
		return 0, &UnavailableError{Transit: "sunset", Day: day}
	}
	return set.Unix(), nil
}

// Noon returns the solar transit for the day's longitude.
func (Calculator) Noon(day int64, lon float64) int64 {
	y, m, d := time.Unix(day, 0).UTC().Date()
	var (
		mean        = sunrise.MeanSolarNoon(lon, y, m, d)
		anomaly     = sunrise.SolarMeanAnomaly(mean)
		center      = sunrise.EquationOfCenter(anomaly)
		eclipticLon = sunrise.EclipticLongitude(anomaly, center, mean)
		transit     = sunrise.SolarTransit(mean, anomaly, eclipticLon)
	)
	return sunrise.JulianDayToTime(transit).Unix()
}

// Midnight returns the solar midnight preceding the day's solar noon.
func (c Calculator) Midnight(day int64, lon float64) int64 {
	return c.Noon(day, lon) - int64(12*time.Hour/time.Second)
}

func (Calculator) Moonrise(day int64, lon, lat float64) (int64, error) {
	mt := moonTimes(day, lon, lat)
	return moonEvent("moonrise", day, mt, mt.Rise)
}

func (Calculator) Moonset(day int64, lon, lat float64) (int64, error) {
	mt := moonTimes(day, lon, lat)
	return moonEvent("moonset", day, mt, mt.Set)
}

// moonEvent reports at, or unavailable when the moon stays above or below the
// horizon all day or the crossing falls outside the day.
func moonEvent(transit string, day int64, mt suncalc.MoonTimes, at time.Time) (int64, error) {
	if mt.AlwaysUp || mt.AlwaysDown || at.IsZero() {
		return 0, &UnavailableError{Transit: transit, Day: day}
	}
	return at.Unix(), nil
}

// moonTimes looks for horizon crossings in the 24 hours after day.
func moonTimes(day int64, lon, lat float64) suncalc.MoonTimes {
	return suncalc.GetMoonTimes(time.Unix(day, 0).UTC(), lat, lon, true)
}

func sunTimes(day int64, lon, lat float64) (time.Time, time.Time) {
	y, m, d := time.Unix(day, 0).UTC().Date()
	return sunrise.SunriseSunset(lat, lon, y, m, d)
}

// Day maps a wall-clock time to the UTC midnight of its local calendar date,
// the day argument every Provider method expects.
func Day(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

// Anchors computes the anchor set for day. The first transit that cannot be
// computed aborts the whole set. NextDayMidnight is one calendar day after
// Midnight in loc.
func Anchors(p Provider, day int64, lon, lat float64, loc *time.Location) (anchor.Set, error) {
	var t anchor.Transits
	var err error

	if t.Sunrise, err = p.Sunrise(day, lon, lat); err != nil {
		return anchor.Set{}, err
	}
	if t.Sunset, err = p.Sunset(day, lon, lat); err != nil {
		return anchor.Set{}, err
	}
	t.Noon = p.Noon(day, lon)
	t.Midnight = p.Midnight(day, lon)
	if t.Moonrise, err = p.Moonrise(day, lon, lat); err != nil {
		return anchor.Set{}, err
	}
	if t.Moonset, err = p.Moonset(day, lon, lat); err != nil {
		return anchor.Set{}, err
	}
	return anchor.NewSet(t, loc), nil
}
