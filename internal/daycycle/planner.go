package daycycle

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/daywall/internal/anchor"
	"github.com/five82/daywall/internal/astro"
	"github.com/five82/daywall/internal/timeline"
)

const secondsPerDay = 24 * 60 * 60

// Day is the schedule for one calendar day. It is replaced as a unit.
type Day struct {
	Date     int64 // UTC midnight of the calendar date, as passed to the provider
	Anchors  anchor.Set
	Timeline timeline.Timeline
}

// Planner turns a wall-clock time into that day's anchors and timeline.
type Planner struct {
	Provider  astro.Provider
	Images    timeline.Images
	Longitude float64
	Latitude  float64
	Location  *time.Location
	Logger    zerolog.Logger
}

// Plan builds the Day covering now. When the local date's anchors already
// ended before now (solar midnight can precede local midnight), the next
// calendar date is planned instead.
func (p Planner) Plan(now time.Time) (Day, error) {
	loc := p.location()
	date := astro.Day(now.In(loc))

	day, err := p.PlanDate(date)
	if err != nil {
		return Day{}, err
	}
	if day.Anchors.Expired(now.Unix()) {
		p.Logger.Debug().
			Time("next_midnight", day.Anchors.Time(anchor.NextDayMidnight, loc)).
			Msg("day already over, planning the next date")
		return p.PlanDate(date + secondsPerDay)
	}
	return day, nil
}

// PlanDate builds the Day for an explicit date (UTC midnight POSIX seconds).
func (p Planner) PlanDate(date int64) (Day, error) {
	if p.Provider == nil {
		return Day{}, fmt.Errorf("no transit provider configured")
	}
	anchors, err := astro.Anchors(p.Provider, date, p.Longitude, p.Latitude, p.location())
	if err != nil {
		return Day{}, err
	}
	if err := anchors.Validate(); err != nil {
		p.Logger.Warn().Err(err).Msg("anchors out of cyclic order; timeline will not be monotonic")
	}
	return Day{
		Date:     date,
		Anchors:  anchors,
		Timeline: timeline.Build(anchors, p.Images),
	}, nil
}

func (p Planner) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}
