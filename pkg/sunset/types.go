package sunset

import (
	"fmt"
	"time"
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

var (
	// PointWhite is the launch beach on Point White Drive NE, Bainbridge
	// Island.
	PointWhite = Place{
		47.5980, -122.5307,
		locationOrPanic("America/Los_Angeles"),
	}
)

// SunEvents is a time series of SunEvent.
type SunEvents []SunEvent

// SunEvent is a sunrise or sunset event.
type SunEvent struct {
	Time  time.Time
	Event Event
}

func (s *SunEvent) String() string {
	return fmt.Sprintf("%s %s",
		s.Time.Format(time.RFC822),
		func() string {
			if s.Event == Sunrise {
				return "Sunrise"
			} else {
				return "Sunset"
			}
		}())
}

// Daylight reports whether the most recent event at or before t was a
// sunrise. Times outside the series are dark.
func (events SunEvents) Daylight(t time.Time) bool {
	if len(events) == 0 || t.After(events[len(events)-1].Time) {
		return false
	}
	lit := false
	for _, e := range events {
		if e.Time.After(t) {
			break
		}
		lit = e.Event == Sunrise
	}
	return lit
}

// Event encodes a sunrise or sunset event.
type Event bool

const (
	Sunrise Event = true
	Sunset  Event = false
)

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
