package ferry

import (
	"fmt"
	"time"
)

// Proximity is the next departure relative to a query time.
type Proximity struct {
	// Found is false when the schedule had nothing to offer.
	Found bool
	// Minutes until the departure. It can be negative when the departure was
	// borrowed from the following service day; see Next.
	Minutes   float64
	Direction Direction
}

// Next finds the soonest departure at or after t. Ties go to the departure
// listed first.
//
// When nothing departs at or after t, departures whose day of month is later
// than t's are considered instead and the earliest of those is returned with
// its raw delta to t. That delta is not normalized across the day boundary.
func Next(t time.Time, schedule Schedule) Proximity {
	var best Proximity
	for _, dep := range schedule {
		delta := minutesBetween(t, dep.DepartureTime)
		if delta < 0 {
			continue
		}
		if !best.Found || delta < best.Minutes {
			best = Proximity{Found: true, Minutes: delta, Direction: dep.Direction}
		}
	}
	if best.Found {
		return best
	}

	var earliest *Departure
	for i := range schedule {
		dep := &schedule[i]
		if dep.DepartureTime.Day() <= t.Day() {
			continue
		}
		if earliest == nil || dep.DepartureTime.Before(earliest.DepartureTime) {
			earliest = dep
		}
	}
	if earliest == nil {
		return Proximity{}
	}
	return Proximity{
		Found:     true,
		Minutes:   minutesBetween(t, earliest.DepartureTime),
		Direction: earliest.Direction,
	}
}

func minutesBetween(from, to time.Time) float64 {
	return to.Sub(from).Minutes()
}

// Within reports whether a departure was found less than limit minutes away.
func (p Proximity) Within(limit float64) bool {
	return p.Found && p.Minutes < limit
}

// Status describes p for a person deciding whether to launch. Departures
// closer than caution minutes are flagged, ones closer than notice minutes are
// mentioned, and anything further out reads as quiet water.
func (p Proximity) Status(caution, notice float64) string {
	if !p.Found {
		return "No ferry data"
	}
	n := int(p.Minutes)
	switch {
	case p.Minutes < caution:
		return fmt.Sprintf("Caution: %s ferry in %d minutes", p.Direction, n)
	case p.Minutes < notice:
		return fmt.Sprintf("%s ferry in %d minutes", p.Direction, n)
	default:
		return "No ferries soon"
	}
}
