package meta

import (
	"time"

	"github.com/spencer-p/kayakdash/pkg/noaa"
	"github.com/spencer-p/kayakdash/pkg/weather"
)

// tideAt returns the first tide sample in the given clock hour.
func tideAt(tides noaa.Predictions, hour int) (noaa.Prediction, bool) {
	for _, p := range tides {
		if p.T().Hour() == hour {
			return p, true
		}
	}
	return noaa.Prediction{}, false
}

// currentAt returns the first current sample in the given clock hour.
func currentAt(currents noaa.Currents, hour int) (noaa.Current, bool) {
	for _, c := range currents {
		if c.T().Hour() == hour {
			return c, true
		}
	}
	return noaa.Current{}, false
}

// weatherAt returns the first forecast sample in the clock hour of t. Without
// one it falls back to the sample nearest t, the earliest listed winning ties.
// It only fails on an empty forecast.
func weatherAt(forecast weather.Forecast, t time.Time) (weather.Sample, bool) {
	for _, s := range forecast {
		if s.Time.Hour() == t.Hour() {
			return s, true
		}
	}

	best := -1
	var bestDelta time.Duration
	for i, s := range forecast {
		delta := absDuration(s.Time.Sub(t))
		if best < 0 || delta < bestDelta {
			best, bestDelta = i, delta
		}
	}
	if best < 0 {
		return weather.Sample{}, false
	}
	return forecast[best], true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// tideStatus compares height against the previous clock hour, wrapping from
// midnight back to 23:00.
func tideStatus(tides noaa.Predictions, hour int, height noaa.Height) TideStatus {
	prev, ok := tideAt(tides, (hour+23)%24)
	switch {
	case !ok:
		return Steady
	case height > prev.Height:
		return Rising
	case height < prev.Height:
		return Falling
	default:
		return Steady
	}
}

// currentDirection splits the compass in half: a set between 0 and 180
// degrees inclusive is called flooding and anything else ebbing. This is a
// rule of thumb for the Rich Passage station rather than a true flood/ebb
// determination.
func currentDirection(c noaa.Current) CurrentDirection {
	if c.Direction == nil {
		return UnknownCurrent
	}
	if d := *c.Direction; d >= 0 && d <= 180 {
		return Flooding
	}
	return Ebbing
}
