package meta

import (
	"time"

	"github.com/spencer-p/kayakdash/pkg/ferry"
	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

const hoursPerDay = 24

// Recommend rates every clock hour of the day the tide series covers. An hour
// is left out when it has no tide or current sample. If any mandatory series
// is missing, or the ferry schedule is empty, there are no recommendations at
// all.
func Recommend(c Conditions, opts Options) []Recommendation {
	result := []Recommendation{}
	if !c.complete() || len(c.Tides) == 0 {
		return result
	}

	day := c.Tides[0].T()
	for hour := 0; hour < hoursPerDay; hour++ {
		if rec, ok := recommendHour(c, opts, day, hour); ok {
			result = append(result, rec)
		}
	}
	return result
}

func recommendHour(c Conditions, opts Options, day time.Time, hour int) (Recommendation, bool) {
	start := timetricks.SetClock(day, time.Duration(hour), 0)

	tide, ok := tideAt(c.Tides, hour)
	if !ok {
		return Recommendation{}, false
	}
	current, ok := currentAt(c.Currents, hour)
	if !ok {
		return Recommendation{}, false
	}
	wx, ok := weatherAt(c.Weather, start)
	if !ok {
		return Recommendation{}, false
	}
	next := ferry.Next(start, c.Ferries)

	factors := Factors{
		Tide:    opts.TideFactor(float64(tide.Height)),
		Current: opts.CurrentFactor(current.Speed),
		Wind:    opts.WindFactor(wx.WindSpeed),
		Ferry:   opts.FerryFactor(next),
	}
	score := opts.Score(factors)

	return Recommendation{
		Hour:             hour,
		Time:             start,
		StartTime:        timetricks.HourClock(hour),
		EndTime:          timetricks.HourClock(hour + 1),
		TideHeight:       float64(tide.Height),
		TideStatus:       tideStatus(c.Tides, hour, tide.Height),
		CurrentSpeed:     current.Speed,
		CurrentDirection: currentDirection(current),
		WindSpeed:        wx.WindSpeed,
		WindDirection:    wx.WindDirection,
		Condition:        wx.Condition,
		FerryStatus:      next.Status(opts.Ferry.CautionMinutes, opts.Ferry.NoticeMinutes),
		Daylight:         c.SunEvents.Daylight(start.Add(30 * time.Minute)),
		Factors:          factors,
		Score:            score,
		Rating:           opts.Rate(score),
	}, true
}
