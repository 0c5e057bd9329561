package noaa

import (
	"math"
	"time"

	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

const (
	ebbSet   = 90.0
	floodSet = 270.0
)

// SyntheticCurrents stands in for a current station with no predictions.
// Speeds peak twice a day and the set swaps between 90 and 270 degrees.
func SyntheticCurrents(date time.Time) Currents {
	result := make(Currents, 24)
	for hour := range result {
		phase := math.Sin(float64(hour) / 24.0 * 2 * math.Pi)
		dir := floodSet
		if phase > 0 {
			dir = ebbSet
		}
		result[hour] = Current{
			Time:      Time(timetricks.SetClock(date, time.Duration(hour), 0)),
			Speed:     math.Abs(1.5*phase) + 0.2,
			Direction: &dir,
		}
	}
	return result
}
