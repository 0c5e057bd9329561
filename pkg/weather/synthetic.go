package weather

import (
	"hash/fnv"
	"math"
	"strconv"
	"time"

	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

// Synthetic generates a plausible forecast for date. The same date always
// yields the same forecast. Summer afternoons are warm with a light breeze;
// the wind veers through the day.
func Synthetic(date time.Time) Forecast {
	dayKey := date.Format("2006-01-02")
	summer := date.Month() >= time.May && date.Month() <= time.September

	baseTemp, tempSwing := 45.0, 10.0
	baseWind, windSwing := 12.0, 10.0
	if summer {
		baseTemp, tempSwing = 70, 15
		baseWind, windSwing = 8, 8
	}

	dayJitter := seed(dayKey)
	result := make(Forecast, 24)
	for hour := range result {
		hourJitter := seed(dayKey+strconv.Itoa(hour)) % 100

		// 0 at 2pm, 1 at 2am.
		coolness := math.Abs(float64(hour)-14) / 14.0
		temp := baseTemp - coolness*tempSwing + float64(dayJitter%5)
		wind := baseWind + (1-coolness)*windSwing*(0.5+float64(hourJitter)/100.0)

		// Base direction by day, veering by hour.
		bearing := math.Mod(float64(dayJitter%4)*90+float64(hour*15), 360)

		var condition string
		switch {
		case wind > 15:
			condition = "Windy"
		case coolness < 0.3 && hourJitter < 70:
			condition = "Clear"
		case hourJitter < 70:
			condition = "Cloudy"
		default:
			condition = "Rainy"
		}

		result[hour] = Sample{
			Time:          timetricks.SetClock(date, time.Duration(hour), 0),
			Temperature:   temp,
			WindSpeed:     wind,
			WindDirection: Cardinal(bearing),
			Condition:     condition,
		}
	}
	return result
}

func seed(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}
