// Package weather fetches hourly wind forecasts for the launch site, with a
// deterministic synthetic forecast for when no live forecast is available.
package weather

import (
	"fmt"
	"time"
)

// Sample is the forecast for a single point in time.
type Sample struct {
	Time time.Time `json:"time"`
	// Temperature in degrees Fahrenheit.
	Temperature float64 `json:"temperature"`
	// WindSpeed in miles per hour.
	WindSpeed float64 `json:"wind_speed"`
	// WindDirection is a 16 point compass direction, e.g. "NNW".
	WindDirection string `json:"wind_direction"`
	// Condition is a short label such as "Clear" or "Rainy".
	Condition string `json:"condition"`
}

// Forecast is a time series of Sample.
type Forecast []Sample

func (s Sample) String() string {
	return fmt.Sprintf("{t: %s, wind: %.1f %s, %s}",
		s.Time.Format(time.RFC822),
		s.WindSpeed,
		s.WindDirection,
		s.Condition)
}
