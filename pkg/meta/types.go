package meta

import (
	"fmt"
	"time"

	"github.com/spencer-p/kayakdash/pkg/ferry"
	"github.com/spencer-p/kayakdash/pkg/noaa"
	"github.com/spencer-p/kayakdash/pkg/sunset"
	"github.com/spencer-p/kayakdash/pkg/weather"
)

// Conditions is the set of data we can perform meta analysis on. A nil series
// means its provider was unavailable.
type Conditions struct {
	Tides    noaa.Predictions
	Currents noaa.Currents
	Weather  weather.Forecast
	Ferries  ferry.Schedule

	// SunEvents are optional and only annotate the result.
	SunEvents sunset.SunEvents
}

// complete reports whether every mandatory series is present.
func (c Conditions) complete() bool {
	return c.Tides != nil && c.Currents != nil && c.Weather != nil && len(c.Ferries) > 0
}

// Rating is the verdict for an hour.
type Rating string

const (
	Optimal        Rating = "optimal"
	Acceptable     Rating = "acceptable"
	NotRecommended Rating = "not_recommended"
)

// Title is the rating as shown to people.
func (r Rating) Title() string {
	switch r {
	case Optimal:
		return "Optimal"
	case Acceptable:
		return "Acceptable"
	case NotRecommended:
		return "Not Recommended"
	default:
		return string(r)
	}
}

// Color picks the configured color for r.
func (r Rating) Color(c Colors) string {
	switch r {
	case Optimal:
		return c.Optimal
	case Acceptable:
		return c.Acceptable
	default:
		return c.NotRecommended
	}
}

// Rank orders ratings from worst (0) to best (2).
func (r Rating) Rank() int {
	switch r {
	case Optimal:
		return 2
	case Acceptable:
		return 1
	default:
		return 0
	}
}

type TideStatus string

const (
	Rising  TideStatus = "rising"
	Falling TideStatus = "falling"
	Steady  TideStatus = "steady"
)

type CurrentDirection string

const (
	Flooding       CurrentDirection = "flooding"
	Ebbing         CurrentDirection = "ebbing"
	UnknownCurrent CurrentDirection = "unknown"
)

// Factors are the normalized suitability of each signal, 1 being ideal.
type Factors struct {
	Tide    float64 `json:"tide"`
	Current float64 `json:"current"`
	Wind    float64 `json:"wind"`
	Ferry   float64 `json:"ferry"`
}

// Recommendation is the verdict for launching during one clock hour.
type Recommendation struct {
	Hour int `json:"hour"`
	// Time is the start of the hour.
	Time      time.Time `json:"time"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`

	TideHeight       float64          `json:"tide_height"`
	TideStatus       TideStatus       `json:"tide_status"`
	CurrentSpeed     float64          `json:"current_speed"`
	CurrentDirection CurrentDirection `json:"current_direction"`
	WindSpeed        float64          `json:"wind_speed"`
	WindDirection    string           `json:"wind_direction"`
	Condition        string           `json:"condition,omitempty"`
	FerryStatus      string           `json:"ferry_status"`
	// Daylight is set when the middle of the hour falls between sunrise and
	// sunset. It does not affect the score.
	Daylight bool `json:"daylight"`

	Factors Factors `json:"factors"`
	Score   float64 `json:"score"`
	Rating  Rating  `json:"rating"`
}

func (r Recommendation) String() string {
	return fmt.Sprintf("%s-%s %s (%.2f): tide %.1f ft %s, current %.1f mph %s, wind %.0f mph %s, %s",
		r.StartTime, r.EndTime,
		r.Rating.Title(), r.Score,
		r.TideHeight, r.TideStatus,
		r.CurrentSpeed, r.CurrentDirection,
		r.WindSpeed, r.WindDirection,
		r.FerryStatus)
}
