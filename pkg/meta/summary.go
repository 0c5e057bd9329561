package meta

import "time"

// Summary condenses a day of recommendations.
type Summary struct {
	Optimal        int `json:"optimal"`
	Acceptable     int `json:"acceptable"`
	NotRecommended int `json:"not_recommended"`
	// Best is the highest scoring hour, the earliest on ties. Nil when there
	// are no recommendations.
	Best *Recommendation `json:"best,omitempty"`
}

// Summarize counts ratings and finds the best hour.
func Summarize(recs []Recommendation) Summary {
	var s Summary
	for i := range recs {
		switch recs[i].Rating {
		case Optimal:
			s.Optimal++
		case Acceptable:
			s.Acceptable++
		default:
			s.NotRecommended++
		}
		if s.Best == nil || recs[i].Score > s.Best.Score {
			best := recs[i]
			s.Best = &best
		}
	}
	return s
}

// At returns the recommendation for a clock hour, if there is one.
func At(recs []Recommendation, hour int) (Recommendation, bool) {
	for _, r := range recs {
		if r.Hour == hour {
			return r, true
		}
	}
	return Recommendation{}, false
}

// Day is the analysis of one calendar day.
type Day struct {
	Date            time.Time        `json:"date"`
	Recommendations []Recommendation `json:"recommendations"`
	Windows         []GoodTime       `json:"windows"`
	Summary         Summary          `json:"summary"`
}

// Analyze recommends hours for date and derives its windows and summary.
func Analyze(date time.Time, c Conditions, opts Options) Day {
	recs := Recommend(c, opts)
	return Day{
		Date:            date,
		Recommendations: recs,
		Windows:         Windows(recs),
		Summary:         Summarize(recs),
	}
}
