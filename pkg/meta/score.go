package meta

import (
	"math"

	"github.com/spencer-p/kayakdash/pkg/ferry"
)

// falloff is the suitability of v against r. Readings inside the range score
// one. Readings past either bound lose suitability linearly, unless they are
// below the range and lowOK is set.
func falloff(v float64, r Range, lowOK bool) float64 {
	var over float64
	switch {
	case v >= r.Min && v <= r.Max:
		return 1
	case v < r.Min:
		if lowOK {
			return 1
		}
		over = r.Min - v
	default:
		over = v - r.Max
	}
	return 1 - math.Min(1, over/r.Falloff)
}

// TideFactor scores a tide height in feet. Tides too low or too high are
// penalized, and above InaccessibleAbove there is no beach to launch from.
func (o Options) TideFactor(height float64) float64 {
	if height > o.InaccessibleAbove {
		return 0
	}
	return falloff(height, o.Tide, false)
}

// CurrentFactor scores a current speed in miles per hour.
func (o Options) CurrentFactor(speed float64) float64 {
	return falloff(speed, o.Current, true)
}

// WindFactor scores a wind speed in miles per hour.
func (o Options) WindFactor(speed float64) float64 {
	return falloff(speed, o.Wind, true)
}

// FerryFactor scores the next departure. Wakes and traffic near a departure
// make the hour less pleasant but rarely dangerous.
func (o Options) FerryFactor(next ferry.Proximity) float64 {
	if next.Within(o.Ferry.CautionMinutes) {
		return o.Ferry.CautionFactor
	}
	return 1
}

// Score combines the factors into a weighted score in [0, 1].
func (o Options) Score(f Factors) float64 {
	w := o.Weights
	s := f.Tide*w.Tide + f.Current*w.Current + f.Wind*w.Wind + f.Ferry*w.Ferry
	return math.Max(0, math.Min(1, s))
}

// Rate assigns a rating to a score.
func (o Options) Rate(score float64) Rating {
	switch {
	case score >= o.Thresholds.Optimal:
		return Optimal
	case score >= o.Thresholds.Acceptable:
		return Acceptable
	default:
		return NotRecommended
	}
}
