package meta

import (
	"errors"
	"fmt"
	"math"
)

// Range is a band of ideal readings. Readings outside the band lose suitability
// linearly, reaching zero Falloff units past the nearer bound.
type Range struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Falloff float64 `yaml:"falloff" json:"falloff"`
}

// FerryOptions control how nearby departures are reported and scored.
type FerryOptions struct {
	// CautionMinutes is how close a departure must be to count against the
	// hour and to be reported as a caution.
	CautionMinutes float64 `yaml:"caution_minutes" json:"caution_minutes"`
	// NoticeMinutes is how close a departure must be to be mentioned at all.
	NoticeMinutes float64 `yaml:"notice_minutes" json:"notice_minutes"`
	// CautionFactor is the ferry factor for an hour with a caution.
	CautionFactor float64 `yaml:"caution_factor" json:"caution_factor"`
}

// Weights of each factor in the composite score. They must sum to one.
type Weights struct {
	Tide    float64 `yaml:"tide" json:"tide"`
	Current float64 `yaml:"current" json:"current"`
	Wind    float64 `yaml:"wind" json:"wind"`
	Ferry   float64 `yaml:"ferry" json:"ferry"`
}

func (w Weights) sum() float64 {
	return w.Tide + w.Current + w.Wind + w.Ferry
}

// Thresholds are the lowest scores that earn each rating.
type Thresholds struct {
	Optimal    float64 `yaml:"optimal" json:"optimal"`
	Acceptable float64 `yaml:"acceptable" json:"acceptable"`
}

// Colors used to draw each rating.
type Colors struct {
	Optimal        string `yaml:"optimal" json:"optimal"`
	Acceptable     string `yaml:"acceptable" json:"acceptable"`
	NotRecommended string `yaml:"not_recommended" json:"not_recommended"`
}

// Options parameterize the scoring of an hour.
type Options struct {
	// Tide heights in feet.
	Tide Range `yaml:"tide" json:"tide"`
	// InaccessibleAbove is the tide height in feet above which the beach is
	// under water and the tide factor is zero.
	InaccessibleAbove float64 `yaml:"inaccessible_above" json:"inaccessible_above"`
	// Current speeds in miles per hour. Slow currents are never penalized.
	Current Range `yaml:"current" json:"current"`
	// Wind speeds in miles per hour. Light winds are never penalized.
	Wind Range `yaml:"wind" json:"wind"`

	Ferry      FerryOptions `yaml:"ferry" json:"ferry"`
	Weights    Weights      `yaml:"weights" json:"weights"`
	Thresholds Thresholds   `yaml:"thresholds" json:"thresholds"`
	Colors     Colors       `yaml:"colors" json:"colors"`
}

// DefaultOptions are tuned for launching at Point White.
func DefaultOptions() Options {
	return Options{
		Tide:              Range{Min: 4.0, Max: 8.0, Falloff: 4.0},
		InaccessibleAbove: 10.0,
		// 1.5 knots.
		Current: Range{Min: 0.0, Max: 1.73, Falloff: 2.0},
		Wind:    Range{Min: 0.0, Max: 10.0, Falloff: 10.0},
		Ferry: FerryOptions{
			CautionMinutes: 15,
			NoticeMinutes:  30,
			CautionFactor:  0.5,
		},
		Weights: Weights{
			Tide:    0.35,
			Current: 0.30,
			Wind:    0.25,
			Ferry:   0.10,
		},
		Thresholds: Thresholds{
			Optimal:    0.80,
			Acceptable: 0.60,
		},
		Colors: Colors{
			Optimal:        "#2ecc71",
			Acceptable:     "#f1c40f",
			NotRecommended: "#e74c3c",
		},
	}
}

const weightTolerance = 1e-6

// Validate reports every problem with o.
func (o Options) Validate() error {
	var errs []error
	for _, r := range []struct {
		name string
		r    Range
	}{{"tide", o.Tide}, {"current", o.Current}, {"wind", o.Wind}} {
		if r.r.Min > r.r.Max {
			errs = append(errs, fmt.Errorf("%s range min %g above max %g", r.name, r.r.Min, r.r.Max))
		}
		if r.r.Falloff <= 0 {
			errs = append(errs, fmt.Errorf("%s falloff %g must be positive", r.name, r.r.Falloff))
		}
	}
	if o.InaccessibleAbove < o.Tide.Max {
		errs = append(errs, fmt.Errorf("inaccessible tide %g below ideal max %g", o.InaccessibleAbove, o.Tide.Max))
	}
	if f := o.Ferry.CautionFactor; f < 0 || f > 1 {
		errs = append(errs, fmt.Errorf("ferry caution factor %g outside [0, 1]", f))
	}
	if o.Ferry.CautionMinutes > o.Ferry.NoticeMinutes {
		errs = append(errs, fmt.Errorf("ferry caution %g minutes beyond notice %g minutes", o.Ferry.CautionMinutes, o.Ferry.NoticeMinutes))
	}
	w := o.Weights
	if w.Tide < 0 || w.Current < 0 || w.Wind < 0 || w.Ferry < 0 {
		errs = append(errs, fmt.Errorf("weights must not be negative: %+v", w))
	}
	if math.Abs(w.sum()-1) > weightTolerance {
		errs = append(errs, fmt.Errorf("weights sum to %g, not 1", w.sum()))
	}
	if o.Thresholds.Optimal <= o.Thresholds.Acceptable {
		errs = append(errs, fmt.Errorf("optimal threshold %g not above acceptable %g", o.Thresholds.Optimal, o.Thresholds.Acceptable))
	}
	return errors.Join(errs...)
}
