package noaa

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const predTimeFormat = "2006-01-02 15:04"

// mphPerKnot converts NOAA's english current speeds to miles per hour.
const mphPerKnot = 1.15078

// Prediction holds a single tide prediction.
type Prediction struct {
	// Local time of tide prediction
	Time Time `json:"t"`
	// Height in feet
	Height Height `json:"v"`
	// High or Low tide, "H" or "L" when encoded. Hourly predictions carry no
	// type.
	Type Tide `json:"type"`
}

// Verify the custom types can be unmarshaled
var _ json.Unmarshaler = &Time{}
var _ json.Unmarshaler = new(Height)
var _ json.Unmarshaler = new(Tide)

// Predictions is a time series of Prediction.
type Predictions []Prediction

// NOAAResult is the data type returned by the NOAA API for tide predictions.
type NOAAResult struct {
	Predictions Predictions `json:"predictions"`
	Error       *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
}

// Current is a single tidal current prediction.
type Current struct {
	Time Time
	// Speed in miles per hour, never negative.
	Speed float64
	// Direction the current sets toward in degrees true. Nil when the station
	// does not publish one.
	Direction *float64
}

// Currents is a time series of Current.
type Currents []Current

// currentsResult is the data type returned by the NOAA API for current
// predictions.
type currentsResult struct {
	CurrentPredictions *struct {
		CP []rawCurrent `json:"cp"`
	} `json:"current_predictions"`
	Error *apiError `json:"error,omitempty"`
}

// rawCurrent is one "cp" entry. Velocity_Major is signed in knots: positive
// while flooding, negative while ebbing.
type rawCurrent struct {
	Time          Time     `json:"Time"`
	VelocityMajor float64  `json:"Velocity_Major"`
	MeanFloodDir  *float64 `json:"meanFloodDir"`
	MeanEbbDir    *float64 `json:"meanEbbDir"`
}

func (r rawCurrent) current() Current {
	c := Current{
		Time:  r.Time,
		Speed: abs(r.VelocityMajor) * mphPerKnot,
	}
	if r.VelocityMajor >= 0 {
		c.Direction = r.MeanFloodDir
	} else {
		c.Direction = r.MeanEbbDir
	}
	return c
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

type Time time.Time

func (t *Time) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("prediction time %q not string: %w", buf, err)
	}
	parsed, err := time.ParseInLocation(predTimeFormat, s, time.Local)
	if err != nil {
		return fmt.Errorf("prediction time %q not in fmt %q: %w", s, predTimeFormat, err)
	}
	*t = Time(parsed)
	return nil
}

// in re-anchors the wall clock of t in loc. NOAA reports station local time
// without an offset.
func (t Time) in(loc *time.Location) Time {
	tt := time.Time(t)
	return Time(time.Date(tt.Year(), tt.Month(), tt.Day(), tt.Hour(), tt.Minute(), tt.Second(), 0, loc))
}

type Height float64

func (h *Height) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("water height %q not string: %w", buf, err)
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("water height %q not a float: %w", s, err)
	}
	*h = Height(parsed)
	return nil
}

type Tide uint

const (
	NoTide Tide = iota
	HighTide
	LowTide
)

func (t Tide) Valid() bool {
	return t == HighTide || t == LowTide
}

func (t *Tide) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("tide %q not a string: %w", buf, err)
	}
	switch s {
	case "H":
		*t = HighTide
	case "L":
		*t = LowTide
	case "":
		*t = NoTide
	default:
		return fmt.Errorf("invalid tide type %q", s)
	}
	return nil
}

func (t Tide) String() string {
	switch t {
	case HighTide:
		return "H"
	case LowTide:
		return "L"
	case NoTide:
		return "-"
	default:
		return "invalid"
	}
}

func (p Prediction) String() string {
	return fmt.Sprintf("{t: %s, v: %f, type: %s}",
		time.Time(p.Time).Format(time.RFC822),
		p.Height,
		p.Type.String())
}

// T returns the prediction time as a time.Time.
func (p Prediction) T() time.Time {
	return time.Time(p.Time)
}

// T returns the current time as a time.Time.
func (c Current) T() time.Time {
	return time.Time(c.Time)
}

func (c Current) String() string {
	dir := "none"
	if c.Direction != nil {
		dir = fmt.Sprintf("%.0f", *c.Direction)
	}
	return fmt.Sprintf("{t: %s, speed: %f, dir: %s}",
		c.T().Format(time.RFC822),
		c.Speed,
		dir)
}

// In returns the predictions with their wall clocks anchored in loc.
func (preds Predictions) In(loc *time.Location) Predictions {
	out := make(Predictions, len(preds))
	for i, p := range preds {
		p.Time = p.Time.in(loc)
		out[i] = p
	}
	return out
}

// In returns the currents with their wall clocks anchored in loc.
func (cs Currents) In(loc *time.Location) Currents {
	out := make(Currents, len(cs))
	for i, c := range cs {
		c.Time = c.Time.in(loc)
		out[i] = c
	}
	return out
}
