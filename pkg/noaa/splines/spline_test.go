package splines

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/spencer-p/kayakdash/pkg/noaa"
)

func ExampleDiscrete() {
	tstart := time.Date(2021, time.April, 3, 10, 30, 0, 0, time.Local)
	preds := noaa.Predictions{{
		Time:   noaa.Time(tstart),
		Height: 10,
	}, {
		Time:   noaa.Time(tstart.Add(1000 * time.Hour)),
		Height: 1,
	}}
	discrete := Discrete(CurvesBetween(preds), 10)
	for i := range discrete {
		fmt.Println(math.Round(discrete[i]))
	}
	// Output:
	// 10
	// 10
	// 9
	// 8
	// 6
	// 5
	// 3
	// 2
	// 1
	// 1
}

func TestCurveEndpoints(t *testing.T) {
	tstart := time.Date(2024, time.June, 1, 4, 12, 0, 0, time.UTC)
	tend := tstart.Add(6*time.Hour + 20*time.Minute)
	curve := CurvesBetween(noaa.Predictions{
		{Time: noaa.Time(tstart), Height: -1.2},
		{Time: noaa.Time(tend), Height: 11.4},
	})[0]

	if got := curve.Eval(tstart); math.Abs(got-(-1.2)) > 1e-6 {
		t.Errorf("Eval(start) = %f, want -1.2", got)
	}
	if got := curve.Eval(tend); math.Abs(got-11.4) > 1e-6 {
		t.Errorf("Eval(end) = %f, want 11.4", got)
	}
	if got := curve.Eval(tend.Add(time.Minute)); !math.IsNaN(got) {
		t.Errorf("Eval past end = %f, want NaN", got)
	}
}

func TestSplineEvalOutside(t *testing.T) {
	tstart := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	spline := CurvesBetween(noaa.Predictions{
		{Time: noaa.Time(tstart), Height: 0},
		{Time: noaa.Time(tstart.Add(6 * time.Hour)), Height: 8},
		{Time: noaa.Time(tstart.Add(12 * time.Hour)), Height: 2},
	})
	for _, tt := range []time.Time{tstart.Add(-time.Hour), tstart.Add(13 * time.Hour)} {
		if got := spline.Eval(tt); !math.IsNaN(got) {
			t.Errorf("Eval(%s) = %f, want NaN", tt, got)
		}
	}
	if got := spline.Eval(tstart.Add(6 * time.Hour)); math.Abs(got-8) > 1e-6 {
		t.Errorf("Eval at the high = %f, want 8", got)
	}
}

func TestResample(t *testing.T) {
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	hilo := noaa.Predictions{
		{Time: noaa.Time(day.Add(-2 * time.Hour)), Height: 1, Type: noaa.LowTide},
		{Time: noaa.Time(day.Add(5 * time.Hour)), Height: 10, Type: noaa.HighTide},
		{Time: noaa.Time(day.Add(11 * time.Hour)), Height: 3, Type: noaa.LowTide},
		{Time: noaa.Time(day.Add(18 * time.Hour)), Height: 9, Type: noaa.HighTide},
	}

	got := Resample(hilo, day, time.Hour, 24)
	// The last event is at 18:00, so hours 19-23 are not covered.
	if len(got) != 19 {
		t.Fatalf("got %d samples, want 19", len(got))
	}
	for i, p := range got {
		if p.T().Hour() != i {
			t.Errorf("sample %d at hour %d", i, p.T().Hour())
		}
		if p.Type != noaa.NoTide {
			t.Errorf("sample %d has type %s, want none", i, p.Type)
		}
	}
	if math.Abs(float64(got[5].Height)-10) > 1e-6 {
		t.Errorf("height at the high = %f, want 10", got[5].Height)
	}
	if !(got[2].Height > got[1].Height && got[8].Height < got[7].Height) {
		t.Errorf("resampled curve does not rise before the high and fall after it")
	}
}
