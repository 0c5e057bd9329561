package meta

import (
	"testing"
	"time"

	"github.com/spencer-p/kayakdash/pkg/noaa"
	"github.com/spencer-p/kayakdash/pkg/weather"
)

func TestWeatherAt(t *testing.T) {
	table := []struct {
		name     string
		forecast weather.Forecast
		t        time.Time
		want     string
		wantOK   bool
	}{{
		name:   "empty",
		t:      at(9, 0),
		wantOK: false,
	}, {
		name: "exact hour wins over a nearer sample",
		forecast: weather.Forecast{
			{Time: at(8, 59), WindDirection: "near"},
			{Time: at(9, 50), WindDirection: "same hour"},
		},
		t:      at(9, 0),
		want:   "same hour",
		wantOK: true,
	}, {
		name: "nearest by absolute difference",
		forecast: weather.Forecast{
			{Time: at(3, 0), WindDirection: "3"},
			{Time: at(12, 0), WindDirection: "12"},
			{Time: at(7, 30), WindDirection: "7:30"},
		},
		t:      at(9, 0),
		want:   "7:30",
		wantOK: true,
	}, {
		name: "ties go to the first listed",
		forecast: weather.Forecast{
			{Time: at(10, 30), WindDirection: "later"},
			{Time: at(7, 30), WindDirection: "earlier"},
		},
		t:      at(9, 0),
		want:   "later",
		wantOK: true,
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := weatherAt(tc.forecast, tc.t)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if got.WindDirection != tc.want {
				t.Errorf("picked %q, want %q", got.WindDirection, tc.want)
			}
		})
	}
}

func TestTideAtFirstInHour(t *testing.T) {
	tides := noaa.Predictions{
		{Time: noaa.Time(at(9, 0)), Height: 5},
		{Time: noaa.Time(at(9, 30)), Height: 6},
	}
	got, ok := tideAt(tides, 9)
	if !ok || got.Height != 5 {
		t.Errorf("tideAt = %v %v, want the 9:00 sample", got, ok)
	}
	if _, ok := tideAt(tides, 10); ok {
		t.Errorf("tideAt found a sample for an absent hour")
	}
}

func TestTideStatusWithoutPrevious(t *testing.T) {
	tides := noaa.Predictions{{Time: noaa.Time(at(9, 0)), Height: 5}}
	if got := tideStatus(tides, 9, 5); got != Steady {
		t.Errorf("tideStatus without a previous hour = %s, want steady", got)
	}
}

func TestCurrentDirection(t *testing.T) {
	table := []struct {
		dir  *float64
		want CurrentDirection
	}{
		{nil, UnknownCurrent},
		{ptr(0.0), Flooding},
		{ptr(90.0), Flooding},
		{ptr(180.0), Flooding},
		{ptr(180.5), Ebbing},
		{ptr(270.0), Ebbing},
		{ptr(-10.0), Ebbing},
	}
	for _, tc := range table {
		if got := currentDirection(noaa.Current{Direction: tc.dir}); got != tc.want {
			t.Errorf("currentDirection(%v) = %s, want %s", tc.dir, got, tc.want)
		}
	}
}
