package noaa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParsePrediction(t *testing.T) {
	table := []struct {
		input string
		want  Prediction
	}{{
		input: `{"t":"2020-10-20 02:17", "v":"4.080", "type":"H"}`,
		want: Prediction{
			Time:   Time(time.Date(2020, time.October, 20, 2, 17, 0, 0, time.Local)),
			Height: 4.08,
			Type:   HighTide,
		},
	}, {
		input: `{"t":"2019-09-21 06:56", "v":"2.559", "type":"L"}`,
		want: Prediction{
			Time:   Time(time.Date(2019, time.September, 21, 6, 56, 0, 0, time.Local)),
			Height: 2.559,
			Type:   LowTide,
		},
	}, {
		input: `{"t":"2024-06-01 13:00", "v":"7.412"}`,
		want: Prediction{
			Time:   Time(time.Date(2024, time.June, 1, 13, 0, 0, 0, time.Local)),
			Height: 7.412,
			Type:   NoTide,
		},
	}}

	for _, test := range table {
		t.Run(test.input, func(t *testing.T) {
			var got Prediction

			dec := json.NewDecoder(bytes.NewBufferString(test.input))
			if err := dec.Decode(&got); err != nil {
				t.Errorf("unexpected error: %+v", err)
			}

			gotstr := fmt.Sprintf("%s", got)
			wantstr := fmt.Sprintf("%s", test.want)
			if diff := cmp.Diff(gotstr, wantstr); diff != "" {
				t.Errorf("incorrect parse (-got,+want): %s", diff)
			}
		})
	}
}

func TestParsePredictionErrors(t *testing.T) {
	for _, input := range []string{
		`{"t":"yesterday", "v":"4.0"}`,
		`{"t":"2020-10-20 02:17", "v":"high"}`,
		`{"t":"2020-10-20 02:17", "v":"4.0", "type":"X"}`,
		`{"t":20201020, "v":"4.0"}`,
	} {
		var got Prediction
		if err := json.Unmarshal([]byte(input), &got); err == nil {
			t.Errorf("parsed %s without error: %s", input, got)
		}
	}
}

func TestRawCurrent(t *testing.T) {
	flood, ebb := 25.0, 205.0
	table := []struct {
		name    string
		raw     rawCurrent
		speed   float64
		wantDir *float64
	}{{
		name:    "flooding",
		raw:     rawCurrent{VelocityMajor: 1.0, MeanFloodDir: &flood, MeanEbbDir: &ebb},
		speed:   1.15078,
		wantDir: &flood,
	}, {
		name:    "ebbing",
		raw:     rawCurrent{VelocityMajor: -2.0, MeanFloodDir: &flood, MeanEbbDir: &ebb},
		speed:   2.30156,
		wantDir: &ebb,
	}, {
		name:  "no direction",
		raw:   rawCurrent{VelocityMajor: -0.5},
		speed: 0.57539,
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.raw.current()
			if diff := got.Speed - tc.speed; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("speed = %f, want %f", got.Speed, tc.speed)
			}
			if diff := cmp.Diff(tc.wantDir, got.Direction); diff != "" {
				t.Errorf("direction (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestPredictionsIn(t *testing.T) {
	loc := time.FixedZone("PDT", -7*60*60)
	preds := Predictions{{
		Time:   Time(time.Date(2024, time.June, 1, 5, 0, 0, 0, time.UTC)),
		Height: 3,
	}}
	got := preds.In(loc)[0].T()
	want := time.Date(2024, time.June, 1, 5, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("In() = %s, want %s", got, want)
	}
	if preds[0].T().Location() != time.UTC {
		t.Errorf("In() modified its receiver")
	}
}
