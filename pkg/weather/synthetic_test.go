package weather

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSyntheticDeterministic(t *testing.T) {
	date := time.Date(2024, time.July, 4, 9, 0, 0, 0, time.UTC)
	if diff := cmp.Diff(Synthetic(date), Synthetic(date)); diff != "" {
		t.Errorf("same date produced different forecasts (-first,+second):\n%s", diff)
	}
}

func TestSyntheticShape(t *testing.T) {
	for _, date := range []time.Time{
		time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	} {
		f := Synthetic(date)
		if len(f) != 24 {
			t.Fatalf("%s: got %d samples, want 24", date, len(f))
		}
		for hour, s := range f {
			if s.Time.Hour() != hour || s.Time.Day() != date.Day() {
				t.Errorf("%s: sample %d at %s", date, hour, s.Time)
			}
			if s.WindSpeed < 0 {
				t.Errorf("%s: negative wind %f", date, s.WindSpeed)
			}
			if s.WindDirection == "" || s.Condition == "" {
				t.Errorf("%s: sample %d missing labels: %s", date, hour, s)
			}
			if s.WindSpeed > 15 && s.Condition != "Windy" {
				t.Errorf("%s: %f mph labeled %q", date, s.WindSpeed, s.Condition)
			}
		}
		// Afternoons are warmer than the small hours.
		if f[14].Temperature <= f[2].Temperature {
			t.Errorf("%s: 2pm %f not warmer than 2am %f", date, f[14].Temperature, f[2].Temperature)
		}
	}
}
