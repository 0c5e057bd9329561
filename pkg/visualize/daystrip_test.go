package visualize

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spencer-p/kayakdash/pkg/meta"
	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

func testDay() meta.Day {
	date := time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)
	var recs []meta.Recommendation
	for h := 0; h < 24; h++ {
		rating := meta.NotRecommended
		if h >= 10 && h < 14 {
			rating = meta.Optimal
		}
		recs = append(recs, meta.Recommendation{
			Hour:       h,
			Time:       timetricks.SetClock(date, time.Duration(h), 0),
			StartTime:  timetricks.HourClock(h),
			EndTime:    timetricks.HourClock(h + 1),
			TideHeight: float64(h%12) - 1,
			Daylight:   h >= 6 && h < 21,
			Rating:     rating,
		})
	}
	return meta.Day{Date: date, Recommendations: recs}
}

func TestDayStrip(t *testing.T) {
	opts := meta.DefaultOptions()
	var b bytes.Buffer
	n, err := NewDayStrip(testDay(), opts).Encode(&b)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if n != b.Len() {
		t.Errorf("Encode() reported %d bytes, wrote %d", n, b.Len())
	}
	svg := b.String()

	for _, tc := range []struct {
		substr string
		count  int
	}{
		{`class="hour"`, 24},
		{`class="night"`, 9},
		{`class="tide"`, 23},
		{`fill="` + opts.Colors.Optimal + `"`, 4},
		{`<title>10:00-11:00 Optimal</title>`, 1},
		{`class="unixtime" visibility="hidden">1718841600<`, 1},
	} {
		if got := strings.Count(svg, tc.substr); got != tc.count {
			t.Errorf("found %q %d times, want %d", tc.substr, got, tc.count)
		}
	}
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("not a single svg element: %.40q...", svg)
	}
}

func TestDayStripEmpty(t *testing.T) {
	var b bytes.Buffer
	if _, err := NewDayStrip(meta.Day{}, meta.DefaultOptions()).Encode(&b); !errors.Is(err, ErrNoRecommendations) {
		t.Errorf("Encode() error = %v, want ErrNoRecommendations", err)
	}
}

func TestTideHeightToY(t *testing.T) {
	for _, tc := range []struct {
		feet float64
		want int
	}{
		{lowestTide, height - barHeight},
		{highestTide, 0},
		{-10, height - barHeight},
		{30, 0},
		{5, 130},
	} {
		if got := tideHeightToY(tc.feet); got != tc.want {
			t.Errorf("tideHeightToY(%v) = %d, want %d", tc.feet, got, tc.want)
		}
	}
}
