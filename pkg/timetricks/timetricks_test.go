package timetricks

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func ExampleWithinWeek() {
	t := time.Now()
	for i := 0; i < 8; i++ {
		fmt.Println(i, WithinWeek(t.Add(time.Duration(i)*24*time.Hour)))
	}
	// Output:
	// 0 true
	// 1 true
	// 2 true
	// 3 true
	// 4 true
	// 5 true
	// 6 true
	// 7 false
}

func ExampleHourClock() {
	for _, h := range []int{0, 9, 23, 24} {
		fmt.Println(HourClock(h))
	}
	// Output:
	// 00:00
	// 09:00
	// 23:00
	// 00:00
}

func TestDateRange(t *testing.T) {
	loc := time.FixedZone("PDT", -7*60*60)
	start := time.Date(2024, time.June, 29, 15, 45, 0, 0, loc)

	var got []string
	for _, d := range DateRange(start, DaysPerWeek) {
		got = append(got, d.Format("2006-01-02 15:04"))
	}
	want := []string{
		"2024-06-29 00:00",
		"2024-06-30 00:00",
		"2024-07-01 00:00",
		"2024-07-02 00:00",
		"2024-07-03 00:00",
		"2024-07-04 00:00",
		"2024-07-05 00:00",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DateRange (-want,+got):\n%s", diff)
	}

	if n := len(DateRange(start, 0)); n != 1 {
		t.Errorf("DateRange with zero days returned %d days, want 1", n)
	}
}

func TestDay(t *testing.T) {
	now := time.Now()
	table := []struct {
		t    time.Time
		want string
	}{
		{SetClock(now, 16, 27), "Today"},
		{SetClock(now.AddDate(0, 0, 1), 12, 55), "Tomorrow"},
		{SetClock(now.AddDate(0, 0, 3), 13, 0), now.AddDate(0, 0, 3).Weekday().String()},
		{time.Date(1999, time.January, 5, 5, 35, 0, 0, time.Local), "01/05"},
	}
	for _, tc := range table {
		t.Run(tc.want, func(t *testing.T) {
			if got := Day(tc.t); got != tc.want {
				t.Errorf("Day(%s) = %q, want %q", tc.t, got, tc.want)
			}
		})
	}
}
