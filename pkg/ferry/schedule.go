// Package ferry holds the Seattle-Bainbridge ferry timetable and answers how
// soon the next boat leaves.
package ferry

import (
	"context"
	"fmt"
	"time"

	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

const crossing = 35 * time.Minute

// Direction names the route a departure sails.
type Direction string

const (
	SeattleToBainbridge Direction = "Seattle to Bainbridge"
	BainbridgeToSeattle Direction = "Bainbridge to Seattle"
)

// Departure is a single scheduled sailing.
type Departure struct {
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Direction     Direction `json:"direction"`
	Vessel        string    `json:"vessel"`
}

// Schedule is an ordered list of departures for one service day.
type Schedule []Departure

// Reference departure clocks, in timetable order.
var (
	seattleDepartures = []string{
		"05:20", "06:10", "07:05", "07:55", "08:45",
		"09:35", "10:25", "11:15", "12:05", "12:55",
		"13:45", "14:35", "15:30", "16:15", "17:05",
		"17:55", "18:45", "19:35", "20:30", "21:15",
		"22:05", "23:00",
	}
	bainbridgeDepartures = []string{
		"04:45", "05:40", "06:30", "07:15", "08:10",
		"09:00", "09:50", "10:40", "11:30", "12:20",
		"13:10", "14:00", "14:50", "15:40", "16:30",
		"17:20", "18:10", "19:00", "19:45", "20:40",
		"21:25", "22:15",
	}
)

// Timetable serves the fixed reference schedule.
type Timetable struct{}

// Schedule returns the day's sailings: every Seattle departure followed by
// every Bainbridge departure.
func (Timetable) Schedule(ctx context.Context, date time.Time) (Schedule, error) {
	return ForDay(date)
}

// ForDay builds the reference schedule on date's calendar day.
func ForDay(date time.Time) (Schedule, error) {
	result := make(Schedule, 0, len(seattleDepartures)+len(bainbridgeDepartures))
	for _, route := range []struct {
		dir    Direction
		clocks []string
	}{
		{SeattleToBainbridge, seattleDepartures},
		{BainbridgeToSeattle, bainbridgeDepartures},
	} {
		for _, clock := range route.clocks {
			dep, err := atClock(date, clock)
			if err != nil {
				return nil, err
			}
			result = append(result, Departure{
				DepartureTime: dep,
				ArrivalTime:   dep.Add(crossing),
				Direction:     route.dir,
				Vessel:        "Ferry",
			})
		}
	}
	return result, nil
}

func atClock(date time.Time, clock string) (time.Time, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return time.Time{}, fmt.Errorf("bad departure clock %q: %w", clock, err)
	}
	return timetricks.SetClock(date, time.Duration(h), time.Duration(m)), nil
}
