package meta

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

const (
	dayFmt  = "01/02"
	timeFmt = "3:04 PM"
)

// GoodTime represents a good time to launch: a run of consecutive hours
// sharing an optimal or acceptable rating.
type GoodTime struct {
	Time     time.Time     `json:"unix_time"`
	Rating   Rating        `json:"rating"`
	Reasons  []string      `json:"reasons"`
	Duration time.Duration `json:"duration,omitempty"`

	// PrettyTime is a human-readable version of the time, relative to the
	// current date. Optional.
	PrettyTime string `json:"pretty_time,omitempty"`
}

func (gt *GoodTime) String() string {
	return fmt.Sprintf("%s, %s",
		gt.prettyTime(),
		strings.Join(gt.Reasons, " and "))
}

func (gt *GoodTime) prettyTime() string {
	day := timetricks.Day(gt.Time)

	until := ""
	if gt.Duration != 0 {
		until = fmt.Sprintf(" until %s", gt.Time.Add(gt.Duration).Format(timeFmt))
	}

	return fmt.Sprintf("%s at %s%s",
		day,
		gt.Time.Format(timeFmt),
		until)
}

// UpdatePrettyTime makes sure that the good time's pretty time is set.
func (gt *GoodTime) UpdatePrettyTime() {
	if gt.PrettyTime == "" {
		gt.PrettyTime = gt.prettyTime()
	}
}

// TimeRange returns a time range for the goodtime, similar to PrettyTime
// without the date.
func (gt *GoodTime) TimeRange() string {
	until := ""
	if gt.Duration != 0 {
		until = fmt.Sprintf(" until %s", gt.Time.Add(gt.Duration).Format(timeFmt))
	}
	return fmt.Sprintf("%s%s", gt.Time.Format(timeFmt), until)
}

func (gt *GoodTime) MarshalJSON() ([]byte, error) {
	// Fill in pretty time if needed.
	gt.UpdatePrettyTime()
	// plain has no methods, so this does not recurse.
	type plain GoodTime
	return json.Marshal(plain(*gt))
}

// Windows merges consecutive recommended hours of the same rating into good
// times. Not recommended hours and gaps in the hours end a window.
func Windows(recs []Recommendation) []GoodTime {
	result := []GoodTime{}
	for i := 0; i < len(recs); {
		if recs[i].Rating == NotRecommended {
			i++
			continue
		}
		j := i + 1
		for j < len(recs) && recs[j].Rating == recs[i].Rating && recs[j].Hour == recs[j-1].Hour+1 {
			j++
		}
		result = append(result, window(recs[i:j]))
		i = j
	}
	return result
}

func window(run []Recommendation) GoodTime {
	first := run[0]
	lowTide, highTide := first.TideHeight, first.TideHeight
	maxCurrent, maxWind := first.CurrentSpeed, first.WindSpeed
	cautions := 0
	for _, r := range run {
		lowTide = min(lowTide, r.TideHeight)
		highTide = max(highTide, r.TideHeight)
		maxCurrent = max(maxCurrent, r.CurrentSpeed)
		maxWind = max(maxWind, r.WindSpeed)
		if r.Factors.Ferry < 1 {
			cautions++
		}
	}

	reasons := []string{
		fmt.Sprintf("conditions are %s", strings.ToLower(first.Rating.Title())),
	}
	if lowTide == highTide {
		reasons = append(reasons, fmt.Sprintf("the tide is %.1f ft", lowTide))
	} else {
		reasons = append(reasons, fmt.Sprintf("the tide is between %.1f and %.1f ft", lowTide, highTide))
	}
	reasons = append(reasons,
		fmt.Sprintf("current stays under %.1f mph", maxCurrent),
		fmt.Sprintf("wind stays under %.0f mph", maxWind))
	if cautions > 0 {
		reasons = append(reasons, fmt.Sprintf("watch for ferries in %d of %d hours", cautions, len(run)))
	}

	return GoodTime{
		Time:     first.Time,
		Rating:   first.Rating,
		Reasons:  reasons,
		Duration: time.Duration(len(run)) * time.Hour,
	}
}
