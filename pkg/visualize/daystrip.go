// Package visualize draws a day of recommendations as SVG.
package visualize

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/spencer-p/kayakdash/pkg/meta"
	"github.com/spencer-p/kayakdash/pkg/noaa"
	"github.com/spencer-p/kayakdash/pkg/noaa/splines"
	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

const (
	width     = 1200
	height    = 300
	barHeight = 40
	hourWidth = width / 24

	// Tide heights drawn, in feet.
	lowestTide  = -4
	highestTide = 14
)

var ErrNoRecommendations = errors.New("no recommendations to draw")

// DayStrip is an SVG image of one day. Each hour gets a bar in its rating's
// color under the tide curve.
type DayStrip struct {
	date time.Time
	recs []meta.Recommendation
	opts meta.Options
}

func NewDayStrip(d meta.Day, opts meta.Options) *DayStrip {
	return &DayStrip{
		date: timetricks.TrimClock(d.Date),
		recs: d.Recommendations,
		opts: opts,
	}
}

func (img *DayStrip) Encode(w io.Writer) (int, error) {
	if len(img.recs) == 0 {
		return 0, ErrNoRecommendations
	}

	var n int
	var err error
	io := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil {
			err = nexterr
		}
	}

	io(fmt.Fprintf(w, `<svg viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height))

	// Mark the ideal tide band.
	top, bottom := tideHeightToY(img.opts.Tide.Max), tideHeightToY(img.opts.Tide.Min)
	io(fmt.Fprintf(w, `<rect class="ideal_tide" fill="#e9c46a" fill-opacity="40%%" x="%d" y="%d" width="%d" height="%d"/>`,
		0, top,
		width, bottom-top+1))

	// Draw the tide between consecutive hours.
	for i := 0; i+1 < len(img.recs); i++ {
		a, b := img.recs[i], img.recs[i+1]
		x1, y1 := img.hourToX(a.Hour), tideHeightToY(a.TideHeight)
		x2, y2 := img.hourToX(b.Hour)+1, tideHeightToY(b.TideHeight) // +1 to create overlap
		cx := (x1 + x2) / 2
		io(fmt.Fprintf(w, `<path class="tide" fill="skyblue" d="M %d,%d C %d,%d %d,%d %d,%d L %d,%d L %d,%d z"/>`,
			x1, y1,
			cx, y1,
			cx, y2,
			x2, y2,
			x2, height-barHeight, x1, height-barHeight))
	}

	// Rate each hour and shade the night.
	for _, r := range img.recs {
		x := img.hourToX(r.Hour)
		io(fmt.Fprintf(w, `<rect class="hour" fill="%s" x="%d" y="%d" width="%d" height="%d"><title>%s-%s %s</title></rect>`,
			html.EscapeString(r.Rating.Color(img.opts.Colors)),
			x, height-barHeight,
			hourWidth, barHeight,
			r.StartTime, r.EndTime, r.Rating.Title()))
		if !r.Daylight {
			io(fmt.Fprintf(w, `<rect class="night" fill="blue" fill-opacity="25%%" x="%d" y="%d" width="%d" height="%d"/>`,
				x, 0,
				hourWidth, height-barHeight))
		}
	}

	// Insert spline data as JSON.
	io(fmt.Fprintf(w, `<text class="spline" visibility="hidden">`))
	if encErr := json.NewEncoder(w).Encode(splines.CurvesBetween(img.tides())); encErr != nil {
		err = encErr
	}
	io(fmt.Fprintf(w, `</text>`))

	// Insert date of this graph as unix.
	io(fmt.Fprintf(w, `<text class="unixtime" visibility="hidden">%d</text>`, img.date.Unix()))

	io(fmt.Fprintf(w, `</svg>`))

	return n, err
}

// tides are the hourly tide heights as predictions.
func (img *DayStrip) tides() noaa.Predictions {
	preds := make(noaa.Predictions, len(img.recs))
	for i, r := range img.recs {
		preds[i] = noaa.Prediction{
			Time:   noaa.Time(r.Time),
			Height: noaa.Height(r.TideHeight),
		}
	}
	return preds
}

func tideHeightToY(tideHeight float64) int {
	tideHeight = max(lowestTide, min(highestTide, tideHeight))
	plot := height - barHeight
	return plot - int((tideHeight-lowestTide)*float64(plot)/(highestTide-lowestTide))
}

func (img *DayStrip) hourToX(hour int) int {
	return hour * hourWidth
}
