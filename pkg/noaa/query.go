package noaa

import (
	"net/url"
	"time"
)

const (
	NOAA_URL = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	TIME_FMT = "20060102"

	ProductPredictions = "predictions"
	ProductCurrents    = "currents_predictions"

	IntervalHourly = "h"
	IntervalHiLo   = "hilo"

	application = "kayakdash"
)

// Reference stations around Point White on Bainbridge Island.
const (
	Seattle     = "9447130"
	RichPassage = "PCT1641_17"
)

// PredictionQuery is used to query NOAA data at a station in a given time
// window; see Client.GetPredictions and Client.GetCurrents. The window covers
// whole calendar days from Start through Start+Duration, so a zero Duration
// asks for Start's day only.
type PredictionQuery struct {
	Start    time.Time
	Duration time.Duration
	Station  string
	// Product defaults to tide predictions.
	Product string
	// Interval defaults to hourly.
	Interval string
}

// End is the last calendar day covered by the query.
func (q *PredictionQuery) End() time.Time {
	return q.Start.Add(q.Duration)
}

func (q *PredictionQuery) product() string {
	if q.Product == "" {
		return ProductPredictions
	}
	return q.Product
}

func (q *PredictionQuery) interval() string {
	if q.Interval == "" {
		return IntervalHourly
	}
	return q.Interval
}

func (q *PredictionQuery) build() url.Values {
	vals := make(url.Values)
	vals.Add("begin_date", q.Start.Format(TIME_FMT))
	vals.Add("end_date", q.End().Format(TIME_FMT))
	vals.Add("station", q.Station)
	vals.Add("product", q.product())
	if q.product() == ProductPredictions {
		vals.Add("datum", "MLLW")
	}
	vals.Add("time_zone", "lst_ldt")
	vals.Add("interval", q.interval())
	vals.Add("units", "english")
	vals.Add("application", application)
	vals.Add("format", "json")
	return vals
}

func (q *PredictionQuery) url(base string) *url.URL {
	addr, err := url.Parse(base)
	if err != nil {
		addr = &url.URL{}
	}
	addr.RawQuery = q.build().Encode()
	return addr
}
