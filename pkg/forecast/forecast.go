// Package forecast gathers the conditions for a day from every provider.
package forecast

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/spencer-p/kayakdash/pkg/ferry"
	"github.com/spencer-p/kayakdash/pkg/meta"
	"github.com/spencer-p/kayakdash/pkg/metrics"
	"github.com/spencer-p/kayakdash/pkg/noaa"
	"github.com/spencer-p/kayakdash/pkg/noaa/splines"
	"github.com/spencer-p/kayakdash/pkg/sunset"
	"github.com/spencer-p/kayakdash/pkg/timetricks"
	"github.com/spencer-p/kayakdash/pkg/weather"
)

const (
	providerTides    = "tides"
	providerCurrents = "currents"
	providerWeather  = "weather"
	providerFerries  = "ferries"

	day = 24 * time.Hour
)

type TideSource interface {
	Tides(ctx context.Context, date time.Time) (noaa.Predictions, error)
}

type CurrentSource interface {
	Currents(ctx context.Context, date time.Time) (noaa.Currents, error)
}

type WeatherSource interface {
	Forecast(ctx context.Context, date time.Time) (weather.Forecast, error)
}

type FerrySource interface {
	Schedule(ctx context.Context, date time.Time) (ferry.Schedule, error)
}

// Fetcher collects the series for a day. A nil Weather source always uses the
// synthetic forecast.
type Fetcher struct {
	Tides    TideSource
	Currents CurrentSource
	Weather  WeatherSource
	Ferries  FerrySource

	// HiLo marks tide sources that report only high and low events. Those
	// are interpolated onto the hour.
	HiLo bool

	Place sunset.Place
}

// Day fetches every series for the calendar day of date concurrently. Currents
// and weather fall back to synthetic data; a tide or ferry failure leaves that
// series nil so the day gets no recommendations.
func (f *Fetcher) Day(ctx context.Context, date time.Time) meta.Conditions {
	date = timetricks.TrimClock(date)

	var (
		c  meta.Conditions
		wg sync.WaitGroup
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		c.Tides = f.tides(ctx, date)
	}()
	go func() {
		defer wg.Done()
		c.Currents = f.currents(ctx, date)
	}()
	go func() {
		defer wg.Done()
		c.Weather = f.weather(ctx, date)
	}()
	go func() {
		defer wg.Done()
		c.Ferries = f.ferries(ctx, date)
	}()
	wg.Wait()

	c.SunEvents = sunset.GetSunEvents(date, day, f.Place)
	return c
}

func (f *Fetcher) tides(ctx context.Context, date time.Time) noaa.Predictions {
	preds, err := f.Tides.Tides(ctx, date)
	if err != nil {
		log.Printf("Failed to fetch tides for %s: %v", date.Format(time.DateOnly), err)
		metrics.ObserveFetch(providerTides, metrics.OutcomeError)
		return nil
	}
	metrics.ObserveFetch(providerTides, metrics.OutcomeOK)
	if f.HiLo {
		return splines.Resample(preds, date, time.Hour, 24)
	}
	return preds
}

func (f *Fetcher) currents(ctx context.Context, date time.Time) noaa.Currents {
	cs, err := f.Currents.Currents(ctx, date)
	switch {
	case errors.Is(err, noaa.ErrNoPredictions):
		log.Printf("No current predictions for %s, using synthetic currents", date.Format(time.DateOnly))
		metrics.ObserveFetch(providerCurrents, metrics.OutcomeFallback)
		return noaa.SyntheticCurrents(date)
	case err != nil:
		log.Printf("Failed to fetch currents for %s: %v", date.Format(time.DateOnly), err)
		metrics.ObserveFetch(providerCurrents, metrics.OutcomeError)
		return nil
	}
	metrics.ObserveFetch(providerCurrents, metrics.OutcomeOK)
	return cs
}

func (f *Fetcher) weather(ctx context.Context, date time.Time) weather.Forecast {
	if f.Weather == nil {
		metrics.ObserveFetch(providerWeather, metrics.OutcomeFallback)
		return weather.Synthetic(date)
	}
	fc, err := f.Weather.Forecast(ctx, date)
	if err != nil || len(fc) == 0 {
		log.Printf("Using synthetic weather for %s: %v", date.Format(time.DateOnly), err)
		metrics.ObserveFetch(providerWeather, metrics.OutcomeFallback)
		return weather.Synthetic(date)
	}
	metrics.ObserveFetch(providerWeather, metrics.OutcomeOK)
	return fc
}

func (f *Fetcher) ferries(ctx context.Context, date time.Time) ferry.Schedule {
	s, err := f.Ferries.Schedule(ctx, date)
	if err != nil {
		log.Printf("Failed to fetch ferries for %s: %v", date.Format(time.DateOnly), err)
		metrics.ObserveFetch(providerFerries, metrics.OutcomeError)
		return nil
	}
	metrics.ObserveFetch(providerFerries, metrics.OutcomeOK)
	return s
}

// Analyze fetches and rates one day.
func (f *Fetcher) Analyze(ctx context.Context, date time.Time, opts meta.Options) meta.Day {
	date = timetricks.TrimClock(date)
	d := meta.Analyze(date, f.Day(ctx, date), opts)
	for _, r := range d.Recommendations {
		metrics.ObserveRating(string(r.Rating))
	}
	return d
}

// Week analyzes days consecutive days from start. Days are fetched one at a
// time so the providers' rate limits are shared fairly with other requests.
func (f *Fetcher) Week(ctx context.Context, start time.Time, days int, opts meta.Options) ([]meta.Day, error) {
	result := make([]meta.Day, 0, days)
	for _, date := range timetricks.DateRange(start, days) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("week from %s: %w", start.Format(time.DateOnly), err)
		}
		result = append(result, f.Analyze(ctx, date, opts))
	}
	return result, nil
}
