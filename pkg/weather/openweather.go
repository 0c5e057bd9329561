package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/spencer-p/kayakdash/pkg/timetricks"
)

const openWeatherURL = "https://api.openweathermap.org/data/2.5/forecast"

// ErrNoForecast is returned when the provider has no forecast entries for the
// requested day, for example because it is too far in the future.
var ErrNoForecast = errors.New("no forecast for day")

// Point White Drive NE on Bainbridge Island.
const (
	PointWhiteLat = 47.5980
	PointWhiteLon = -122.5307
)

// OpenWeather fetches the 5 day, 3 hour OpenWeatherMap forecast.
type OpenWeather struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	limiter  *rate.Limiter
	lat, lon float64
	loc      *time.Location
}

// NewOpenWeather creates a forecast client for the point lat/lon that makes
// at most rps requests per second. Sample times are reported in loc.
func NewOpenWeather(apiKey string, lat, lon float64, loc *time.Location, rps float64) *OpenWeather {
	if loc == nil {
		loc = time.Local
	}
	return &OpenWeather{
		apiKey:  apiKey,
		baseURL: openWeatherURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		lat:     lat,
		lon:     lon,
		loc:     loc,
	}
}

// forecastResponse is the subset of the OpenWeatherMap answer we read.
type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   float64 `json:"deg"`
		} `json:"wind"`
	} `json:"list"`
}

// Forecast returns the forecast entries that fall on date.
func (o *OpenWeather) Forecast(ctx context.Context, date time.Time) (Forecast, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	addr, err := url.Parse(o.baseURL)
	if err != nil {
		return nil, err
	}
	vals := make(url.Values)
	vals.Add("lat", strconv.FormatFloat(o.lat, 'f', 4, 64))
	vals.Add("lon", strconv.FormatFloat(o.lon, 'f', 4, 64))
	vals.Add("appid", o.apiKey)
	vals.Add("units", "imperial")
	addr.RawQuery = vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenWeatherMap returned status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode forecast: %w", err)
	}

	day := date.In(o.loc)
	var result Forecast
	for _, entry := range body.List {
		t := time.Unix(entry.Dt, 0).In(o.loc)
		if !timetricks.SameDay(t, day) {
			continue
		}
		condition := ""
		if len(entry.Weather) > 0 {
			condition = entry.Weather[0].Main
		}
		result = append(result, Sample{
			Time:          t,
			Temperature:   entry.Main.Temp,
			WindSpeed:     entry.Wind.Speed,
			WindDirection: Cardinal(entry.Wind.Deg),
			Condition:     condition,
		})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%s: %w", day.Format("2006-01-02"), ErrNoForecast)
	}
	return result, nil
}
