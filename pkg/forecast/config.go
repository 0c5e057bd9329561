package forecast

import (
	"github.com/spencer-p/kayakdash/pkg/ferry"
	"github.com/spencer-p/kayakdash/pkg/noaa"
	"github.com/spencer-p/kayakdash/pkg/sunset"
	"github.com/spencer-p/kayakdash/pkg/weather"
)

// Config selects the providers behind a Fetcher. It is read from the
// environment with envconfig.
type Config struct {
	TideStation    string  `envconfig:"TIDE_STATION" default:"9447130"`
	TideInterval   string  `envconfig:"TIDE_INTERVAL" default:"h"`
	CurrentStation string  `envconfig:"CURRENT_STATION" default:"PCT1641_17"`
	NOAARPS        float64 `envconfig:"NOAA_RPS" default:"2"`

	// Without an API key the forecast is synthetic.
	OpenWeatherAPIKey string  `envconfig:"OPENWEATHER_API_KEY"`
	WeatherRPS        float64 `envconfig:"WEATHER_RPS" default:"1"`
}

// New wires the public providers for place.
func New(cfg Config, place sunset.Place) *Fetcher {
	tides := noaa.NewClient(cfg.NOAARPS)
	tides.TideStation = cfg.TideStation
	tides.CurrentStation = cfg.CurrentStation
	tides.TideInterval = cfg.TideInterval
	tides.Location = place.Location

	f := &Fetcher{
		Tides:    tides,
		Currents: tides,
		Ferries:  ferry.Timetable{},
		HiLo:     cfg.TideInterval == noaa.IntervalHiLo,
		Place:    place,
	}
	if cfg.OpenWeatherAPIKey != "" {
		f.Weather = weather.NewOpenWeather(cfg.OpenWeatherAPIKey, place.Lat, place.Long, place.Location, cfg.WeatherRPS)
	}
	return f
}
