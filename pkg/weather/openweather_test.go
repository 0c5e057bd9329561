package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOpenWeatherForecast(t *testing.T) {
	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("appid") != "secret" || q.Get("units") != "imperial" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		fmt.Fprintf(w, `{"list":[
			{"dt":%d,"main":{"temp":58.1},"weather":[{"main":"Clouds"}],"wind":{"speed":6.2,"deg":315}},
			{"dt":%d,"main":{"temp":61.0},"weather":[{"main":"Clear"}],"wind":{"speed":9.0,"deg":180}},
			{"dt":%d,"main":{"temp":50.0},"weather":[],"wind":{"speed":3.0,"deg":0}}
		]}`,
			day.Add(9*time.Hour).Unix(),
			day.Add(12*time.Hour).Unix(),
			day.Add(27*time.Hour).Unix())
	}))
	defer server.Close()

	o := NewOpenWeather("secret", PointWhiteLat, PointWhiteLon, time.UTC, 100)
	o.baseURL = server.URL

	f, err := o.Forecast(context.Background(), day)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}
	if len(f) != 2 {
		t.Fatalf("got %d samples, want the 2 on the day", len(f))
	}
	if f[0].WindDirection != "NW" || f[0].Condition != "Clouds" || f[0].WindSpeed != 6.2 {
		t.Errorf("first sample = %s", f[0])
	}
	if f[1].Time.Hour() != 12 {
		t.Errorf("second sample hour = %d, want 12", f[1].Time.Hour())
	}

	if _, err := o.Forecast(context.Background(), day.AddDate(0, 0, 5)); !errors.Is(err, ErrNoForecast) {
		t.Errorf("Forecast() for an uncovered day error = %v, want ErrNoForecast", err)
	}
}

func TestOpenWeatherStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	o := NewOpenWeather("bad", PointWhiteLat, PointWhiteLon, time.UTC, 100)
	o.baseURL = server.URL
	if _, err := o.Forecast(context.Background(), time.Now()); err == nil {
		t.Errorf("Forecast() succeeded on a 401")
	}
}
