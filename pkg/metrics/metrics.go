package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const subsystem = "kayakdash"

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: subsystem,
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"verb", "path", "code"},
	)

	providerFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "provider_fetches_total",
			Subsystem: subsystem,
			Help:      "Data provider fetches by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	hoursRated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "hours_rated_total",
			Subsystem: subsystem,
			Help:      "Hourly launch recommendations computed, by rating.",
		},
		[]string{"rating"},
	)
)

// Provider fetch outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		providerFetches,
		hoursRated,
	)
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

// ObserveFetch counts one fetch from a data provider.
func ObserveFetch(provider, outcome string) {
	providerFetches.With(prometheus.Labels{
		"provider": provider,
		"outcome":  outcome,
	}).Inc()
}

// ObserveRating counts one rated hour.
func ObserveRating(rating string) {
	hoursRated.With(prometheus.Labels{"rating": rating}).Inc()
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// routeTemplate keeps path labels bounded by using the matched mux route.
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tmpl
}

// LatencyHandler records request latency. Use it as mux middleware so the
// matched route is known.
func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := ""
		if route := routeTemplate(r); route != "" {
			path = route
		} else if r.URL != nil {
			path = r.URL.Path
		}
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		// Defer metric observing. Any panics in next are reported as 500 errors
		// and then re-thrown.
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, strconv.Itoa(rec.code), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}
