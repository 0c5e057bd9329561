package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func TestLatencyHandler(t *testing.T) {
	r := mux.NewRouter()
	r.Use(LatencyHandler)
	r.HandleFunc("/api/v1/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", Handler())

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/things/"+id, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusTeapot)
		}
	}
	ObserveFetch("tides", OutcomeOK)
	ObserveRating("optimal")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{
		`kayakdash_request_latency_count{code="418",path="/api/v1/things/{id}",verb="GET"} 2`,
		`kayakdash_provider_fetches_total{outcome="ok",provider="tides"}`,
		`kayakdash_hours_rated_total{rating="optimal"}`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %s", want)
		}
	}
}
