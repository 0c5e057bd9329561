// Package handlers serves launch recommendations over HTTP.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"

	"github.com/spencer-p/kayakdash/pkg/cache"
	"github.com/spencer-p/kayakdash/pkg/meta"
	"github.com/spencer-p/kayakdash/pkg/timetricks"
	"github.com/spencer-p/kayakdash/pkg/visualize"
)

const (
	dateFmt = "2006-01-02"

	// cache for slightly less than one day so daily clients don't see stale
	// data
	defaultCacheTTL = 23 * time.Hour
)

// Analyzer rates days of conditions.
type Analyzer interface {
	Analyze(ctx context.Context, date time.Time, opts meta.Options) meta.Day
	Week(ctx context.Context, start time.Time, days int, opts meta.Options) ([]meta.Day, error)
}

// OptionsSource provides the active scoring options.
type OptionsSource interface {
	Options() meta.Options
}

type Config struct {
	CacheTTL time.Duration
	// Location dates are interpreted in.
	Location *time.Location

	SessionKey    string
	EncryptionKey string
	SecureCookies bool
}

// Server holds the state shared by every handler.
type Server struct {
	analyzer Analyzer
	options  OptionsSource
	loc      *time.Location
	cache    *cache.Timed
	store    sessions.Store
	now      func() time.Time
}

func NewServer(a Analyzer, opts OptionsSource, cfg Config) *Server {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Server{
		analyzer: a,
		options:  opts,
		loc:      cfg.Location,
		cache:    cache.NewTimed(cfg.CacheTTL),
		store:    newStore(cfg.SessionKey, cfg.EncryptionKey, cfg.SecureCookies),
		now:      time.Now,
	}
}

// Purge forgets cached responses, for instance after the options change.
func (s *Server) Purge() {
	s.cache.Purge()
}

func Register(r *mux.Router, s *Server) {
	r.Handle("/", s.makeServerSideIndex()).Methods(http.MethodGet)
	r.Handle("/api/v1/recommendations", s.makeCached(s.serveRecommendations)).Methods(http.MethodGet)
	r.Handle("/api/v1/windows", s.makeCached(s.serveWindows)).Methods(http.MethodGet)
	r.Handle("/api/v1/week", s.makeCached(s.serveWeek)).Methods(http.MethodGet)
	r.Handle("/api/v1/day.svg", s.makeCached(s.serveDayStrip)).Methods(http.MethodGet)
}

// statusError carries the HTTP status a failure should be reported with.
type statusError struct {
	code int
	err  error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return &statusError{code: http.StatusBadRequest, err: err}
}

func statusOf(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.code
	}
	return http.StatusInternalServerError
}

// response collects a rendered body.
type response struct {
	bytes.Buffer
	// incomplete marks output built while a provider was down. It is served
	// but not cached, so the next request tries the providers again.
	incomplete bool
}

// renderFunc writes a response body and returns its content type.
type renderFunc func(w *response, r *http.Request, opts meta.Options) (string, error)

// makeCached serves render's output from memory when the same request was
// rendered recently.
func (s *Server) makeCached(render renderFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// cache based on method and URL, which should encapsulate the query,
		// plus the current day for queries that default to today
		key := fmt.Sprintf("%s %s %s", r.Method, r.URL, s.today().Format(dateFmt))

		// serve cache version from memory if possible
		if cached, ok := s.cache.Get(key); ok {
			contentType, body, _ := bytes.Cut(cached, []byte("\n"))
			w.Header().Set("Content-Type", string(contentType))
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}

		var body response
		contentType, err := render(&body, r, s.options.Options())
		if err != nil {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(statusOf(err))
			fmt.Fprintf(w, "Failed to get data: %v", err)
			log.Printf("Failed to serve %s: %v", r.URL, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(body.Bytes())

		if body.incomplete {
			log.Printf("Not caching %s, some data was missing", r.URL)
			return
		}
		s.cache.Set(key, append([]byte(contentType+"\n"), body.Bytes()...))
	})
}

func (s *Server) today() time.Time {
	return timetricks.TrimClock(s.now().In(s.loc))
}

// date reads a YYYY-MM-DD form value, defaulting to today.
func (s *Server) date(r *http.Request, key string) (time.Time, error) {
	v := r.FormValue(key)
	if v == "" {
		return s.today(), nil
	}
	t, err := time.ParseInLocation(dateFmt, v, s.loc)
	if err != nil {
		return time.Time{}, badRequest(fmt.Errorf("bad %s %q, want YYYY-MM-DD", key, v))
	}
	return t, nil
}

func wantJSON(r *http.Request) bool {
	return r.FormValue("o") == "json"
}

func encodeJSON(w io.Writer, v any) (string, error) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return "", fmt.Errorf("encode JSON result: %w", err)
	}
	return "application/json", nil
}

func (s *Server) serveRecommendations(w *response, r *http.Request, opts meta.Options) (string, error) {
	date, err := s.date(r, "date")
	if err != nil {
		return "", err
	}
	d := s.analyzer.Analyze(r.Context(), date, opts)
	w.incomplete = len(d.Recommendations) == 0
	if wantJSON(r) {
		return encodeJSON(w, d.Recommendations)
	}
	if len(d.Recommendations) == 0 {
		fmt.Fprintf(w, "No recommendations for %s\n", date.Format(dateFmt))
	}
	for _, rec := range d.Recommendations {
		fmt.Fprintf(w, "%s\n", rec.String())
	}
	return "text/plain", nil
}

func (s *Server) serveWindows(w *response, r *http.Request, opts meta.Options) (string, error) {
	date, err := s.date(r, "date")
	if err != nil {
		return "", err
	}
	d := s.analyzer.Analyze(r.Context(), date, opts)
	w.incomplete = len(d.Recommendations) == 0
	if wantJSON(r) {
		return encodeJSON(w, d.Windows)
	}
	for i := range d.Windows {
		fmt.Fprintf(w, "%s\n", d.Windows[i].String())
	}
	return "text/plain", nil
}

func (s *Server) serveWeek(w *response, r *http.Request, opts meta.Options) (string, error) {
	start, err := s.date(r, "start")
	if err != nil {
		return "", err
	}
	days, err := s.analyzer.Week(r.Context(), start, timetricks.DaysPerWeek, opts)
	if err != nil {
		return "", err
	}
	for _, d := range days {
		if len(d.Recommendations) == 0 {
			w.incomplete = true
		}
	}
	if wantJSON(r) {
		return encodeJSON(w, days)
	}
	for _, d := range days {
		best := "none"
		if d.Summary.Best != nil {
			best = d.Summary.Best.StartTime
		}
		fmt.Fprintf(w, "%s: %d optimal, %d acceptable, %d not recommended, best hour %s\n",
			d.Date.Format(dateFmt),
			d.Summary.Optimal, d.Summary.Acceptable, d.Summary.NotRecommended,
			best)
	}
	return "text/plain", nil
}

func (s *Server) serveDayStrip(w *response, r *http.Request, opts meta.Options) (string, error) {
	date, err := s.date(r, "date")
	if err != nil {
		return "", err
	}
	d := s.analyzer.Analyze(r.Context(), date, opts)
	if _, err := visualize.NewDayStrip(d, opts).Encode(w); errors.Is(err, visualize.ErrNoRecommendations) {
		return "", &statusError{code: http.StatusNotFound, err: fmt.Errorf("%s: %w", date.Format(dateFmt), err)}
	} else if err != nil {
		return "", err
	}
	return "image/svg+xml", nil
}
