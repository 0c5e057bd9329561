package noaa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrNoPredictions is returned when NOAA answers but has no predictions for
// the station and window.
var ErrNoPredictions = errors.New("no predictions")

const (
	defaultRetries = 3
	defaultBackoff = 1 * time.Second
	defaultTimeout = 30 * time.Second
)

// Client fetches predictions from NOAA CO-OPS. Requests are paced by a rate
// limiter and failed requests are retried with exponential backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retries    int
	backoff    time.Duration

	// TideStation and CurrentStation are used by Tides and Currents.
	TideStation    string
	CurrentStation string
	// TideInterval is IntervalHourly or IntervalHiLo.
	TideInterval string
	// Location anchors the station's local wall clock times.
	Location *time.Location
}

// NewClient creates a client for the Point White stations that makes at most
// rps requests per second.
func NewClient(rps float64) *Client {
	return &Client{
		baseURL: NOAA_URL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(rps), 1),
		retries:        defaultRetries,
		backoff:        defaultBackoff,
		TideStation:    Seattle,
		CurrentStation: RichPassage,
		TideInterval:   IntervalHourly,
		Location:       time.Local,
	}
}

// Tides returns the tide predictions covering date. Hourly stations return
// the day itself; hi/lo queries are padded by a day on each side so the day
// can be interpolated end to end.
func (c *Client) Tides(ctx context.Context, date time.Time) (Predictions, error) {
	q := PredictionQuery{
		Start:    date,
		Station:  c.TideStation,
		Product:  ProductPredictions,
		Interval: c.TideInterval,
	}
	if c.TideInterval == IntervalHiLo {
		q.Start = date.AddDate(0, 0, -1)
		q.Duration = 2 * 24 * time.Hour
	}
	preds, err := c.GetPredictions(ctx, &q)
	if err != nil {
		return nil, err
	}
	return preds.In(c.location()), nil
}

// Currents returns the hourly current predictions for date.
func (c *Client) Currents(ctx context.Context, date time.Time) (Currents, error) {
	q := PredictionQuery{
		Start:    date,
		Station:  c.CurrentStation,
		Product:  ProductCurrents,
		Interval: IntervalHourly,
	}
	cs, err := c.GetCurrents(ctx, &q)
	if err != nil {
		return nil, err
	}
	return cs.In(c.location()), nil
}

func (c *Client) GetPredictions(ctx context.Context, q *PredictionQuery) (Predictions, error) {
	var result NOAAResult
	if err := c.get(ctx, q, &result); err != nil {
		return nil, err
	}
	if len(result.Predictions) == 0 {
		return nil, noPredictions(q, result.Error)
	}
	return result.Predictions, nil
}

func (c *Client) GetCurrents(ctx context.Context, q *PredictionQuery) (Currents, error) {
	var result currentsResult
	if err := c.get(ctx, q, &result); err != nil {
		return nil, err
	}
	if result.CurrentPredictions == nil || len(result.CurrentPredictions.CP) == 0 {
		return nil, noPredictions(q, result.Error)
	}
	cs := make(Currents, len(result.CurrentPredictions.CP))
	for i, raw := range result.CurrentPredictions.CP {
		cs[i] = raw.current()
	}
	return cs, nil
}

func noPredictions(q *PredictionQuery, apiErr *apiError) error {
	if apiErr != nil && apiErr.Message != "" {
		return fmt.Errorf("%s at station %s: %w: %s", q.product(), q.Station, ErrNoPredictions, apiErr.Message)
	}
	return fmt.Errorf("%s at station %s: %w", q.product(), q.Station, ErrNoPredictions)
}

// get performs the query and decodes the response into out, retrying
// transport failures and non-200 answers.
func (c *Client) get(ctx context.Context, q *PredictionQuery, out any) error {
	addr := q.url(c.baseURL).String()
	delay := c.backoff

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			log.Printf("Retrying %s at station %s in %s: %v", q.product(), q.Station, delay, lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait canceled: %w", err)
		}

		retry, err := c.do(ctx, addr, out)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("failed to fetch %s after %d attempts: %w", q.product(), c.retries, lastErr)
}

func (c *Client) do(ctx context.Context, addr string, out any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("failed to fetch from NOAA: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return true, fmt.Errorf("NOAA returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode NOAA response: %w", err)
	}
	return false, nil
}

func (c *Client) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}
