package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fincalc/logging"
)

// timeAPIResponse is the subset of the timeapi.io payload we read.
type timeAPIResponse struct {
	Year    int `json:"year"`
	Month   int `json:"month"`
	Day     int `json:"day"`
	Hour    int `json:"hour"`
	Minute  int `json:"minute"`
	Seconds int `json:"seconds"`
}

// ClockService reads the current time from a network time service and falls
// back to the local clock when the service cannot be reached.
type ClockService struct {
	apiURL     string
	zone       string
	loc        *time.Location
	httpClient *http.Client
	now        func() time.Time
}

// NewClockService creates a ClockService. An empty apiURL disables the
// network lookup.
func NewClockService(apiURL, zone string, timeout time.Duration) *ClockService {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		logging.Warnf("unknown time zone %q, using local time: %v", zone, err)
		loc = time.Local
	}
	return &ClockService{
		apiURL: apiURL,
		zone:   zone,
		loc:    loc,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		now: time.Now,
	}
}

// Now returns the network time, or the local time in the configured zone if
// the lookup fails.
func (s *ClockService) Now(ctx context.Context) time.Time {
	if s.apiURL != "" {
		t, err := s.fetch(ctx)
		if err == nil {
			return t
		}
		logging.Warnf("network time lookup failed, using local clock: %v", err)
	}
	return s.now().In(s.loc)
}

// Title joins label and the current time stamp, e.g. "Home 2024-3-9 8:05".
func (s *ClockService) Title(ctx context.Context, label string) string {
	return label + " " + Stamp(s.Now(ctx))
}

func (s *ClockService) fetch(ctx context.Context) (time.Time, error) {
	endpoint, err := url.Parse(s.apiURL)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time service url: %w", err)
	}
	q := endpoint.Query()
	q.Set("timeZone", s.zone)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return time.Time{}, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return time.Time{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("time service returned %d", resp.StatusCode)
	}

	var body timeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return time.Time{}, fmt.Errorf("failed to decode time service response: %w", err)
	}
	if body.Year == 0 || body.Month == 0 || body.Day == 0 {
		return time.Time{}, fmt.Errorf("incomplete time service response")
	}

	return time.Date(body.Year, time.Month(body.Month), body.Day,
		body.Hour, body.Minute, body.Seconds, 0, s.loc), nil
}

// Stamp formats t as Y-M-D H:MM; only the minute is zero padded.
func Stamp(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d %d:%02d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
