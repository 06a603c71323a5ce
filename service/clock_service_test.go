package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 9, 8, 5, 0, 0, time.UTC), "2024-3-9 8:05"},
		{time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), "2024-12-31 23:59"},
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "2025-1-1 0:00"},
	}
	for _, tt := range tests {
		if got := Stamp(tt.in); got != tt.want {
			t.Errorf("Stamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClockService_UsesNetworkTime(t *testing.T) {
	zones := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zones <- r.URL.Query().Get("timeZone")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"year":2023,"month":7,"day":4,"hour":9,"minute":3,"seconds":12,"timeZone":"UTC"}`))
	}))
	defer srv.Close()

	clock := NewClockService(srv.URL, "UTC", time.Second)
	got := clock.Now(context.Background())

	want := time.Date(2023, 7, 4, 9, 3, 12, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if zone := <-zones; zone != "UTC" {
		t.Errorf("timeZone query: got %q, want %q", zone, "UTC")
	}
	if title := clock.Title(context.Background(), "Home"); title != "Home 2023-7-4 9:03" {
		t.Errorf("title: got %q", title)
	}
}

func TestClockService_FallsBackToLocalClock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	fixed := time.Date(2022, 2, 2, 22, 22, 0, 0, time.UTC)
	clock := NewClockService(srv.URL, "UTC", time.Second)
	clock.now = func() time.Time { return fixed }

	if got := clock.Now(context.Background()); !got.Equal(fixed) {
		t.Errorf("got %v, want %v", got, fixed)
	}
}

func TestClockService_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hour":1}`))
	}))
	defer srv.Close()

	clock := NewClockService(srv.URL, "UTC", time.Second)
	if _, err := clock.fetch(context.Background()); err == nil {
		t.Error("expected error for incomplete payload")
	}
}

func TestClockService_Disabled(t *testing.T) {
	fixed := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := NewClockService("", "UTC", time.Second)
	clock.now = func() time.Time { return fixed }

	if got := clock.Now(context.Background()); !got.Equal(fixed) {
		t.Errorf("got %v, want %v", got, fixed)
	}
}
