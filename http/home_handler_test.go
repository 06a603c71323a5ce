package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fincalc/i18n"
	"fincalc/service"
)

func TestHomeHandler(t *testing.T) {

	tr, err := i18n.New("en")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	handler := NewHomeHandler(service.NewClockService("", "UTC", time.Second), tr)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req = req.WithContext(context.WithValue(req.Context(), usernameKey, "erin"))
	w := httptest.NewRecorder()

	handler.Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp homeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(resp.Title, "Home ") {
		t.Errorf("expected title to start with %q, got %q", "Home ", resp.Title)
	}
	if resp.Username != "erin" {
		t.Errorf("expected username erin, got %q", resp.Username)
	}
}

func TestHealth(t *testing.T) {

	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
