package http

import (
	"net/http"

	"fincalc/i18n"
	"fincalc/service"
)

type HomeHandler struct {
	clock *service.ClockService
	tr    *i18n.Translator
}

func NewHomeHandler(clock *service.ClockService, tr *i18n.Translator) *HomeHandler {
	return &HomeHandler{clock: clock, tr: tr}
}

type homeResponse struct {
	Title    string `json:"title"`
	Username string `json:"username,omitempty"`
}

// Home handles GET /home: the localized title stamped with the current time.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	username, _ := UsernameFromContext(r.Context())
	writeJSON(w, http.StatusOK, homeResponse{
		Title:    h.clock.Title(r.Context(), h.tr.T("home_title", nil)),
		Username: username,
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
