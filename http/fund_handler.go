package http

import (
	"net/http"

	"fincalc/domain"
	"fincalc/service"
)

type FundHandler struct {
	service *service.FundService
}

func NewFundHandler(service *service.FundService) *FundHandler {
	return &FundHandler{service: service}
}

// Yield handles POST /fund/yield. Values are returned unrounded.
func (h *FundHandler) Yield(w http.ResponseWriter, r *http.Request) {
	var form domain.FundForm
	if !decodeJSON(w, r, &form) {
		return
	}

	result, err := h.service.ProjectForm(form)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
