package http

import (
	"net/http"

	"fincalc/domain"
	"fincalc/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// EqualInstallment handles POST /loan/equal-installment.
func (h *LoanHandler) EqualInstallment(w http.ResponseWriter, r *http.Request) {
	h.calculate(w, r, domain.EqualInstallment)
}

// EqualPrincipal handles POST /loan/equal-principal.
func (h *LoanHandler) EqualPrincipal(w http.ResponseWriter, r *http.Request) {
	h.calculate(w, r, domain.EqualPrincipal)
}

func (h *LoanHandler) calculate(w http.ResponseWriter, r *http.Request, method domain.RepaymentMethod) {
	var form domain.LoanForm
	if !decodeJSON(w, r, &form) {
		return
	}

	result, err := h.service.CalculateLoanForm(method, form)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
