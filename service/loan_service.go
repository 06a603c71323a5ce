package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"fincalc/domain"
	"fincalc/logging"
	"fincalc/repository"
)

// roundTo redondea value a places decimales (mitad hacia afuera de cero).
func roundTo(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

type LoanService struct {
	cache repository.CacheRepository
	ttl   time.Duration
}

// NewLoanService creates a new LoanService. cache may be nil, in which case
// every request is computed.
func NewLoanService(cache repository.CacheRepository, ttl time.Duration) *LoanService {
	return &LoanService{cache: cache, ttl: ttl}
}

// CalculateLoanForm validates the raw fields and calculates the schedule.
func (s *LoanService) CalculateLoanForm(
	method domain.RepaymentMethod,
	form domain.LoanForm,
) (domain.LoanSummary, error) {
	params, err := ParseLoanForm(form)
	if err != nil {
		return domain.LoanSummary{}, err
	}
	return s.CalculateLoan(method, params)
}

// CalculateLoan builds the repayment schedule for method and returns it
// rounded to ReportDecimals.
func (s *LoanService) CalculateLoan(
	method domain.RepaymentMethod,
	params domain.LoanParameters,
) (domain.LoanSummary, error) {
	if params.Periods > MaxPeriods {
		return domain.LoanSummary{}, fmt.Errorf("%w: at most %d", ErrTooManyPeriods, MaxPeriods)
	}

	key := loanCacheKey(method, params)
	if summary, ok := s.cached(key); ok {
		return summary, nil
	}

	var (
		summary domain.LoanSummary
		err     error
	)
	switch method {
	case domain.EqualInstallment:
		summary, err = EqualInstallment(params)
	case domain.EqualPrincipal:
		summary, err = EqualPrincipal(params)
	default:
		return domain.LoanSummary{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if err != nil {
		return domain.LoanSummary{}, err
	}

	result := RoundSummary(summary, ReportDecimals)

	// Guardar en caché (no crítico si falla)
	s.store(key, result)

	return result, nil
}

func (s *LoanService) cached(key string) (domain.LoanSummary, bool) {
	if s.cache == nil {
		return domain.LoanSummary{}, false
	}
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.LoanSummary{}, false
	}
	var summary domain.LoanSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		logging.Warnf("discarding unreadable cached schedule %s: %v", key, err)
		return domain.LoanSummary{}, false
	}
	return summary, true
}

func (s *LoanService) store(key string, summary domain.LoanSummary) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		logging.Warnf("failed to encode schedule for cache: %v", err)
		return
	}
	if err := s.cache.Set(key, string(data), s.ttl); err != nil {
		logging.Warnf("failed to cache loan schedule: %v", err)
	}
}

func loanCacheKey(method domain.RepaymentMethod, p domain.LoanParameters) string {
	return loanCacheKeyPrefix + string(method) + ":" +
		formatFloat(p.Principal) + ":" +
		strconv.Itoa(p.Periods) + ":" +
		formatFloat(p.PeriodicRate)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
