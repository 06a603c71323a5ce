package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fincalc/domain"
)

// ParseLoanForm converts the raw loan fields into LoanParameters.
// Only type conformance is checked: a zero or negative principal is accepted.
func ParseLoanForm(form domain.LoanForm) (domain.LoanParameters, error) {
	principal, ok := parseReal(form.Amount)
	if !ok {
		return domain.LoanParameters{}, ErrInvalidInput
	}
	periods, ok := parseInt(form.Periods)
	if !ok {
		return domain.LoanParameters{}, ErrInvalidInput
	}
	rate, ok := parseReal(form.Rate)
	if !ok {
		return domain.LoanParameters{}, ErrInvalidInput
	}

	return domain.LoanParameters{
		Principal:    principal,
		Periods:      periods,
		PeriodicRate: rate,
	}, nil
}

// ParseFundForm converts the raw fund fields into FundParameters.
// The term is a count of periods, so "7.5" is rejected like any other
// non-integer text.
func ParseFundForm(form domain.FundForm) (domain.FundParameters, error) {
	amount, ok := parseReal(form.Amount)
	if !ok {
		return domain.FundParameters{}, ErrInvalidInput
	}
	term, ok := parseInt(form.Term)
	if !ok {
		return domain.FundParameters{}, ErrInvalidInput
	}
	rate, ok := parseReal(form.Rate)
	if !ok {
		return domain.FundParameters{}, ErrInvalidInput
	}

	return domain.FundParameters{
		InvestmentAmount: amount,
		Term:             term,
		AnnualRate:       rate,
	}, nil
}

func parseReal(raw string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	// "1e400" parses as a decimal but has no float64 value.
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
