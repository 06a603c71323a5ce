package service

import (
	"math"

	"fincalc/domain"
)

// annuityFactor returns F(k) = (1 - (1+i)^(k-n)) / i, the present value of
// one unit paid at the end of each of the n-k remaining periods.
// When 1+i rounds to 1 the factor is its limit n-k.
func annuityFactor(i float64, n, k int) float64 {
	if i == 0 || 1+i == 1 {
		return float64(n - k)
	}
	return (1 - math.Pow(1+i, float64(k-n))) / i
}

// EqualInstallment builds the equal-installment (annuity) schedule: a constant
// payment A whose interest share shrinks as the balance is repaid.
func EqualInstallment(p domain.LoanParameters) (domain.LoanSummary, error) {
	if p.Periods < MinPeriods {
		return domain.LoanSummary{}, ErrInvalidPeriods
	}
	if math.IsNaN(p.PeriodicRate) || p.PeriodicRate <= -1 {
		return domain.LoanSummary{}, ErrUndefinedRate
	}

	n, i := p.Periods, p.PeriodicRate
	a := p.Principal / annuityFactor(i, n, 0)
	if !isFinite(a) {
		return domain.LoanSummary{}, ErrOutOfRange
	}

	schedule := make([]domain.LoanScheduleEntry, 0, n)
	for k := 1; k <= n; k++ {
		remaining := a * annuityFactor(i, n, k)
		interest := i * a * annuityFactor(i, n, k-1)

		schedule = append(schedule, domain.LoanScheduleEntry{
			Period:             k,
			PrincipalDue:       a - interest,
			InterestDue:        interest,
			Payment:            a,
			RemainingPrincipal: remaining,
			RemainingInterest:  float64(n-k)*a - remaining,
		})
	}

	total := a * float64(n)
	summary := domain.LoanSummary{
		Method:        domain.EqualInstallment,
		Payment:       a,
		TotalPayment:  total,
		TotalInterest: total - p.Principal,
		Schedule:      schedule,
	}
	if !finiteSummary(summary) {
		return domain.LoanSummary{}, ErrOutOfRange
	}
	return summary, nil
}

// EqualPrincipal builds the equal-principal schedule: a constant principal P
// plus interest on the outstanding balance, so payments decrease over time.
func EqualPrincipal(p domain.LoanParameters) (domain.LoanSummary, error) {
	if p.Periods < MinPeriods {
		return domain.LoanSummary{}, ErrInvalidPeriods
	}

	n, i, b0 := p.Periods, p.PeriodicRate, p.Principal
	principal := b0 / float64(n)

	schedule := make([]domain.LoanScheduleEntry, 0, n)
	total := 0.0
	for k := 1; k <= n; k++ {
		interest := i * (b0 - float64(k-1)*principal)
		payment := principal + interest
		total += payment

		left := float64(n - k)
		schedule = append(schedule, domain.LoanScheduleEntry{
			Period:             k,
			PrincipalDue:       principal,
			InterestDue:        interest,
			Payment:            payment,
			RemainingPrincipal: b0 - float64(k)*principal,
			RemainingInterest:  i * b0 * left * (left + 1) / (2 * float64(n)),
		})
	}

	summary := domain.LoanSummary{
		Method:             domain.EqualPrincipal,
		PrincipalPerPeriod: principal,
		TotalPayment:       total,
		TotalInterest:      total - b0,
		Schedule:           schedule,
	}
	if !finiteSummary(summary) {
		return domain.LoanSummary{}, ErrOutOfRange
	}
	return summary, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteSummary reports whether every amount in s is a finite number.
func finiteSummary(s domain.LoanSummary) bool {
	if !isFinite(s.Payment) || !isFinite(s.PrincipalPerPeriod) ||
		!isFinite(s.TotalPayment) || !isFinite(s.TotalInterest) {
		return false
	}
	for _, e := range s.Schedule {
		if !isFinite(e.PrincipalDue) || !isFinite(e.InterestDue) || !isFinite(e.Payment) ||
			!isFinite(e.RemainingPrincipal) || !isFinite(e.RemainingInterest) {
			return false
		}
	}
	return true
}

// RoundSummary returns a copy of s with every amount rounded to places
// decimals. The input schedule is not modified.
func RoundSummary(s domain.LoanSummary, places int32) domain.LoanSummary {
	out := s
	out.Payment = roundTo(s.Payment, places)
	out.PrincipalPerPeriod = roundTo(s.PrincipalPerPeriod, places)
	out.TotalPayment = roundTo(s.TotalPayment, places)
	out.TotalInterest = roundTo(s.TotalInterest, places)

	out.Schedule = make([]domain.LoanScheduleEntry, len(s.Schedule))
	for idx, e := range s.Schedule {
		out.Schedule[idx] = domain.LoanScheduleEntry{
			Period:             e.Period,
			PrincipalDue:       roundTo(e.PrincipalDue, places),
			InterestDue:        roundTo(e.InterestDue, places),
			Payment:            roundTo(e.Payment, places),
			RemainingPrincipal: roundTo(e.RemainingPrincipal, places),
			RemainingInterest:  roundTo(e.RemainingInterest, places),
		}
	}
	return out
}
