// Package report renders calculation results as localized plain text.
package report

import (
	"strconv"
	"strings"

	"fincalc/domain"
	"fincalc/i18n"
)

// LoanPlan renders a repayment plan: heading, totals, the constant
// installment or principal, then one line per period.
func LoanPlan(tr *i18n.Translator, s domain.LoanSummary, places int) string {
	num := func(v float64) map[string]any {
		return map[string]any{"Value": format(v, places)}
	}

	var b strings.Builder
	switch s.Method {
	case domain.EqualPrincipal:
		b.WriteString(tr.T("plan_equal_principal", nil))
	default:
		b.WriteString(tr.T("plan_equal_installment", nil))
	}
	b.WriteByte('\n')

	lines := []string{
		tr.T("plan_total_payment", num(s.TotalPayment)),
		tr.T("plan_total_interest", num(s.TotalInterest)),
	}
	if s.Method == domain.EqualPrincipal {
		lines = append(lines, tr.T("plan_principal_per_period", num(s.PrincipalPerPeriod)))
	} else {
		lines = append(lines, tr.T("plan_installment", num(s.Payment)))
	}

	for _, e := range s.Schedule {
		lines = append(lines, tr.T("plan_entry", map[string]any{
			"Period":             e.Period,
			"Principal":          format(e.PrincipalDue, places),
			"Interest":           format(e.InterestDue, places),
			"RemainingPrincipal": format(e.RemainingPrincipal, places),
			"RemainingInterest":  format(e.RemainingInterest, places),
		}))
	}

	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// FundYield renders the three fund projections in their natural units.
func FundYield(tr *i18n.Translator, r domain.FundYieldResult, places int) string {
	return strings.Join([]string{
		tr.T("fund_daily_return", map[string]any{"Value": format(r.DailyReturnPer10000, places)}),
		tr.T("fund_seven_day", map[string]any{"Value": format(r.SevenDayAnnualizedPercent, places)}),
		tr.T("fund_regular", map[string]any{"Value": format(r.RegularInvestmentReturn, places)}),
	}, "\n")
}

func format(v float64, places int) string {
	s := strconv.FormatFloat(v, 'f', places, 64)
	// avoid printing "-0.0000" for values that round to zero
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}
