package service

import (
	"math"

	"fincalc/domain"
)

// DailyRate spreads an annual rate evenly over a 365-day year.
func DailyRate(annualRate float64) float64 {
	return annualRate / DaysPerYear
}

// DailyReturnPer10000 is the expected one-day return on amount, expressed per
// 10,000 units.
func DailyReturnPer10000(amount, annualRate float64) float64 {
	return DailyRate(annualRate) * amount / ReturnUnit
}

// SevenDayAnnualizedPercent projects the daily rate held for seven days to an
// annual percentage. It equals annualRate*700 and does not depend on the term.
func SevenDayAnnualizedPercent(annualRate float64) float64 {
	return DailyRate(annualRate) * SevenDayWindow * DaysPerYear * 100
}

// RegularInvestmentReturn splits amount into term equal contributions; the
// j-th contribution (j = 0..term-1) compounds daily for j periods. The result
// is the net gain over amount.
func RegularInvestmentReturn(amount float64, term int, annualRate float64) (float64, error) {
	if term < MinPeriods {
		return 0, ErrInvalidPeriods
	}

	contribution := amount / float64(term)
	growth := 1 + DailyRate(annualRate)

	total := 0.0
	for j := 0; j < term; j++ {
		total += contribution * math.Pow(growth, float64(j))
	}
	return total - amount, nil
}

// ProjectFund computes every fund projection for p in natural units.
// Rounding and display scaling are left to the caller.
func ProjectFund(p domain.FundParameters) (domain.FundYieldResult, error) {
	regular, err := RegularInvestmentReturn(p.InvestmentAmount, p.Term, p.AnnualRate)
	if err != nil {
		return domain.FundYieldResult{}, err
	}

	result := domain.FundYieldResult{
		DailyRate:                 DailyRate(p.AnnualRate),
		DailyReturnPer10000:       DailyReturnPer10000(p.InvestmentAmount, p.AnnualRate),
		SevenDayAnnualizedPercent: SevenDayAnnualizedPercent(p.AnnualRate),
		RegularInvestmentReturn:   regular,
	}
	if !isFinite(result.DailyRate) || !isFinite(result.DailyReturnPer10000) ||
		!isFinite(result.SevenDayAnnualizedPercent) || !isFinite(result.RegularInvestmentReturn) {
		return domain.FundYieldResult{}, ErrOutOfRange
	}
	return result, nil
}
