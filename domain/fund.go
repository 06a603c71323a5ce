package domain

// FundForm holds the raw text fields of a fund projection request.
type FundForm struct {
	Amount string `json:"amount"`
	Term   string `json:"term"`
	Rate   string `json:"rate"`
}

type FundParameters struct {
	InvestmentAmount float64
	Term             int
	AnnualRate       float64 // fraction, 0.03 for 3%
}

type FundYieldResult struct {
	DailyRate                 float64 `json:"daily_rate"`
	DailyReturnPer10000       float64 `json:"daily_return_per_10000"`
	SevenDayAnnualizedPercent float64 `json:"seven_day_annualized_percent"`
	RegularInvestmentReturn   float64 `json:"regular_investment_return"`
}
