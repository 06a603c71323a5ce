package domain

// RepaymentMethod selects how a loan is amortized.
type RepaymentMethod string

const (
	EqualInstallment RepaymentMethod = "equal_installment"
	EqualPrincipal   RepaymentMethod = "equal_principal"
)

// LoanForm holds the raw text fields of a loan calculation request.
type LoanForm struct {
	Amount  string `json:"amount"`
	Periods string `json:"periods"`
	Rate    string `json:"rate"`
}

// LoanParameters is the validated input of both loan schedules.
// PeriodicRate is a fraction applied once per period (0.01 for 1%).
type LoanParameters struct {
	Principal    float64
	Periods      int
	PeriodicRate float64
}

type LoanScheduleEntry struct {
	Period             int     `json:"period"`
	PrincipalDue       float64 `json:"principal_due"`
	InterestDue        float64 `json:"interest_due"`
	Payment            float64 `json:"payment"`
	RemainingPrincipal float64 `json:"remaining_principal"`
	RemainingInterest  float64 `json:"remaining_interest"`
}

type LoanSummary struct {
	Method RepaymentMethod `json:"method"`
	// Payment is the constant installment A of an equal-installment plan.
	Payment float64 `json:"payment,omitempty"`
	// PrincipalPerPeriod is the constant principal P of an equal-principal plan.
	PrincipalPerPeriod float64             `json:"principal_per_period,omitempty"`
	TotalPayment       float64             `json:"total_payment"`
	TotalInterest      float64             `json:"total_interest"`
	Schedule           []LoanScheduleEntry `json:"schedule"`
}
