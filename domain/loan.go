package domain

// LoanInput uses a fractional annual rate (0.045 for 4.5%).
type LoanInput struct {
	LoanAmount         float64 `json:"loanAmount"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
	TermYears          int     `json:"termYears"`
}

type AmortizationRow struct {
	MonthIndex       int     `json:"monthIndex"`
	Payment          float64 `json:"payment"`
	InterestPortion  float64 `json:"interestPortion"`
	PrincipalPortion float64 `json:"principalPortion"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type LoanResult struct {
	MonthlyPayment       float64           `json:"monthlyPayment"`
	TotalInterest        float64           `json:"totalInterest"`
	TotalAmountPaid      float64           `json:"totalAmountPaid"`
	AmortizationSchedule []AmortizationRow `json:"amortizationSchedule"`
}
