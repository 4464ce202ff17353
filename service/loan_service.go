package service

import (
	"fincon/domain"
)

// CalculateLoan computes the level monthly payment for an amortizing loan and
// the first ScheduleWindowMonths rows of its schedule.
func CalculateLoan(input domain.LoanInput) (domain.LoanResult, error) {
	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, err
	}

	monthlyRate := input.AnnualInterestRate / MonthsPerYear
	totalPayments := input.TermYears * MonthsPerYear

	payment := amortizedPayment(input.LoanAmount, monthlyRate, totalPayments)
	total := payment * float64(totalPayments)
	schedule := BuildAmortizationSchedule(
		input.LoanAmount, monthlyRate, payment, min(ScheduleWindowMonths, totalPayments),
	)

	if err := requireFiniteResult("loanAmount", payment, total, total-input.LoanAmount); err != nil {
		return domain.LoanResult{}, err
	}
	for _, row := range schedule {
		if err := requireFiniteResult("loanAmount", row.InterestPortion, row.PrincipalPortion, row.RemainingBalance); err != nil {
			return domain.LoanResult{}, err
		}
	}

	return domain.LoanResult{
		MonthlyPayment:       payment,
		TotalInterest:        total - input.LoanAmount,
		TotalAmountPaid:      total,
		AmortizationSchedule: schedule,
	}, nil
}

// BuildAmortizationSchedule runs the balance forward month by month from the
// full principal, returning one row per month.
func BuildAmortizationSchedule(principal, monthlyRate, payment float64, months int) []domain.AmortizationRow {
	rows := make([]domain.AmortizationRow, 0, max(months, 0))
	balance := principal
	for month := 1; month <= months; month++ {
		interest := balance * monthlyRate
		principalPaid := payment - interest
		balance -= principalPaid

		rows = append(rows, domain.AmortizationRow{
			MonthIndex:       month,
			Payment:          payment,
			InterestPortion:  interest,
			PrincipalPortion: principalPaid,
			RemainingBalance: balance,
		})
	}
	return rows
}

func validateLoan(input domain.LoanInput) error {
	if err := requireFinite("loanAmount", input.LoanAmount); err != nil {
		return err
	}
	if input.LoanAmount <= 0 {
		return &domain.InvalidInputError{Field: "loanAmount", Reason: "must be greater than 0"}
	}
	if err := requireFinite("annualInterestRate", input.AnnualInterestRate); err != nil {
		return err
	}
	if input.AnnualInterestRate < 0 {
		return &domain.InvalidInputError{Field: "annualInterestRate", Reason: "must not be negative"}
	}
	if input.TermYears <= 0 {
		return &domain.InvalidInputError{Field: "termYears", Reason: "must be greater than 0"}
	}
	return nil
}
