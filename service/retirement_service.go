package service

import (
	"fincon/domain"
)

// CalculateRetirement projects the corpus needed at retirement and the
// monthly saving that reaches it.
func CalculateRetirement(input domain.RetirementInput) (domain.RetirementResult, error) {
	if err := validateRetirement(input); err != nil {
		return domain.RetirementResult{}, err
	}

	years := input.RetirementAge - input.CurrentAge
	months := years * MonthsPerYear

	futureExpenses := input.MonthlyExpenses * growthFactor(input.InflationRate, years)
	corpus := futureExpenses * MonthsPerYear * CorpusMultiple
	savings := paymentForFutureValue(corpus, input.ExpectedReturn/MonthsPerYear, months)

	// Only a very long horizon can push these past float64.
	if err := requireFiniteResult("retirementAge", futureExpenses, corpus, savings); err != nil {
		return domain.RetirementResult{}, err
	}

	return domain.RetirementResult{
		YearsToRetirement:      years,
		FutureMonthlyExpenses:  futureExpenses,
		CorpusNeeded:           corpus,
		MonthlySavingsRequired: savings,
	}, nil
}

func validateRetirement(input domain.RetirementInput) error {
	if input.CurrentAge <= 0 {
		return &domain.InvalidInputError{Field: "currentAge", Reason: "must be greater than 0"}
	}
	if input.RetirementAge <= 0 {
		return &domain.InvalidInputError{Field: "retirementAge", Reason: "must be greater than 0"}
	}
	if input.CurrentAge >= input.RetirementAge {
		return &domain.InvalidInputError{Field: "retirementAge", Reason: "must be higher than currentAge"}
	}
	if err := requireFinite("monthlyExpenses", input.MonthlyExpenses); err != nil {
		return err
	}
	if input.MonthlyExpenses <= 0 {
		return &domain.InvalidInputError{Field: "monthlyExpenses", Reason: "must be greater than 0"}
	}
	if err := requireFinite("inflationRate", input.InflationRate); err != nil {
		return err
	}
	if input.InflationRate < 0 {
		return &domain.InvalidInputError{Field: "inflationRate", Reason: "must not be negative"}
	}
	if err := requireFinite("expectedReturn", input.ExpectedReturn); err != nil {
		return err
	}
	if input.ExpectedReturn < 0 {
		return &domain.InvalidInputError{Field: "expectedReturn", Reason: "must not be negative"}
	}
	return nil
}
