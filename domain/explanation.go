package domain

import (
	"fmt"
	"strings"
)

type CalculationType string

const (
	CalculationRetirement CalculationType = "retirement"
	CalculationLoan       CalculationType = "loan"
	CalculationEPFRIA     CalculationType = "epf-ria"
)

func ParseCalculationType(raw string) (CalculationType, error) {
	switch t := CalculationType(strings.TrimSpace(raw)); t {
	case CalculationRetirement, CalculationLoan, CalculationEPFRIA:
		return t, nil
	}
	return "", &InvalidInputError{
		Field:  "calculationType",
		Reason: fmt.Sprintf("must be one of retirement, loan, epf-ria (got %q)", raw),
	}
}

// RetirementSummary is what the explanation service gets for a retirement
// calculation: the inputs alongside the computed figures.
type RetirementSummary struct {
	RetirementInput
	RetirementResult
}

type LoanSummary struct {
	LoanInput
	MonthlyPayment  float64 `json:"monthlyPayment"`
	TotalInterest   float64 `json:"totalInterest"`
	TotalAmountPaid float64 `json:"totalAmountPaid"`
}

type EPFRIASummary struct {
	EPFRIAInput
	EPFRIAResult
}

// ExplanationRequest carries exactly one summary, matching Type.
type ExplanationRequest struct {
	Type       CalculationType
	Retirement *RetirementSummary
	Loan       *LoanSummary
	EPFRIA     *EPFRIASummary
}

// Validate checks that the summary matching Type is present.
func (r ExplanationRequest) Validate() error {
	var present bool
	switch r.Type {
	case CalculationRetirement:
		present = r.Retirement != nil
	case CalculationLoan:
		present = r.Loan != nil
	case CalculationEPFRIA:
		present = r.EPFRIA != nil
	default:
		_, err := ParseCalculationType(string(r.Type))
		return err
	}
	if !present {
		return &InvalidInputError{Field: "data", Reason: "is required"}
	}
	if r.Type == CalculationEPFRIA && !r.EPFRIA.TargetTier.IsTarget() {
		return &InvalidInputError{Field: "data.targetTier", Reason: "must be one of basic, adequate, enhanced"}
	}
	return nil
}

type ExplanationSource string

const (
	SourceAI     ExplanationSource = "ai"
	SourceStatic ExplanationSource = "static"
)

// Explanation is an HTML fragment describing a result.
type Explanation struct {
	Content string            `json:"explanation"`
	Source  ExplanationSource `json:"source"`
}
