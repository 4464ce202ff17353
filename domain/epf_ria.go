package domain

import (
	"fmt"
	"strings"
)

// Tier is an EPF Retirement Income Adequacy savings level.
type Tier string

const (
	TierBelowBasic Tier = "belowBasic"
	TierBasic      Tier = "basic"
	TierAdequate   Tier = "adequate"
	TierEnhanced   Tier = "enhanced"
)

// IsTarget reports whether t can be chosen as a savings target.
// belowBasic is a status only.
func (t Tier) IsTarget() bool {
	switch t {
	case TierBasic, TierAdequate, TierEnhanced:
		return true
	}
	return false
}

// ParseTier validates a raw target tier as typed by a user.
func ParseTier(raw string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsTarget() {
		return "", &InvalidInputError{
			Field:  "targetTier",
			Reason: fmt.Sprintf("must be one of basic, adequate, enhanced (got %q)", raw),
		}
	}
	return t, nil
}

type EPFRIAInput struct {
	CurrentAge          int     `json:"currentAge"`
	CurrentSavings      float64 `json:"currentSavings"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	ExpectedReturn      float64 `json:"expectedReturn"`
	TargetTier          Tier    `json:"targetTier"`
}

type EPFRIAResult struct {
	ProjectedSavings               float64 `json:"projectedSavings"`
	CurrentStatusTier              Tier    `json:"currentStatusTier"`
	AdditionalMonthlySavingsNeeded float64 `json:"additionalMonthlySavingsNeeded"`
}
