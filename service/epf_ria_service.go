package service

import (
	"fincon/domain"
)

// epfTiers is ordered from the highest threshold down; the first match wins.
var epfTiers = []struct {
	tier      domain.Tier
	threshold float64
}{
	{domain.TierEnhanced, EPFEnhancedThreshold},
	{domain.TierAdequate, EPFAdequateThreshold},
	{domain.TierBasic, EPFBasicThreshold},
}

// EPFTierThreshold returns the RM amount for a target tier, or false for
// belowBasic and unknown tiers.
func EPFTierThreshold(t domain.Tier) (float64, bool) {
	for _, et := range epfTiers {
		if et.tier == t {
			return et.threshold, true
		}
	}
	return 0, false
}

// ClassifyEPFTier returns the highest tier whose threshold is at most savings.
func ClassifyEPFTier(savings float64) domain.Tier {
	for _, et := range epfTiers {
		if savings >= et.threshold {
			return et.tier
		}
	}
	return domain.TierBelowBasic
}

// CalculateEPFRIA projects EPF savings to age 60 and measures them against
// the RIA tiers.
func CalculateEPFRIA(input domain.EPFRIAInput) (domain.EPFRIAResult, error) {
	if err := validateEPFRIA(input); err != nil {
		return domain.EPFRIAResult{}, err
	}
	target, _ := EPFTierThreshold(input.TargetTier)

	months := (EPFRetirementAge - input.CurrentAge) * MonthsPerYear
	monthlyRate := input.ExpectedReturn / MonthsPerYear

	projected := input.CurrentSavings*growthFactor(monthlyRate, months) +
		input.MonthlyContribution*annuityFactor(monthlyRate, months)

	additional := 0.0
	if projected < target {
		additional = paymentForFutureValue(target-projected, monthlyRate, months)
	}
	if err := requireFiniteResult("expectedReturn", projected, additional); err != nil {
		return domain.EPFRIAResult{}, err
	}

	return domain.EPFRIAResult{
		ProjectedSavings:               projected,
		CurrentStatusTier:              ClassifyEPFTier(projected),
		AdditionalMonthlySavingsNeeded: additional,
	}, nil
}

func validateEPFRIA(input domain.EPFRIAInput) error {
	if input.CurrentAge <= 0 {
		return &domain.InvalidInputError{Field: "currentAge", Reason: "must be greater than 0"}
	}
	if input.CurrentAge >= EPFRetirementAge {
		return &domain.InvalidInputError{Field: "currentAge", Reason: "must be below 60"}
	}
	if err := requireFinite("currentSavings", input.CurrentSavings); err != nil {
		return err
	}
	if input.CurrentSavings < 0 {
		return &domain.InvalidInputError{Field: "currentSavings", Reason: "must not be negative"}
	}
	if err := requireFinite("monthlyContribution", input.MonthlyContribution); err != nil {
		return err
	}
	if input.MonthlyContribution <= 0 {
		return &domain.InvalidInputError{Field: "monthlyContribution", Reason: "must be greater than 0"}
	}
	if err := requireFinite("expectedReturn", input.ExpectedReturn); err != nil {
		return err
	}
	if input.ExpectedReturn < 0 {
		return &domain.InvalidInputError{Field: "expectedReturn", Reason: "must not be negative"}
	}
	if !input.TargetTier.IsTarget() {
		return &domain.InvalidInputError{Field: "targetTier", Reason: "must be one of basic, adequate, enhanced"}
	}
	return nil
}
