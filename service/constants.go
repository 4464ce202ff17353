package service

import "time"

const (
	MonthsPerYear = 12

	// CorpusMultiple is the "25x annual expenses" rule, i.e. a 4% withdrawal rate.
	CorpusMultiple = 25.0

	// EPFRetirementAge is the age at which EPF savings are projected.
	EPFRetirementAge = 60

	// EPF Retirement Income Adequacy thresholds in RM.
	EPFBasicThreshold    = 390_000.0
	EPFAdequateThreshold = 650_000.0
	EPFEnhancedThreshold = 1_300_000.0

	// ScheduleWindowMonths caps the amortization rows returned with a loan result.
	ScheduleWindowMonths = 12
)

// Explanation defaults, taken from the hosted proxy.
const (
	DefaultExplanationModel       = "gpt-4o-mini"
	DefaultExplanationMaxTokens   = 400
	DefaultExplanationTemperature = 0.7
	DefaultExplanationTimeout     = 15 * time.Second
)
