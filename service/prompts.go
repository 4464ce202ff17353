package service

import (
	"fmt"

	"fincon/domain"
)

const explanationSystemPrompt = "You are a friendly Malaysian financial advisor. Write ONLY in proper English using simple HTML tags (h3, strong, ul, li, p). " +
	"Keep explanations SHORT and COMPACT, avoiding extra spacing or line breaks. Use Malaysian financial context and investment options. " +
	"Do NOT include ```html code blocks or local slang words. Always end with a disclaimer about consulting a financial planner. " +
	"Use professional, clear English throughout. Format as compact lists with minimal spacing."

// BuildPrompt renders the user prompt for a validated request.
func BuildPrompt(req domain.ExplanationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	switch req.Type {
	case domain.CalculationRetirement:
		return retirementPrompt(req.Retirement), nil
	case domain.CalculationLoan:
		return loanPrompt(req.Loan), nil
	default:
		return epfRIAPrompt(req.EPFRIA), nil
	}
}

func retirementPrompt(s *domain.RetirementSummary) string {
	return fmt.Sprintf(`Provide a SHORT retirement analysis for a %d-year-old Malaysian planning to retire at %d.

Key numbers:
- Years to retirement: %d
- Monthly savings needed: %s (%s of current %s expenses)
- Monthly expenses at retirement after %s inflation: %s
- Retirement corpus target (25x annual expenses): %s
- Assumed annual return: %s

Format with HTML tags. Include:
- Quick assessment of the savings challenge
- 2-3 specific Malaysian investment tips (EPF, ASB, unit trusts)
- One actionable next step
- Financial planner consultation disclaimer

Keep it under 250 words with an encouraging, professional tone in proper English.`,
		s.CurrentAge, s.RetirementAge,
		s.YearsToRetirement,
		formatRM(s.MonthlySavingsRequired), ratioPercent(s.MonthlySavingsRequired, s.MonthlyExpenses), formatRM(s.MonthlyExpenses),
		formatPercent(s.InflationRate, 1), formatRM(s.FutureMonthlyExpenses),
		formatRM(s.CorpusNeeded),
		formatPercent(s.ExpectedReturn, 1),
	)
}

func loanPrompt(s *domain.LoanSummary) string {
	return fmt.Sprintf(`Provide a SHORT loan analysis for a Malaysian borrower.

Key numbers:
- Loan: %s at %s for %d years
- Monthly payment: %s
- Total interest: %s (%s extra cost)
- Total amount paid: %s

Format with HTML tags. Include:
- Quick assessment if this is reasonable for Malaysian standards
- 2-3 specific tips to reduce interest (early payment, refinancing)
- One budget management tip
- Financial planner consultation disclaimer

Keep it under 250 words with a practical, professional tone in proper English.`,
		formatRM(s.LoanAmount), formatPercent(s.AnnualInterestRate, 2), s.TermYears,
		formatRM(s.MonthlyPayment),
		formatRM(s.TotalInterest), ratioPercent(s.TotalInterest, s.LoanAmount),
		formatRM(s.TotalAmountPaid),
	)
}

func epfRIAPrompt(s *domain.EPFRIASummary) string {
	target, _ := EPFTierThreshold(s.TargetTier)
	return fmt.Sprintf(`Provide a SHORT EPF Retirement Income Adequacy (RIA) review for a %d-year-old Malaysian EPF member.

Key numbers:
- Current EPF savings: %s, contributing %s per month
- Assumed annual dividend: %s
- Projected savings at age 60: %s
- Current RIA status: %s
- Target tier: %s (%s)
- Additional monthly savings needed to reach the target: %s

Format with HTML tags. Include:
- What the current RIA tier means for retirement income
- 2-3 specific ways to close the gap (voluntary EPF contributions, i-Saraan, ASB)
- One actionable next step
- Financial planner consultation disclaimer

Keep it under 250 words with an encouraging, professional tone in proper English.`,
		s.CurrentAge,
		formatRM(s.CurrentSavings), formatRM(s.MonthlyContribution),
		formatPercent(s.ExpectedReturn, 1),
		formatRM(s.ProjectedSavings),
		tierLabel(s.CurrentStatusTier),
		tierLabel(s.TargetTier), formatRM(target),
		formatRM(s.AdditionalMonthlySavingsNeeded),
	)
}

func tierLabel(t domain.Tier) string {
	switch t {
	case domain.TierBasic:
		return "Basic"
	case domain.TierAdequate:
		return "Adequate"
	case domain.TierEnhanced:
		return "Enhanced"
	default:
		return "Below Basic"
	}
}
