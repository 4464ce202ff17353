package service

import (
	"fmt"
	"math"

	"fincon/domain"
)

// StaticExplanation builds the locally generated explanation used whenever
// the model cannot be reached. The output depends only on req.
func StaticExplanation(req domain.ExplanationRequest) string {
	switch {
	case req.Type == domain.CalculationRetirement && req.Retirement != nil:
		return staticRetirement(req.Retirement)
	case req.Type == domain.CalculationLoan && req.Loan != nil:
		return staticLoan(req.Loan)
	case req.Type == domain.CalculationEPFRIA && req.EPFRIA != nil:
		return staticEPFRIA(req.EPFRIA)
	}
	return "<p>Your results are shown above. Please consult a licensed financial planner for personalised advice.</p>"
}

func staticRetirement(s *domain.RetirementSummary) string {
	return fmt.Sprintf(`<h3>Your retirement roadmap</h3>`+
		`<p><strong>The math behind it:</strong></p><ul>`+
		`<li>You have %d years to save up</li>`+
		`<li>With %s inflation, your current %s monthly expenses will become %s by retirement</li>`+
		`<li>Using the 25x rule (withdraw 4%% annually), you'll need %s as your retirement fund</li></ul>`+
		`<p><strong>Your action plan:</strong></p><ul>`+
		`<li>Save %s every month</li>`+
		`<li>That's %s of your current monthly expenses</li>`+
		`<li>Invest in a diversified portfolio targeting %s annual returns</li></ul>`+
		`<p><strong>Pro tips:</strong></p><ul>`+
		`<li>Start with EPF contributions, including your employer's share</li>`+
		`<li>Consider unit trusts, ETFs, or REITs for diversification</li>`+
		`<li>Review and adjust your plan every 2-3 years</li>`+
		`<li>Don't forget healthcare costs, which tend to be higher during retirement</li></ul>`+
		`<p>This is a general estimate. Please consult a licensed financial planner for personalised advice.</p>`,
		s.YearsToRetirement,
		formatPercent(s.InflationRate, 1), formatRM(s.MonthlyExpenses), formatRM(s.FutureMonthlyExpenses),
		formatRM(s.CorpusNeeded),
		formatRM(s.MonthlySavingsRequired),
		ratioPercent(s.MonthlySavingsRequired, s.MonthlyExpenses),
		formatPercent(s.ExpectedReturn, 1),
	)
}

func staticLoan(s *domain.LoanSummary) string {
	// Share of the first payment that goes to interest, per RM100.
	interestPer100 := 0.0
	if s.MonthlyPayment > 0 {
		interestPer100 = math.Round(s.AnnualInterestRate / MonthsPerYear * s.LoanAmount / s.MonthlyPayment * 100)
	}
	return fmt.Sprintf(`<h3>Here's the real talk about your loan</h3>`+
		`<p><strong>The numbers:</strong></p><ul>`+
		`<li>Monthly payment: %s</li>`+
		`<li>Total interest over %d years: %s</li>`+
		`<li>That's %s extra on top of your original loan</li></ul>`+
		`<p><strong>What this means:</strong></p><ul>`+
		`<li>Out of every RM100 you pay monthly, about RM%.0f goes to interest initially</li>`+
		`<li>As time goes on, more of your payment goes to the actual loan amount</li>`+
		`<li>Paying extra towards principal saves on interest</li></ul>`+
		`<p><strong>Malaysian context:</strong></p><ul>`+
		`<li>Most banks allow early partial payments without penalty</li>`+
		`<li>Consider refinancing if rates drop significantly</li>`+
		`<li>Factor in legal fees, valuation costs, and insurance</li></ul>`+
		`<p>This is a general estimate. Please consult a licensed financial planner for personalised advice.</p>`,
		formatRM(s.MonthlyPayment),
		s.TermYears, formatRM(s.TotalInterest),
		ratioPercent(s.TotalInterest, s.LoanAmount),
		interestPer100,
	)
}

func staticEPFRIA(s *domain.EPFRIASummary) string {
	target, _ := EPFTierThreshold(s.TargetTier)

	verdict := fmt.Sprintf(`<p>You are on track for the <strong>%s</strong> tier. Keep your contributions steady.</p>`,
		tierLabel(s.TargetTier))
	if s.AdditionalMonthlySavingsNeeded > 0 {
		verdict = fmt.Sprintf(`<p>To reach the <strong>%s</strong> tier (%s) you need about <strong>%s</strong> more every month until age 60.</p>`,
			tierLabel(s.TargetTier), formatRM(target), formatRM(s.AdditionalMonthlySavingsNeeded))
	}

	return fmt.Sprintf(`<h3>Your EPF retirement adequacy check</h3>`+
		`<ul>`+
		`<li>Current savings: %s, growing with %s monthly contributions</li>`+
		`<li>Projected savings at 60 with %s annual dividends: %s</li>`+
		`<li>Current RIA status: <strong>%s</strong></li></ul>`+
		`%s`+
		`<p><strong>Ways to close the gap:</strong></p><ul>`+
		`<li>Make voluntary contributions to your EPF account</li>`+
		`<li>Self-employed members can use i-Saraan for a government top-up</li>`+
		`<li>Review your progress every year as your salary grows</li></ul>`+
		`<p>This is a general estimate. Please consult a licensed financial planner for personalised advice.</p>`,
		formatRM(s.CurrentSavings), formatRM(s.MonthlyContribution),
		formatPercent(s.ExpectedReturn, 1), formatRM(s.ProjectedSavings),
		tierLabel(s.CurrentStatusTier),
		verdict,
	)
}
