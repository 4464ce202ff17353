package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincon/domain"
)

func loanRequest(t *testing.T) domain.ExplanationRequest {
	t.Helper()
	in := domain.LoanInput{LoanAmount: 500000, AnnualInterestRate: 0.045, TermYears: 30}
	res, err := CalculateLoan(in)
	require.NoError(t, err)
	return domain.ExplanationRequest{
		Type: domain.CalculationLoan,
		Loan: &domain.LoanSummary{
			LoanInput:       in,
			MonthlyPayment:  res.MonthlyPayment,
			TotalInterest:   res.TotalInterest,
			TotalAmountPaid: res.TotalAmountPaid,
		},
	}
}

func epfRequest(t *testing.T, target domain.Tier) domain.ExplanationRequest {
	t.Helper()
	in := domain.EPFRIAInput{CurrentAge: 30, CurrentSavings: 80000, MonthlyContribution: 600, ExpectedReturn: 0.06, TargetTier: target}
	res, err := CalculateEPFRIA(in)
	require.NoError(t, err)
	return domain.ExplanationRequest{
		Type:   domain.CalculationEPFRIA,
		EPFRIA: &domain.EPFRIASummary{EPFRIAInput: in, EPFRIAResult: res},
	}
}

func TestStaticExplanation_Retirement(t *testing.T) {
	out := StaticExplanation(retirementRequest(t, 3000))
	assert.Contains(t, out, "You have 35 years to save up")
	assert.Contains(t, out, "Save RM1,104 every month")
	assert.Contains(t, out, "36.8% of your current monthly expenses")
	assert.Contains(t, out, "withdraw 4% annually")
	assert.Contains(t, out, "RM8,442 by retirement")
}

func TestStaticExplanation_Loan(t *testing.T) {
	out := StaticExplanation(loanRequest(t))
	assert.Contains(t, out, "Monthly payment: RM2,533")
	assert.Contains(t, out, "Total interest over 30 years: RM412,034")
	assert.Contains(t, out, "82.4% extra")
	// 0.00375 * 500000 / 2533.43 = 74%
	assert.Contains(t, out, "about RM74 goes to interest")
}

func TestStaticExplanation_EPFRIA(t *testing.T) {
	onTrack := StaticExplanation(epfRequest(t, domain.TierAdequate))
	assert.Contains(t, onTrack, "on track for the <strong>Adequate</strong> tier")
	assert.Contains(t, onTrack, "RM1,084,515")

	short := StaticExplanation(epfRequest(t, domain.TierEnhanced))
	assert.Contains(t, short, "<strong>Enhanced</strong> tier (RM1,300,000)")
	assert.Contains(t, short, "<strong>RM215</strong> more every month")
}

func TestStaticExplanation_Deterministic(t *testing.T) {
	req := loanRequest(t)
	assert.Equal(t, StaticExplanation(req), StaticExplanation(req))
}

func TestStaticExplanation_MissingSummary(t *testing.T) {
	out := StaticExplanation(domain.ExplanationRequest{Type: domain.CalculationLoan})
	assert.Contains(t, out, "financial planner")
}

func TestBuildPrompt(t *testing.T) {
	p, err := BuildPrompt(loanRequest(t))
	require.NoError(t, err)
	assert.Contains(t, p, "Loan: RM500,000 at 4.50% for 30 years")
	assert.Contains(t, p, "Total interest: RM412,034 (82.4% extra cost)")

	p, err = BuildPrompt(epfRequest(t, domain.TierEnhanced))
	require.NoError(t, err)
	assert.Contains(t, p, "30-year-old")
	assert.Contains(t, p, "Current RIA status: Adequate")
	assert.Contains(t, p, "Target tier: Enhanced (RM1,300,000)")

	_, err = BuildPrompt(domain.ExplanationRequest{Type: domain.CalculationEPFRIA})
	assert.True(t, domain.IsInvalidInput(err))
}
