package service

import (
	"math"

	"fincon/domain"
)

// growthFactor returns (1+r)^n.
func growthFactor(rate float64, periods int) float64 {
	return math.Pow(1+rate, float64(periods))
}

// growthMinusOne returns (1+r)^n - 1 without losing a tiny r to rounding in 1+r.
func growthMinusOne(rate float64, periods int) float64 {
	return math.Expm1(float64(periods) * math.Log1p(rate))
}

// annuityFactor is the future value of 1 paid at the end of each of n periods,
// ((1+r)^n - 1) / r, degrading to n when r is 0.
func annuityFactor(rate float64, periods int) float64 {
	if rate == 0 {
		return float64(periods)
	}
	return growthMinusOne(rate, periods) / rate
}

// paymentForFutureValue solves the ordinary annuity for the periodic payment
// that accumulates to target.
func paymentForFutureValue(target, rate float64, periods int) float64 {
	return target / annuityFactor(rate, periods)
}

// amortizedPayment is the level payment that retires principal in n periods,
// P*r / (1 - (1+r)^-n). It tends to P*r when (1+r)^n overflows.
func amortizedPayment(principal, rate float64, periods int) float64 {
	if rate == 0 {
		return principal / float64(periods)
	}
	return principal * rate / -growthMinusOne(rate, -periods)
}

func requireFinite(field string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &domain.InvalidInputError{Field: field, Reason: "must be a finite number"}
		}
	}
	return nil
}

// requireFiniteResult rejects inputs whose results overflow float64.
func requireFiniteResult(field string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &domain.InvalidInputError{Field: field, Reason: "produces a non-finite result"}
		}
	}
	return nil
}
