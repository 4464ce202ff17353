package http

import (
	"net/http"

	"fincon/domain"
	"fincon/service"
)

// calculate adapts a pure engine function into a JSON endpoint.
func calculate[In, Out any](fn func(In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input In
		if !decodeJSON(w, r, &input) {
			return
		}

		result, err := fn(input)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

var (
	CalculateRetirement = calculate(service.CalculateRetirement)
	CalculateLoan       = calculate(service.CalculateLoan)
	CalculateEPFRIA     = calculate(calculateEPFRIA)
)

// calculateEPFRIA accepts the target tier in any case, as typed in a form.
func calculateEPFRIA(input domain.EPFRIAInput) (domain.EPFRIAResult, error) {
	tier, err := domain.ParseTier(string(input.TargetTier))
	if err != nil {
		return domain.EPFRIAResult{}, err
	}
	input.TargetTier = tier
	return service.CalculateEPFRIA(input)
}
