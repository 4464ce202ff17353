package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"fincon/domain"
	"fincon/service"
)

type explainRequest struct {
	CalculationType string          `json:"calculationType"`
	Data            json.RawMessage `json:"data"`
}

type ExplainHandler struct {
	service *service.ExplanationService
}

func NewExplainHandler(service *service.ExplanationService) *ExplainHandler {
	return &ExplainHandler{service: service}
}

// Explain answers with the model's explanation or the static fallback. Only
// a malformed request is an error.
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var body explainRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	req, err := body.toDomain()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	exp, err := h.service.Explain(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

func (b explainRequest) toDomain() (domain.ExplanationRequest, error) {
	typ, err := domain.ParseCalculationType(b.CalculationType)
	if err != nil {
		return domain.ExplanationRequest{}, err
	}
	req := domain.ExplanationRequest{Type: typ}

	data := bytes.TrimSpace(b.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return req, &domain.InvalidInputError{Field: "data", Reason: "is required"}
	}

	switch typ {
	case domain.CalculationRetirement:
		req.Retirement = new(domain.RetirementSummary)
		err = json.Unmarshal(data, req.Retirement)
	case domain.CalculationLoan:
		req.Loan = new(domain.LoanSummary)
		err = json.Unmarshal(data, req.Loan)
	case domain.CalculationEPFRIA:
		req.EPFRIA = new(domain.EPFRIASummary)
		if err = json.Unmarshal(data, req.EPFRIA); err == nil {
			// Validate rejects anything ParseTier cannot normalize.
			if tier, perr := domain.ParseTier(string(req.EPFRIA.TargetTier)); perr == nil {
				req.EPFRIA.TargetTier = tier
			}
		}
	}
	if err != nil {
		return req, &domain.InvalidInputError{Field: "data", Reason: "must be an object of calculation inputs and results"}
	}
	return req, nil
}
