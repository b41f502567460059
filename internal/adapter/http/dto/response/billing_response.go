package response

import (
	"condo_gestao/internal/usecase"
)

// BatchFailureResponse is one record of a batch run that could not be
// written; the rest of the batch is unaffected.
type BatchFailureResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type GenerateResultResponse struct {
	Month    int                    `json:"month"`
	Year     int                    `json:"year"`
	Created  []PaymentResponse      `json:"created"`
	Skipped  int                    `json:"skipped"`
	Failures []BatchFailureResponse `json:"failures,omitempty"`
}

func FromGenerateResult(r usecase.GenerateResult) GenerateResultResponse {
	out := GenerateResultResponse{
		Month:   r.Period.Month,
		Year:    r.Period.Year,
		Created: FromPayments(r.Created),
		Skipped: r.Skipped,
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, BatchFailureResponse{ID: f.ResidentID, Error: f.Err.Error()})
	}
	return out
}

type SweepResultResponse struct {
	Swept    []string               `json:"swept"`
	Failures []BatchFailureResponse `json:"failures,omitempty"`
}

func FromSweepResult(r usecase.SweepResult) SweepResultResponse {
	out := SweepResultResponse{Swept: r.Swept}
	if out.Swept == nil {
		out.Swept = []string{}
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, BatchFailureResponse{ID: f.PaymentID, Error: f.Err.Error()})
	}
	return out
}
