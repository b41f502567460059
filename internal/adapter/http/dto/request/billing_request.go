package request

import (
	"errors"
	"time"

	"condo_gestao/internal/usecase"
)

var (
	ErrInvalidAsOf = errors.New("invalid as_of timestamp")
)

// GenerateChargesRequest selects the billing period. Both fields omitted
// means "current month in the condo's time zone".
type GenerateChargesRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ResolvePeriod returns nil when no explicit period was sent, letting the
// use case default to the current month.
func (r GenerateChargesRequest) ResolvePeriod() *usecase.Period {
	if r.Month == 0 && r.Year == 0 {
		return nil
	}
	return &usecase.Period{Month: r.Month, Year: r.Year}
}

// SweepRequest optionally pins the sweep cutoff, mainly for backfills and
// tests. Empty means "now".
type SweepRequest struct {
	AsOf string `json:"as_of"`
}

func (r SweepRequest) ResolveAsOf() (time.Time, error) {
	if r.AsOf == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, r.AsOf)
	if err != nil {
		return time.Time{}, ErrInvalidAsOf
	}
	return t, nil
}
