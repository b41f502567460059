package usecase

import (
	"time"

	"condo_gestao/internal/domain/entities"
)

// ClassifyStanding derives a resident's display standing from their most
// recent payment, at the given evaluation instant.
//
// A resident is "em dia" when the last payment date falls within one calendar
// month of now (same day-of-month boundary, not a fixed 30 days). A resident
// with no payment history, or whose only record was never paid, is
// "atrasado".
func ClassifyStanding(last *entities.Payment, now time.Time) entities.Standing {
	if last == nil || last.PaidAt == nil {
		return entities.StandingAtrasado
	}
	oneMonthAgo := now.AddDate(0, -1, 0)
	if last.PaidAt.After(oneMonthAgo) {
		return entities.StandingEmDia
	}
	return entities.StandingAtrasado
}
