package response

import (
	"condo_gestao/internal/usecase"
)

type ResidentStandingResponse struct {
	Resident    ResidentResponse `json:"resident"`
	Standing    string           `json:"standing"`
	LastPayment *PaymentResponse `json:"last_payment,omitempty"`
}

type StandingsReportResponse struct {
	Residents []ResidentStandingResponse `json:"residents"`
	EmDia     int                        `json:"em_dia"`
	Atrasado  int                        `json:"atrasado"`
}

func FromStandingsReport(r usecase.StandingsReport) StandingsReportResponse {
	out := StandingsReportResponse{
		Residents: make([]ResidentStandingResponse, 0, len(r.Residents)),
		EmDia:     r.EmDia,
		Atrasado:  r.Atrasado,
	}
	for _, rs := range r.Residents {
		item := ResidentStandingResponse{
			Resident: FromResident(rs.Resident),
			Standing: string(rs.Standing),
		}
		if rs.LastPayment != nil {
			lp := FromPayment(*rs.LastPayment)
			item.LastPayment = &lp
		}
		out.Residents = append(out.Residents, item)
	}
	return out
}

type ChartMonthResponse struct {
	Month     int     `json:"month"`
	Paid      int     `json:"paid"`
	Overdue   int     `json:"overdue"`
	PaidTotal float64 `json:"paid_total"`
}

type ChartReportResponse struct {
	Year   int                  `json:"year"`
	Months []ChartMonthResponse `json:"months"`
}

func FromChartReport(r usecase.ChartReport) ChartReportResponse {
	out := ChartReportResponse{Year: r.Year, Months: make([]ChartMonthResponse, 0, 12)}
	for i, m := range r.Months {
		out.Months = append(out.Months, ChartMonthResponse{
			Month:     i + 1,
			Paid:      m.Paid,
			Overdue:   m.Overdue,
			PaidTotal: m.PaidTotal,
		})
	}
	return out
}
