package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
)

// PeriodQuery periodo de un reporte: year+month, o start_date+end_date, más región opcional.
type PeriodQuery struct {
	Year      int    `query:"year"`
	Month     int    `query:"month"`
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Location  string `query:"location"`
}

// Window resuelve el periodo. Un rango explícito tiene prioridad; sin año o mes se usa
// el mes en curso de now.
func (q PeriodQuery) Window(now time.Time) (reporting.Window, error) {
	if q.StartDate != "" || q.EndDate != "" {
		if q.StartDate == "" || q.EndDate == "" {
			return reporting.Window{}, fmt.Errorf("start_date y end_date van juntos: %w", domain.ErrInvalidInput)
		}
		from, err := ParseDate(q.StartDate)
		if err != nil {
			return reporting.Window{}, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		}
		to, err := ParseDate(q.EndDate)
		if err != nil {
			return reporting.Window{}, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		}
		return reporting.NewWindow(from.Time, to.Time)
	}
	year, month := q.Year, q.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return reporting.MonthWindow(year, month)
}

// OptionalWindow como Window, pero sin parámetros de fecha devuelve nil (sin filtro).
func (q PeriodQuery) OptionalWindow(now time.Time) (*reporting.Window, error) {
	if q.Year == 0 && q.Month == 0 && q.StartDate == "" && q.EndDate == "" {
		return nil, nil
	}
	w, err := q.Window(now)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// YearQuery año de un reporte anual, más región opcional.
type YearQuery struct {
	Year     int    `query:"year"`
	Location string `query:"location"`
}

// YearOr año pedido, o el de now si no vino.
func (q YearQuery) YearOr(now time.Time) int {
	if q.Year == 0 {
		return now.Year()
	}
	return q.Year
}

// MonthlySalesResponse ventas de un periodo.
type MonthlySalesResponse struct {
	Period  reporting.Window       `json:"period"`
	Summary reporting.SalesSummary `json:"summary"`
	Orders  []OrderResponse        `json:"orders"`
}
