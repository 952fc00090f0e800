// Package reporting contiene los agregados de solo lectura: funciones puras que
// reducen un conjunto de filas ya leído a un reporte. No hay caché; cada llamada
// recalcula desde cero.
package reporting

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/autoparts-api/internal/domain"
)

// Window rango de fechas inclusivo [From, To], ambos a medianoche UTC.
type Window struct {
	From time.Time `json:"start_date"`
	To   time.Time `json:"end_date"`
}

// MonthWindow del día 1 al último día del mes indicado.
func MonthWindow(year, month int) (Window, error) {
	if year < 1900 || month < 1 || month > 12 {
		return Window{}, fmt.Errorf("año/mes fuera de rango: %w", domain.ErrInvalidInput)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Window{From: from, To: from.AddDate(0, 1, -1)}, nil
}

// YearWindow del 1 de enero al 31 de diciembre.
func YearWindow(year int) (Window, error) {
	if year < 1900 {
		return Window{}, fmt.Errorf("año fuera de rango: %w", domain.ErrInvalidInput)
	}
	return Window{
		From: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}, nil
}

// NewWindow valida un rango explícito.
func NewWindow(from, to time.Time) (Window, error) {
	if to.Before(from) {
		return Window{}, fmt.Errorf("end_date anterior a start_date: %w", domain.ErrInvalidInput)
	}
	return Window{From: from, To: to}, nil
}

// Contains indica si t (por fecha) cae dentro del rango.
func (w Window) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(w.From) && !day.After(w.To)
}

// DaysBetween días completos transcurridos entre since y now (floor).
func DaysBetween(since, now time.Time) int {
	return int(math.Floor(now.Sub(since).Hours() / 24))
}

// addTo suma amount a m[key].
func addTo(m map[string]decimal.Decimal, key string, amount decimal.Decimal) {
	m[key] = m[key].Add(amount)
}

var hundred = decimal.NewFromInt(100)
