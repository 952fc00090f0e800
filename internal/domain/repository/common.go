package repository

import "time"

// Page paginación de listados. Limit <= 0 significa sin límite.
type Page struct {
	Limit  int
	Offset int
}

// DateRange rango inclusivo opcional sobre una columna de fecha.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Days rango que cubre los días from y to completos; to se extiende hasta el último
// microsegundo del día para que también sirva sobre columnas TIMESTAMPTZ.
func Days(from, to time.Time) DateRange {
	end := to.AddDate(0, 0, 1).Add(-time.Microsecond)
	return DateRange{From: &from, To: &end}
}
