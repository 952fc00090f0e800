package repository

import (
	"context"

	"github.com/jhoicas/autoparts-api/internal/domain/reporting"
)

// AnalyticsRepository consultas de solo lectura para el tablero.
type AnalyticsRepository interface {
	// CountEntities cuenta filas por tabla. location filtra las tablas que tienen región.
	CountEntities(ctx context.Context, location string) (reporting.EntityCounts, error)
}
