// Package finance casos de uso de inmuebles y del libro de transacciones, con sus reportes.
package finance

import (
	"context"
	"time"
)

// NumberGenerator entrega el siguiente número de documento (TXN-AAMMDD-NNNN).
// La misma implementación sirve a ventas y a finanzas.
type NumberGenerator interface {
	Next(ctx context.Context, prefix string, at time.Time) (string, error)
}
