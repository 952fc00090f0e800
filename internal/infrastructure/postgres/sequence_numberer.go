package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/autoparts-api/internal/application/sales"
	domsales "github.com/jhoicas/autoparts-api/internal/domain/sales"
)

var _ sales.NumberGenerator = (*SequenceNumberer)(nil)

// SequenceNumberer genera números de documento con secuencias de PostgreSQL.
// nextval no participa del rollback, así que un reintento nunca repite número.
type SequenceNumberer struct {
	q Querier
}

// NewSequenceNumberer construye el generador sobre el pool.
func NewSequenceNumberer(q Querier) *SequenceNumberer {
	return &SequenceNumberer{q: q}
}

var sequenceByPrefix = map[string]string{
	domsales.PrefixOrder:       "order_number_seq",
	domsales.PrefixTransaction: "transaction_number_seq",
}

// Next devuelve <PREFIX>-<YYMMDD>-<n>.
func (n *SequenceNumberer) Next(ctx context.Context, prefix string, at time.Time) (string, error) {
	seq, ok := sequenceByPrefix[prefix]
	if !ok {
		return "", fmt.Errorf("prefijo de documento desconocido: %q", prefix)
	}
	var v int64
	if err := n.q.QueryRow(ctx, `SELECT nextval($1::regclass)`, seq).Scan(&v); err != nil {
		return "", fmt.Errorf("nextval %s: %w", seq, err)
	}
	return domsales.DocumentNumber(prefix, at, v), nil
}
