package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/autoparts-api/internal/domain"
	"github.com/jhoicas/autoparts-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	return hasCode(err, "23514")
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// constraintName nombre del constraint violado, si lo hay.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// where arma cláusulas WHERE con placeholders numerados.
// Cada condición usa "?" como marcador del argumento que se agrega.
type where struct {
	conds []string
	args  []interface{}
}

func (w *where) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(w.args)), -1))
}

// eq agrega col = val solo si val no está vacío.
func (w *where) eq(col, val string) {
	if val != "" {
		w.add(col+" = ?", val)
	}
}

// raw agrega una condición sin argumentos.
func (w *where) raw(cond string) {
	w.conds = append(w.conds, cond)
}

// dates agrega los límites del rango que estén definidos.
func (w *where) dates(col string, r repository.DateRange) {
	if r.From != nil {
		w.add(col+" >= ?", *r.From)
	}
	if r.To != nil {
		w.add(col+" <= ?", *r.To)
	}
}

// like búsqueda sin distinguir mayúsculas en cualquiera de las columnas.
func (w *where) like(q string, cols ...string) {
	w.args = append(w.args, "%"+q+"%")
	ph := "$" + strconv.Itoa(len(w.args))
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " ILIKE " + ph
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// limit agrega LIMIT/OFFSET si la página lo pide.
func (w *where) limit(p repository.Page) string {
	if p.Limit <= 0 {
		return ""
	}
	w.args = append(w.args, p.Limit, p.Offset)
	n := len(w.args)
	return " LIMIT $" + strconv.Itoa(n-1) + " OFFSET $" + strconv.Itoa(n)
}

// countSQL arma SELECT COUNT(*) con las condiciones actuales.
// Debe llamarse antes de limit para no arrastrar sus argumentos.
func (w *where) countSQL(table string) string {
	return "SELECT COUNT(*) FROM " + table + w.sql()
}

// mapWriteError traduce violaciones de constraints a errores de dominio.
// Único y CHECK son entrada inválida; llave foránea es conflicto con datos relacionados.
func mapWriteError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return fmt.Errorf("%w (%s)", domain.ErrDuplicate, constraintName(err))
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: existen registros relacionados (%s)", domain.ErrConflict, constraintName(err))
	case isCheckViolation(err):
		return fmt.Errorf("%w (%s)", domain.ErrInvalidInput, constraintName(err))
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// deleteByID borra por ID; ErrNotFound si no había fila.
func deleteByID(ctx context.Context, q Querier, table, id string) error {
	tag, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return mapWriteError("delete "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// prefixed antepone alias. a cada columna de una lista separada por comas.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, c := range parts {
		parts[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(parts, ", ")
}
