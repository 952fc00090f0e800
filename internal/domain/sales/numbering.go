package sales

import (
	"fmt"
	"time"
)

// Prefijos de documentos numerados.
const (
	PrefixOrder       = "ORD"
	PrefixTransaction = "TXN"
)

// MaxNumberAttempts intentos ante colisión de número de documento.
const MaxNumberAttempts = 3

// DocumentNumber formatea <PREFIX>-<YYMMDD>-<seq> con la secuencia a 4 dígitos mínimo.
func DocumentNumber(prefix string, at time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, DayKey(at), seq)
}

// DayKey fecha en formato YYMMDD.
func DayKey(at time.Time) string {
	return at.Format("060102")
}
