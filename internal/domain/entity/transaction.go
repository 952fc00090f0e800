package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

// Categorías de transacción.
const (
	TxCategorySales       = "sales"
	TxCategoryPurchase    = "purchase"
	TxCategoryShipping    = "shipping"
	TxCategoryCustoms     = "customs"
	TxCategorySalary      = "salary"
	TxCategoryRent        = "rent"
	TxCategoryUtilities   = "utilities"
	TxCategoryMaintenance = "maintenance"
	TxCategoryInsurance   = "insurance"
	TxCategoryTax         = "tax"
	TxCategoryOther       = "other"
)

// Cuentas contables.
const (
	AccountCashJapan = "cash_japan"
	AccountCashDubai = "cash_dubai"
	AccountBankJapan = "bank_japan"
	AccountBankDubai = "bank_dubai"
)

// Accounts lista fija de cuentas, en el orden en que se reportan.
var Accounts = []string{AccountCashJapan, AccountCashDubai, AccountBankJapan, AccountBankDubai}

// Estados de una transacción.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// Métodos de pago de una transacción.
const (
	TxPaymentCash         = "cash"
	TxPaymentBankTransfer = "bank_transfer"
	TxPaymentCreditCard   = "credit_card"
	TxPaymentCheck        = "check"
)

// Transaction asiento del libro de caja.
type Transaction struct {
	ID                string
	TransactionNumber string // único, generado
	Type              string
	Category          string
	Amount            decimal.Decimal
	Currency          string
	ExchangeRate      decimal.Decimal // a USD; 1 por defecto
	AmountUSD         decimal.Decimal
	Date              time.Time
	PaymentMethod     string
	Account           string
	Reference         string
	Description       string
	PropertyID        *string
	OrderID           *string
	ContainerID       *string
	Location          string
	Status            string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
