package models

import "time"

// Entry types. The column is constrained to exactly these two values.
const (
	FinancialTypeIncome  = "receita"
	FinancialTypeExpense = "despesa"
)

// Observed financial statuses.
const (
	FinancialStatusPending   = "Pendente"
	FinancialStatusPaid      = "Pago"
	FinancialStatusCancelled = "Cancelado"
)

// FinancialEntry is a receivable or payable tracked by the studio.
type FinancialEntry struct {
	ID          string    `db:"id" json:"id"`
	Type        string    `db:"type" json:"type"`
	Description string    `db:"description" json:"description"`
	Amount      float64   `db:"amount" json:"amount"`
	DueDate     string    `db:"due_date" json:"due_date"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// FinancialTotals aggregates entry amounts for the summary endpoint.
type FinancialTotals struct {
	Income       float64 `db:"income" json:"income"`
	Expense      float64 `db:"expense" json:"expense"`
	Balance      float64 `db:"-" json:"balance"`
	PendingCount int     `db:"pending_count" json:"pending_count"`
}
