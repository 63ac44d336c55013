package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/voll-fit/voll-api/internal/models"
)

const financialColumns = `id, type, description, amount, to_char(due_date, 'YYYY-MM-DD') AS due_date, status, created_at`

// FinancialRepository manages persistence for financial entries.
type FinancialRepository struct {
	db *sqlx.DB
}

// NewFinancialRepository constructs a FinancialRepository.
func NewFinancialRepository(db *sqlx.DB) *FinancialRepository {
	return &FinancialRepository{db: db}
}

// List returns all entries ordered by due date ascending.
func (r *FinancialRepository) List(ctx context.Context) ([]models.FinancialEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM financial_entries ORDER BY due_date ASC`, financialColumns)
	entries := make([]models.FinancialEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list financial entries: %w", err)
	}
	return entries, nil
}

// FindByID fetches a single entry by id.
func (r *FinancialRepository) FindByID(ctx context.Context, id string) (*models.FinancialEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM financial_entries WHERE id = $1`, financialColumns)
	var entry models.FinancialEntry
	if err := r.db.GetContext(ctx, &entry, query, id); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create inserts a new financial entry.
func (r *FinancialRepository) Create(ctx context.Context, entry *models.FinancialEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO financial_entries (id, type, description, amount, due_date, status, created_at)
        VALUES (:id, :type, :description, :amount, :due_date, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create financial entry: %w", err)
	}
	return nil
}

// UpdateStatus mutates exactly the status field and returns the updated
// record. A missing id surfaces as sql.ErrNoRows from the re-read.
func (r *FinancialRepository) UpdateStatus(ctx context.Context, id, status string) (*models.FinancialEntry, error) {
	const query = `UPDATE financial_entries SET status = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return nil, fmt.Errorf("update financial status: %w", err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes an entry by id. Deleting an absent id is a no-op.
func (r *FinancialRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM financial_entries WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete financial entry: %w", err)
	}
	return nil
}

// Totals sums income and expense amounts and counts pending entries.
func (r *FinancialRepository) Totals(ctx context.Context) (*models.FinancialTotals, error) {
	const query = `SELECT
        COALESCE(SUM(amount) FILTER (WHERE type = 'receita'), 0) AS income,
        COALESCE(SUM(amount) FILTER (WHERE type = 'despesa'), 0) AS expense,
        COUNT(*) FILTER (WHERE status = 'Pendente') AS pending_count
        FROM financial_entries`
	var totals models.FinancialTotals
	if err := r.db.GetContext(ctx, &totals, query); err != nil {
		return nil, fmt.Errorf("financial totals: %w", err)
	}
	totals.Balance = totals.Income - totals.Expense
	return &totals, nil
}
