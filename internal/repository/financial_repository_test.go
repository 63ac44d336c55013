package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voll-fit/voll-api/internal/models"
)

var financialCols = []string{"id", "type", "description", "amount", "due_date", "status", "created_at"}

func TestFinancialRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFinancialRepository(db)

	rows := sqlmock.NewRows(financialCols).
		AddRow("f1", "receita", "Mensalidade", 150.0, "2024-06-01", "Pendente", time.Now()).
		AddRow("f2", "despesa", "Aluguel", 900.5, "2024-06-05", "Pago", time.Now())
	mock.ExpectQuery("FROM financial_entries ORDER BY due_date ASC").
		WillReturnRows(rows)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "receita", entries[0].Type)
	assert.Equal(t, 900.5, entries[1].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFinancialRepository(db)

	mock.ExpectExec("INSERT INTO financial_entries").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &models.FinancialEntry{
		Type:        "receita",
		Description: "Mensalidade",
		Amount:      150,
		DueDate:     "2024-06-01",
		Status:      "Pendente",
	}
	err := repo.Create(context.Background(), entry)
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFinancialRepository(db)

	mock.ExpectExec("UPDATE financial_entries SET status = \\$1 WHERE id = \\$2").
		WithArgs("Pago", "f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM financial_entries WHERE id = \\$1").
		WithArgs("f1").
		WillReturnRows(sqlmock.NewRows(financialCols).
			AddRow("f1", "receita", "Mensalidade", 150.0, "2024-06-01", "Pago", time.Now()))

	entry, err := repo.UpdateStatus(context.Background(), "f1", "Pago")
	require.NoError(t, err)
	assert.Equal(t, "Pago", entry.Status)
	assert.Equal(t, "Mensalidade", entry.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialRepositoryTotals(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFinancialRepository(db)

	mock.ExpectQuery("FROM financial_entries").
		WillReturnRows(sqlmock.NewRows([]string{"income", "expense", "pending_count"}).
			AddRow(1200.0, 450.5, 3))

	totals, err := repo.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1200.0, totals.Income)
	assert.Equal(t, 450.5, totals.Expense)
	assert.InDelta(t, 749.5, totals.Balance, 0.0001)
	assert.Equal(t, 3, totals.PendingCount)
}
