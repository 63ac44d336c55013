package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voll-fit/voll-api/internal/models"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
)

type mockFinancialRepo struct {
	created []models.FinancialEntry
	updates []statusUpdate
	deleted []string
	err     error
}

func (m *mockFinancialRepo) List(ctx context.Context) ([]models.FinancialEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []models.FinancialEntry{}, nil
}

func (m *mockFinancialRepo) Create(ctx context.Context, entry *models.FinancialEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = "generated"
	m.created = append(m.created, *entry)
	return nil
}

func (m *mockFinancialRepo) UpdateStatus(ctx context.Context, id, status string) (*models.FinancialEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updates = append(m.updates, statusUpdate{id: id, status: status})
	return &models.FinancialEntry{ID: id, Status: status}, nil
}

func (m *mockFinancialRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

func TestFinancialServiceCreateDefaults(t *testing.T) {
	repo := &mockFinancialRepo{}
	svc := NewFinancialService(repo, validator.New(), zap.NewNop())

	entry, err := svc.Create(context.Background(), CreateFinancialEntryRequest{
		Type:        "receita",
		Description: "Mensalidade",
		Amount:      float64(150),
		DueDate:     "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pendente", entry.Status)
	assert.Equal(t, 150.0, entry.Amount)
	assert.Len(t, repo.created, 1)
}

func TestFinancialServiceCreateCoercesNumericString(t *testing.T) {
	repo := &mockFinancialRepo{}
	svc := NewFinancialService(repo, validator.New(), zap.NewNop())

	entry, err := svc.Create(context.Background(), CreateFinancialEntryRequest{
		Type:        "despesa",
		Description: "Aluguel",
		Amount:      "900.50",
		DueDate:     "2024-06-05",
	})
	require.NoError(t, err)
	assert.Equal(t, 900.5, entry.Amount)
}

func TestFinancialServiceCreateValidationOrder(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateFinancialEntryRequest
		message string
	}{
		{
			name:    "type checked first even when everything is wrong",
			req:     CreateFinancialEntryRequest{Type: "investimento", Description: "x", Amount: -1},
			message: "O campo 'type' deve ser 'receita' ou 'despesa'.",
		},
		{
			name:    "description next",
			req:     CreateFinancialEntryRequest{Type: "receita", Description: "x", Amount: -1},
			message: "O campo 'description' é obrigatório.",
		},
		{
			name:    "negative amount",
			req:     CreateFinancialEntryRequest{Type: "receita", Description: "Mensalidade", Amount: float64(-5), DueDate: "2024-06-01"},
			message: "O campo 'amount' deve ser um número positivo.",
		},
		{
			name:    "zero amount",
			req:     CreateFinancialEntryRequest{Type: "receita", Description: "Mensalidade", Amount: float64(0), DueDate: "2024-06-01"},
			message: "O campo 'amount' deve ser um número positivo.",
		},
		{
			name:    "non numeric amount",
			req:     CreateFinancialEntryRequest{Type: "receita", Description: "Mensalidade", Amount: "abc", DueDate: "2024-06-01"},
			message: "O campo 'amount' deve ser um número positivo.",
		},
		{
			name:    "amount before due date",
			req:     CreateFinancialEntryRequest{Type: "receita", Description: "Mensalidade", Amount: "abc"},
			message: "O campo 'amount' deve ser um número positivo.",
		},
		{
			name:    "due date last",
			req:     CreateFinancialEntryRequest{Type: "receita", Description: "Mensalidade", Amount: float64(150)},
			message: "O campo 'due_date' é obrigatório.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockFinancialRepo{}
			svc := NewFinancialService(repo, validator.New(), zap.NewNop())

			_, err := svc.Create(context.Background(), tc.req)
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, 400, appErr.Status)
			assert.Equal(t, tc.message, appErr.Message)
			assert.Empty(t, repo.created, "store must not be called on validation failure")
		})
	}
}

func TestFinancialServiceUpdateStatus(t *testing.T) {
	repo := &mockFinancialRepo{}
	svc := NewFinancialService(repo, validator.New(), zap.NewNop())

	entry, err := svc.UpdateStatus(context.Background(), "f1", UpdateStatusRequest{Status: "Pago"})
	require.NoError(t, err)
	assert.Equal(t, "Pago", entry.Status)
	assert.Equal(t, []statusUpdate{{id: "f1", status: "Pago"}}, repo.updates)
}

func TestFinancialServiceUpdateStatusMissingStatus(t *testing.T) {
	repo := &mockFinancialRepo{}
	svc := NewFinancialService(repo, validator.New(), zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), "f1", UpdateStatusRequest{})
	require.Error(t, err)
	assert.Equal(t, "Campo 'status' ausente", appErrors.FromError(err).Message)
	assert.Empty(t, repo.updates)
}

func TestFinancialServiceDeleteMissingID(t *testing.T) {
	repo := &mockFinancialRepo{}
	svc := NewFinancialService(repo, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "ID ausente", appErrors.FromError(err).Message)
	assert.Empty(t, repo.deleted)
}
