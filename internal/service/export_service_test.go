package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voll-fit/voll-api/internal/models"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
)

type stubFinancialLister struct {
	entries []models.FinancialEntry
	err     error
}

func (s *stubFinancialLister) List(ctx context.Context) ([]models.FinancialEntry, error) {
	return s.entries, s.err
}

func TestExportServiceStatementCSV(t *testing.T) {
	svc := NewExportService(&stubFinancialLister{entries: []models.FinancialEntry{
		{Type: "receita", Description: "Mensalidade", Amount: 150.5, DueDate: "2024-06-01", Status: "Pendente"},
		{Type: "despesa", Description: "Aluguel", Amount: 900, DueDate: "2024-06-05", Status: "Pago"},
	}})

	stmt, err := svc.Statement(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", stmt.ContentType)
	assert.Equal(t, "lancamentos.csv", stmt.Filename)

	lines := bytes.Split(bytes.TrimSpace(stmt.Content), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "Vencimento,Tipo,Descrição,Valor,Status", string(bytes.TrimSpace(lines[0])))
	assert.Contains(t, string(lines[1]), "150.50")
	assert.Contains(t, string(lines[2]), "Aluguel")
}

func TestExportServiceStatementPDF(t *testing.T) {
	svc := NewExportService(&stubFinancialLister{entries: []models.FinancialEntry{
		{Type: "receita", Description: "Mensalidade", Amount: 150.5, DueDate: "2024-06-01", Status: "Pendente"},
	}})

	stmt, err := svc.Statement(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", stmt.ContentType)
	assert.Equal(t, "lancamentos.pdf", stmt.Filename)
	assert.True(t, bytes.HasPrefix(stmt.Content, []byte("%PDF")))
}

func TestExportServiceStatementUnknownFormat(t *testing.T) {
	svc := NewExportService(&stubFinancialLister{})

	_, err := svc.Statement(context.Background(), "xlsx")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "O formato deve ser 'csv' ou 'pdf'.", appErr.Message)
}

func TestExportServiceStatementListError(t *testing.T) {
	svc := NewExportService(&stubFinancialLister{err: assert.AnError})

	_, err := svc.Statement(context.Background(), ExportFormatCSV)
	require.Error(t, err)
	assert.Equal(t, 500, appErrors.FromError(err).Status)
}
