package service

import (
	"context"
	"strconv"

	"github.com/voll-fit/voll-api/internal/models"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
	"github.com/voll-fit/voll-api/pkg/export"
)

type financialLister interface {
	List(ctx context.Context) ([]models.FinancialEntry, error)
}

// ExportFormat names a supported statement output.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var statementHeaders = []string{"Vencimento", "Tipo", "Descrição", "Valor", "Status"}

// Statement is a rendered financial export ready for download.
type Statement struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the financial entries into downloadable statements.
type ExportService struct {
	financial financialLister
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewExportService constructs the export service.
func NewExportService(financial financialLister) *ExportService {
	return &ExportService{
		financial: financial,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Statement renders every financial entry, due-date ordered, in the
// requested format.
func (s *ExportService) Statement(ctx context.Context, format string) (*Statement, error) {
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "O formato deve ser 'csv' ou 'pdf'.")
	}

	entries, err := s.financial.List(ctx)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}

	dataset := export.Dataset{Headers: statementHeaders, Rows: make([]map[string]string, 0, len(entries))}
	for _, entry := range entries {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Vencimento": entry.DueDate,
			"Tipo":       entry.Type,
			"Descrição":  entry.Description,
			"Valor":      strconv.FormatFloat(entry.Amount, 'f', 2, 64),
			"Status":     entry.Status,
		})
	}

	if format == ExportFormatCSV {
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return &Statement{Content: content, ContentType: "text/csv", Filename: "lancamentos.csv"}, nil
	}

	content, err := s.pdf.Render(dataset, "Lançamentos Financeiros")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return &Statement{Content: content, ContentType: "application/pdf", Filename: "lancamentos.pdf"}, nil
}
