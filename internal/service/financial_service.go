package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/voll-fit/voll-api/internal/models"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
)

type financialRepository interface {
	List(ctx context.Context) ([]models.FinancialEntry, error)
	Create(ctx context.Context, entry *models.FinancialEntry) error
	UpdateStatus(ctx context.Context, id, status string) (*models.FinancialEntry, error)
	Delete(ctx context.Context, id string) error
}

// CreateFinancialEntryRequest is the raw payload for a financial entry.
// Amount is untyped because callers send it both as a JSON number and as a
// numeric string; the service coerces it before validating.
type CreateFinancialEntryRequest struct {
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Amount      interface{} `json:"amount"`
	DueDate     string      `json:"due_date"`
	Status      string      `json:"status"`
}

// financialEntryInput is the normalised payload the validator runs against.
// Field order fixes the priority of validation messages: type, description,
// amount, due date.
type financialEntryInput struct {
	Type        string  `validate:"required,oneof=receita despesa"`
	Description string  `validate:"required,min=2"`
	Amount      float64 `validate:"required,gt=0"`
	DueDate     string  `validate:"required"`
}

// FinancialService handles receivable/payable use-cases.
type FinancialService struct {
	repo      financialRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFinancialService constructs the financial service.
func NewFinancialService(repo financialRepository, validate *validator.Validate, logger *zap.Logger) *FinancialService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinancialService{repo: repo, validator: validate, logger: logger}
}

// List returns all entries ordered by due date.
func (s *FinancialService) List(ctx context.Context) ([]models.FinancialEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	return entries, nil
}

// Create records a new receivable or payable.
func (s *FinancialService) Create(ctx context.Context, req CreateFinancialEntryRequest) (*models.FinancialEntry, error) {
	amount, _ := coerceAmount(req.Amount)
	input := financialEntryInput{
		Type:        strings.TrimSpace(req.Type),
		Description: strings.TrimSpace(req.Description),
		Amount:      amount,
		DueDate:     strings.TrimSpace(req.DueDate),
	}
	if err := s.validator.Struct(input); err != nil {
		return nil, validationError(err, financialFieldMessage)
	}

	entry := &models.FinancialEntry{
		Type:        input.Type,
		Description: input.Description,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		Status:      defaultText(req.Status, models.FinancialStatusPending),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Datastore(err)
	}
	return entry, nil
}

// UpdateStatus mutates only the status field of an entry.
func (s *FinancialService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*models.FinancialEntry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "ID ausente")
	}
	if strings.TrimSpace(req.Status) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Campo 'status' ausente")
	}
	entry, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	return entry, nil
}

// Delete removes an entry by id.
func (s *FinancialService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "ID ausente")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Datastore(err)
	}
	return nil
}

func financialFieldMessage(field string) string {
	switch field {
	case "Type":
		return "O campo 'type' deve ser 'receita' ou 'despesa'."
	case "Description":
		return "O campo 'description' é obrigatório."
	case "Amount":
		return "O campo 'amount' deve ser um número positivo."
	case "DueDate":
		return "O campo 'due_date' é obrigatório."
	default:
		return appErrors.ErrValidation.Message
	}
}
