package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/voll-fit/voll-api/internal/models"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// CreateStudentRequest holds the payload for registering a student.
type CreateStudentRequest struct {
	Name   string `json:"name" validate:"required,min=2"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
	Plan   string `json:"plan"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns all students, newest first.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	return students, nil
}

// Create registers a new student. Only the name is mandatory; the other
// fields fall back to NULL or the default status.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, studentFieldMessage)
	}

	student := &models.Student{
		Name:   req.Name,
		Email:  optionalText(req.Email),
		Phone:  optionalText(req.Phone),
		Status: defaultText(req.Status, models.StudentStatusActive),
		Plan:   optionalText(req.Plan),
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Datastore(err)
	}
	return student, nil
}

// Delete removes a student by id. Referential behaviour for schedules that
// still point at the student is left to the database.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "ID ausente")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Datastore(err)
	}
	return nil
}

func studentFieldMessage(field string) string {
	switch field {
	case "Name":
		return "O campo 'nome' é obrigatório."
	default:
		return appErrors.ErrValidation.Message
	}
}
