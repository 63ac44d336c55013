package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/voll-fit/voll-api/internal/models"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
)

type scheduleRepository interface {
	List(ctx context.Context) ([]models.ScheduleDetail, error)
	Create(ctx context.Context, schedule *models.Schedule) (*models.ScheduleDetail, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.ScheduleDetail, error)
	Delete(ctx context.Context, id string) error
}

// CreateScheduleRequest holds the payload for booking a class slot.
// Field order drives which missing-field message wins.
type CreateScheduleRequest struct {
	StudentID     string `json:"student_id" validate:"required"`
	ScheduledDate string `json:"scheduled_date" validate:"required"`
	ScheduledTime string `json:"scheduled_time" validate:"required"`
	Description   string `json:"description"`
	Status        string `json:"status"`
}

// UpdateStatusRequest is the body of a status-only PATCH.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ScheduleService handles agenda use-cases.
type ScheduleService struct {
	repo      scheduleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService constructs the schedule service.
func NewScheduleService(repo scheduleRepository, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, validator: validate, logger: logger}
}

// List returns all schedules with student contact data joined in.
func (s *ScheduleService) List(ctx context.Context) ([]models.ScheduleDetail, error) {
	schedules, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	return schedules, nil
}

// Create books a class slot for a student.
func (s *ScheduleService) Create(ctx context.Context, req CreateScheduleRequest) (*models.ScheduleDetail, error) {
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.ScheduledDate = strings.TrimSpace(req.ScheduledDate)
	req.ScheduledTime = strings.TrimSpace(req.ScheduledTime)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, scheduleFieldMessage)
	}

	schedule := &models.Schedule{
		StudentID:     &req.StudentID,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Description:   optionalText(req.Description),
		Status:        defaultText(req.Status, models.ScheduleStatusBooked),
	}
	detail, err := s.repo.Create(ctx, schedule)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	return detail, nil
}

// UpdateStatus mutates only the status field of a schedule.
func (s *ScheduleService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*models.ScheduleDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "ID ausente")
	}
	if strings.TrimSpace(req.Status) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Campo 'status' ausente")
	}
	detail, err := s.repo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, appErrors.Datastore(err)
	}
	return detail, nil
}

// Delete removes a schedule by id.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "ID ausente")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Datastore(err)
	}
	return nil
}

func scheduleFieldMessage(field string) string {
	switch field {
	case "StudentID":
		return "O campo 'student_id' é obrigatório."
	case "ScheduledDate":
		return "O campo 'scheduled_date' é obrigatório."
	case "ScheduledTime":
		return "O campo 'scheduled_time' é obrigatório."
	default:
		return appErrors.ErrValidation.Message
	}
}
