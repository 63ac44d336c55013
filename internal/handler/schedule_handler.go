package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voll-fit/voll-api/internal/models"
	"github.com/voll-fit/voll-api/internal/service"
	appErrors "github.com/voll-fit/voll-api/pkg/errors"
	"github.com/voll-fit/voll-api/pkg/response"
)

type scheduleService interface {
	List(ctx context.Context) ([]models.ScheduleDetail, error)
	Create(ctx context.Context, req service.CreateScheduleRequest) (*models.ScheduleDetail, error)
	UpdateStatus(ctx context.Context, id string, req service.UpdateStatusRequest) (*models.ScheduleDetail, error)
	Delete(ctx context.Context, id string) error
}

// ScheduleHandler exposes the agenda endpoints.
type ScheduleHandler struct {
	schedules scheduleService
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(schedules scheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// List godoc
// @Summary List schedules with student contact data
// @Tags Schedules
// @Produce json
// @Success 200 {array} models.ScheduleDetail
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.schedules.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules)
}

// Create godoc
// @Summary Book a class slot
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body service.CreateScheduleRequest true "Schedule payload"
// @Success 201 {object} models.ScheduleDetail
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Corpo da requisição inválido."))
		return
	}
	schedule, err := h.schedules.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, schedule)
}

// UpdateStatus godoc
// @Summary Update schedule status
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body service.UpdateStatusRequest true "New status"
// @Success 200 {object} models.ScheduleDetail
// @Router /schedules/{id} [patch]
func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Corpo da requisição inválido."))
		return
	}
	schedule, err := h.schedules.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule)
}

// Delete godoc
// @Summary Remove schedule
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 204
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.schedules.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
