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

type financialService interface {
	List(ctx context.Context) ([]models.FinancialEntry, error)
	Create(ctx context.Context, req service.CreateFinancialEntryRequest) (*models.FinancialEntry, error)
	UpdateStatus(ctx context.Context, id string, req service.UpdateStatusRequest) (*models.FinancialEntry, error)
	Delete(ctx context.Context, id string) error
}

type statementExporter interface {
	Statement(ctx context.Context, format string) (*service.Statement, error)
}

// FinancialHandler exposes the receivable/payable endpoints.
type FinancialHandler struct {
	financial financialService
	exporter  statementExporter
}

// NewFinancialHandler constructs FinancialHandler. The exporter may be nil
// when statement exports are disabled.
func NewFinancialHandler(financial financialService, exporter statementExporter) *FinancialHandler {
	return &FinancialHandler{financial: financial, exporter: exporter}
}

// List godoc
// @Summary List financial entries
// @Tags Financial
// @Produce json
// @Success 200 {array} models.FinancialEntry
// @Router /financial [get]
func (h *FinancialHandler) List(c *gin.Context) {
	entries, err := h.financial.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Create godoc
// @Summary Record financial entry
// @Tags Financial
// @Accept json
// @Produce json
// @Param payload body service.CreateFinancialEntryRequest true "Entry payload"
// @Success 201 {object} models.FinancialEntry
// @Router /financial [post]
func (h *FinancialHandler) Create(c *gin.Context) {
	var req service.CreateFinancialEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Corpo da requisição inválido."))
		return
	}
	entry, err := h.financial.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

// UpdateStatus godoc
// @Summary Update entry status
// @Tags Financial
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param payload body service.UpdateStatusRequest true "New status"
// @Success 200 {object} models.FinancialEntry
// @Router /financial/{id} [patch]
func (h *FinancialHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Corpo da requisição inválido."))
		return
	}
	entry, err := h.financial.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry)
}

// Delete godoc
// @Summary Remove financial entry
// @Tags Financial
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204
// @Router /financial/{id} [delete]
func (h *FinancialHandler) Delete(c *gin.Context) {
	if err := h.financial.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Download financial statement
// @Tags Financial
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "csv or pdf"
// @Success 200 {file} binary
// @Router /financial/export [get]
func (h *FinancialHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.ErrNotFound)
		return
	}
	statement, err := h.exporter.Statement(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+statement.Filename+`"`)
	c.Data(http.StatusOK, statement.ContentType, statement.Content)
}
