package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voll-fit/voll-api/internal/models"
	"github.com/voll-fit/voll-api/pkg/response"
)

type summaryService interface {
	Overview(ctx context.Context) (*models.Summary, bool, error)
}

// SummaryHandler exposes the derived dashboard aggregates.
type SummaryHandler struct {
	summary summaryService
}

// NewSummaryHandler constructs SummaryHandler.
func NewSummaryHandler(summary summaryService) *SummaryHandler {
	return &SummaryHandler{summary: summary}
}

// Overview godoc
// @Summary Dashboard summary
// @Tags Summary
// @Produce json
// @Success 200 {object} models.Summary
// @Router /summary [get]
func (h *SummaryHandler) Overview(c *gin.Context) {
	summary, cacheHit, err := h.summary.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if cacheHit {
		c.Header("X-Cache", "hit")
	}
	response.JSON(c, http.StatusOK, summary)
}
