package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classcore/results-api/internal/service"
	appErrors "github.com/classcore/results-api/pkg/errors"
	"github.com/classcore/results-api/pkg/response"
)

// ExportHandler streams ranking tables as downloadable documents.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs the export handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Cohort godoc
// @Summary Export cohort ranking
// @Description Streams the cohort ranking table as CSV or PDF.
// @Tags exports
// @Produce text/csv
// @Produce application/pdf
// @Param term_id query string true "Term ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /results/export/cohort [get]
func (h *ExportHandler) Cohort(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	doc, err := h.exports.CohortExport(c.Request.Context(), parseScope(c), parseFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	stream(c, doc)
}

// Level godoc
// @Summary Export level ranking
// @Description Streams a level's dual ranking table as CSV or PDF.
// @Tags exports
// @Produce text/csv
// @Produce application/pdf
// @Param term_id query string true "Term ID"
// @Param level query string true "Class level"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /results/export/level [get]
func (h *ExportHandler) Level(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	level := c.Query("level")
	doc, err := h.exports.LevelExport(c.Request.Context(), parseScope(c), level, parseFormat(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	stream(c, doc)
}

func parseFormat(c *gin.Context) service.ExportFormat {
	format := c.DefaultQuery("format", string(service.ExportFormatCSV))
	return service.ExportFormat(format)
}

func stream(c *gin.Context, doc *service.ExportDocument) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Payload)
}
