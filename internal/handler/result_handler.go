package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classcore/results-api/internal/middleware"
	"github.com/classcore/results-api/internal/models"
	"github.com/classcore/results-api/internal/service"
	appErrors "github.com/classcore/results-api/pkg/errors"
	"github.com/classcore/results-api/pkg/response"
)

// ResultHandler exposes ranking, statistics and integrity endpoints.
type ResultHandler struct {
	results *service.ResultService
}

// NewResultHandler constructs the result handler.
func NewResultHandler(results *service.ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// Cohort godoc
// @Summary Cohort ranking
// @Description Dense-ranks every eligible term report in the scope by average score.
// @Tags results
// @Produce json
// @Param term_id query string true "Term ID"
// @Param campus_id query string false "Campus ID"
// @Param class_id query string false "Academic class ID"
// @Param arm query string false "Class arm"
// @Param session query string false "Session label"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results/cohort [get]
func (h *ResultHandler) Cohort(c *gin.Context) {
	if h.results == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	scope := parseScope(c)
	start := time.Now()
	rankings, cacheHit, err := h.results.CohortRanking(c.Request.Context(), scope)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, rankings, cacheHit, start)
}

// Level godoc
// @Summary Level ranking
// @Description Ranks a level's reports level-wide and within each arm.
// @Tags results
// @Produce json
// @Param term_id query string true "Term ID"
// @Param level query string true "Class level"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results/level [get]
func (h *ResultHandler) Level(c *gin.Context) {
	if h.results == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	scope := parseScope(c)
	level := c.Query("level")
	start := time.Now()
	rankings, cacheHit, err := h.results.LevelRanking(c.Request.Context(), scope, level)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, rankings, cacheHit, start)
}

// Subjects godoc
// @Summary Subject ranking
// @Description Ranks per-subject score entries for a level, level-wide and per arm.
// @Tags results
// @Produce json
// @Param term_id query string true "Term ID"
// @Param level query string true "Class level"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results/subjects [get]
func (h *ResultHandler) Subjects(c *gin.Context) {
	if h.results == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	scope := parseScope(c)
	level := c.Query("level")
	start := time.Now()
	rankings, cacheHit, err := h.results.SubjectRanking(c.Request.Context(), scope, level)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, rankings, cacheHit, start)
}

// Percentile godoc
// @Summary Campus percentile
// @Description Computes one student's standing across the campus population for the term.
// @Tags results
// @Produce json
// @Param term_id query string true "Term ID"
// @Param student_id query string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results/percentile [get]
func (h *ResultHandler) Percentile(c *gin.Context) {
	if h.results == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	scope := parseScope(c)
	studentID := c.Query("student_id")
	start := time.Now()
	payload, cacheHit, err := h.results.Percentile(c.Request.Context(), scope, studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, payload, cacheHit, start)
}

// Statistics godoc
// @Summary Result statistics
// @Description Aggregates enrollment and result counts for the scope.
// @Tags results
// @Produce json
// @Param term_id query string true "Term ID"
// @Param passing_score query number false "Pass threshold override"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results/statistics [get]
func (h *ResultHandler) Statistics(c *gin.Context) {
	if h.results == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	scope := parseScope(c)
	passingScore, err := parsePassingScore(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	start := time.Now()
	stats, cacheHit, err := h.results.Statistics(c.Request.Context(), scope, passingScore)
	if err != nil {
		response.Error(c, err)
		return
	}
	respond(c, stats, cacheHit, start)
}

// Integrity godoc
// @Summary Integrity audit
// @Description Reports orphaned and duplicated result rows inside the scope.
// @Tags results
// @Produce json
// @Param term_id query string true "Term ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results/integrity [get]
func (h *ResultHandler) Integrity(c *gin.Context) {
	if h.results == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	scope := parseScope(c)
	start := time.Now()
	issues, cacheHit, err := h.results.IntegrityAudit(c.Request.Context(), scope)
	if err != nil {
		response.Error(c, err)
		return
	}
	if issues == nil {
		issues = []models.IntegrityIssue{}
	}
	respond(c, issues, cacheHit, start)
}

// System godoc
// @Summary Instrumentation snapshot
// @Tags results
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /results/system [get]
func (h *ResultHandler) System(c *gin.Context) {
	if h.results == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	metrics := h.results.SystemMetrics()
	respond(c, metrics, false, start)
}

// InvalidateCache godoc
// @Summary Invalidate cached rankings
// @Description Drops every cached ranking payload for the term, forcing the next reads to recompute.
// @Tags results
// @Param term_id query string true "Term ID"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Router /results/cache [delete]
func (h *ResultHandler) InvalidateCache(c *gin.Context) {
	if h.results == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	termID := c.Query("term_id")
	if termID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "term_id is required"))
		return
	}
	if err := h.results.InvalidateTerm(c.Request.Context(), termID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func parsePassingScore(c *gin.Context) (float64, error) {
	raw := c.Query("passing_score")
	if raw == "" {
		return 0, nil
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || score <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid passing_score parameter")
	}
	return score, nil
}

func parseScope(c *gin.Context) models.ResultScope {
	return models.ResultScope{
		TermID:       c.Query("term_id"),
		CampusID:     c.Query("campus_id"),
		ClassID:      c.Query("class_id"),
		Arm:          c.Query("arm"),
		SessionLabel: c.Query("session"),
	}
}

func respond(c *gin.Context, data interface{}, cacheHit bool, start time.Time) {
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, data, nil, meta)
}
