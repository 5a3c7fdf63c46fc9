package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/classcore/results-api/internal/models"
	"github.com/classcore/results-api/internal/ranking"
	appErrors "github.com/classcore/results-api/pkg/errors"
)

// ResultSnapshotRepository describes the persistence layer required by ResultService.
type ResultSnapshotRepository interface {
	Students(ctx context.Context) ([]models.Student, error)
	Classes(ctx context.Context) ([]models.AcademicClass, error)
	EnrollmentsByTerm(ctx context.Context, termID string) ([]models.Enrollment, error)
	ReportsByTerm(ctx context.Context, termID string) ([]models.TermReport, error)
	ScoresByTerm(ctx context.Context, termID string) ([]models.ScoreEntry, error)
}

// PercentilePayload wraps the nullable percentile so a nil result survives a
// round trip through the JSON cache.
type PercentilePayload struct {
	StudentID  string `json:"student_id"`
	Percentile *int   `json:"percentile"`
}

// ResultService computes rankings, statistics and integrity audits over the
// academic snapshot. All read paths report whether data came from cache.
type ResultService struct {
	repo         ResultSnapshotRepository
	cache        *CacheService
	metrics      *MetricsService
	validate     *validator.Validate
	logger       *zap.Logger
	passingScore float64
}

// NewResultService constructs a result service.
func NewResultService(repo ResultSnapshotRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger, passingScore float64) *ResultService {
	return &ResultService{
		repo:         repo,
		cache:        cache,
		metrics:      metrics,
		validate:     validator.New(),
		logger:       logger,
		passingScore: passingScore,
	}
}

// CohortRanking ranks every eligible report in the scope by average score.
func (s *ResultService) CohortRanking(ctx context.Context, scope models.ResultScope) ([]models.CohortRanking, bool, error) {
	if err := s.validateScope(scope); err != nil {
		return nil, false, err
	}

	cacheKey := makeResultCacheKey("cohort", scope)
	var cached []models.CohortRanking
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		return nil, false, fmt.Errorf("get cohort cache: %w", err)
	} else if hit {
		return cached, true, nil
	}

	analyzer, err := s.loadAnalyzer(ctx, scope.TermID, false)
	if err != nil {
		return nil, false, err
	}
	rankings := analyzer.RankCohort(scope)
	s.cacheSet(ctx, cacheKey, rankings)
	return rankings, false, nil
}

// LevelRanking ranks a level's reports both level-wide and within each arm.
func (s *ResultService) LevelRanking(ctx context.Context, scope models.ResultScope, level string) ([]models.LevelRanking, bool, error) {
	if err := s.validateScope(scope); err != nil {
		return nil, false, err
	}
	if level == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "level is required")
	}

	cacheKey := makeResultCacheKey("level", scope, level)
	var cached []models.LevelRanking
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		return nil, false, fmt.Errorf("get level cache: %w", err)
	} else if hit {
		return cached, true, nil
	}

	analyzer, err := s.loadAnalyzer(ctx, scope.TermID, false)
	if err != nil {
		return nil, false, err
	}
	rankings := analyzer.RankLevel(scope, level)
	s.cacheSet(ctx, cacheKey, rankings)
	return rankings, false, nil
}

// SubjectRanking ranks per-subject score entries for a level, level-wide and per arm.
func (s *ResultService) SubjectRanking(ctx context.Context, scope models.ResultScope, level string) ([]models.SubjectRanking, bool, error) {
	if err := s.validateScope(scope); err != nil {
		return nil, false, err
	}
	if level == "" {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "level is required")
	}

	cacheKey := makeResultCacheKey("subjects", scope, level)
	var cached []models.SubjectRanking
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		return nil, false, fmt.Errorf("get subject cache: %w", err)
	} else if hit {
		return cached, true, nil
	}

	analyzer, err := s.loadAnalyzer(ctx, scope.TermID, true)
	if err != nil {
		return nil, false, err
	}
	rankings := analyzer.RankSubjects(scope, level)
	s.cacheSet(ctx, cacheKey, rankings)
	return rankings, false, nil
}

// Percentile computes the campus-wide percentile for one student's term
// report. The percentile is nil when the student has no report in the term
// or the comparison pool is empty.
func (s *ResultService) Percentile(ctx context.Context, scope models.ResultScope, studentID string) (PercentilePayload, bool, error) {
	if err := s.validateScope(scope); err != nil {
		return PercentilePayload{}, false, err
	}
	if studentID == "" {
		return PercentilePayload{}, false, appErrors.Clone(appErrors.ErrValidation, "student_id is required")
	}

	cacheKey := makeResultCacheKey("percentile", scope, studentID)
	var cached PercentilePayload
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		return PercentilePayload{}, false, fmt.Errorf("get percentile cache: %w", err)
	} else if hit {
		return cached, true, nil
	}

	analyzer, err := s.loadAnalyzer(ctx, scope.TermID, false)
	if err != nil {
		return PercentilePayload{}, false, err
	}

	payload := PercentilePayload{StudentID: studentID}
	if target, ok := analyzer.ReportFor(studentID, scope.TermID); ok {
		payload.Percentile = analyzer.CampusPercentile(scope, target)
	}
	s.cacheSet(ctx, cacheKey, payload)
	return payload, false, nil
}

// Statistics aggregates enrollment and result counts for the scope. A
// passingScore of zero or less falls back to the configured threshold.
func (s *ResultService) Statistics(ctx context.Context, scope models.ResultScope, passingScore float64) (models.ResultStatistics, bool, error) {
	if err := s.validateScope(scope); err != nil {
		return models.ResultStatistics{}, false, err
	}
	if passingScore <= 0 {
		passingScore = s.passingScore
	}

	cacheKey := makeResultCacheKey("statistics", scope, strconv.FormatFloat(passingScore, 'f', -1, 64))
	var cached models.ResultStatistics
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		return models.ResultStatistics{}, false, fmt.Errorf("get statistics cache: %w", err)
	} else if hit {
		return cached, true, nil
	}

	analyzer, err := s.loadAnalyzer(ctx, scope.TermID, false)
	if err != nil {
		return models.ResultStatistics{}, false, err
	}
	stats := analyzer.Statistics(scope, passingScore)
	s.cacheSet(ctx, cacheKey, stats)
	return stats, false, nil
}

// IntegrityAudit reports orphaned and duplicated result rows inside the scope.
// Audits always read the live snapshot.
func (s *ResultService) IntegrityAudit(ctx context.Context, scope models.ResultScope) ([]models.IntegrityIssue, bool, error) {
	if err := s.validateScope(scope); err != nil {
		return nil, false, err
	}

	analyzer, err := s.loadAnalyzer(ctx, scope.TermID, true)
	if err != nil {
		return nil, false, err
	}
	return analyzer.IntegrityIssues(scope), false, nil
}

// SystemMetrics returns the instrumentation snapshot.
func (s *ResultService) SystemMetrics() models.SystemMetrics {
	if s.metrics == nil {
		return models.SystemMetrics{}
	}
	return s.metrics.Snapshot()
}

// InvalidateTerm drops cached rankings for the term after upstream recomputes.
func (s *ResultService) InvalidateTerm(ctx context.Context, termID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx, "results:*:term="+escapeKeyPart(termID)+"*")
}

func (s *ResultService) validateScope(scope models.ResultScope) error {
	if err := s.validate.Struct(scope); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "term_id is required")
	}
	return nil
}

// loadAnalyzer materialises the term snapshot. Score entries are only
// fetched for operations that consume them.
func (s *ResultService) loadAnalyzer(ctx context.Context, termID string, withScores bool) (*ranking.Analyzer, error) {
	data := ranking.Dataset{}

	start := time.Now()
	students, err := s.repo.Students(ctx)
	if err != nil {
		return nil, err
	}
	s.observeQuery("students", start)
	data.Students = students

	start = time.Now()
	classes, err := s.repo.Classes(ctx)
	if err != nil {
		return nil, err
	}
	s.observeQuery("classes", start)
	data.Classes = classes

	start = time.Now()
	enrollments, err := s.repo.EnrollmentsByTerm(ctx, termID)
	if err != nil {
		return nil, err
	}
	s.observeQuery("enrollments", start)
	data.Enrollments = enrollments

	start = time.Now()
	reports, err := s.repo.ReportsByTerm(ctx, termID)
	if err != nil {
		return nil, err
	}
	s.observeQuery("term_reports", start)
	data.Reports = reports

	if withScores {
		start = time.Now()
		scores, err := s.repo.ScoresByTerm(ctx, termID)
		if err != nil {
			return nil, err
		}
		s.observeQuery("score_entries", start)
		data.Scores = scores
	}

	return ranking.NewAnalyzer(data), nil
}

func (s *ResultService) observeQuery(label string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveDBQuery(label, time.Since(start))
	}
}

func (s *ResultService) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, 0); err != nil && s.logger != nil {
		s.logger.Warn("cache rankings", zap.String("key", key), zap.Error(err))
	}
}

// makeResultCacheKey builds a cache key covering every scope dimension.
// Optional segments carry a field tag, so scopes that set different fields
// to the same value can never collide on one key.
func makeResultCacheKey(operation string, scope models.ResultScope, extra ...string) string {
	var builder strings.Builder
	builder.Grow(64)
	builder.WriteString("results:")
	builder.WriteString(operation)
	builder.WriteString(":term=")
	builder.WriteString(escapeKeyPart(scope.TermID))

	writeTagged := func(tag, value string) {
		if value == "" {
			return
		}
		builder.WriteByte(':')
		builder.WriteString(tag)
		builder.WriteByte('=')
		builder.WriteString(escapeKeyPart(value))
	}
	writeTagged("campus", scope.CampusID)
	writeTagged("class", scope.ClassID)
	writeTagged("arm", scope.Arm)
	writeTagged("session", scope.SessionLabel)

	for _, part := range extra {
		builder.WriteByte(':')
		builder.WriteString(escapeKeyPart(part))
	}
	return builder.String()
}

func escapeKeyPart(part string) string {
	return strings.ReplaceAll(part, ":", "|")
}
