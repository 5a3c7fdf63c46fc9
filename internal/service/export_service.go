package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/classcore/results-api/internal/models"
	appErrors "github.com/classcore/results-api/pkg/errors"
	"github.com/classcore/results-api/pkg/export"
)

// ExportFormat selects the rendered document type.
type ExportFormat string

// Supported export formats.
const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type rankingProvider interface {
	CohortRanking(ctx context.Context, scope models.ResultScope) ([]models.CohortRanking, bool, error)
	LevelRanking(ctx context.Context, scope models.ResultScope, level string) ([]models.LevelRanking, bool, error)
}

// ExportDocument is a rendered export ready to stream to the client.
type ExportDocument struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders ranking tables as downloadable documents.
type ExportService struct {
	results rankingProvider
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(results rankingProvider, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{results: results, csv: csv, pdf: pdf, logger: logger}
}

// CohortExport renders the cohort ranking table for the scope.
func (s *ExportService) CohortExport(ctx context.Context, scope models.ResultScope, format ExportFormat) (*ExportDocument, error) {
	rankings, _, err := s.results.CohortRanking(ctx, scope)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: []string{"Student ID", "Rank", "Total Ranked"}}
	for _, r := range rankings {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student ID":   r.StudentID,
			"Rank":         strconv.Itoa(r.Rank),
			"Total Ranked": strconv.Itoa(r.Total),
		})
	}

	return s.render(dataset, "Cohort Ranking", "cohort_ranking", scope.TermID, format)
}

// LevelExport renders the level's dual ranking table for the scope.
func (s *ExportService) LevelExport(ctx context.Context, scope models.ResultScope, level string, format ExportFormat) (*ExportDocument, error) {
	rankings, _, err := s.results.LevelRanking(ctx, scope, level)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: []string{"Student ID", "Arm Rank", "Arm Total", "Level Rank", "Level Total"}}
	for _, r := range rankings {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student ID":  r.StudentID,
			"Arm Rank":    strconv.Itoa(r.RankInArm),
			"Arm Total":   strconv.Itoa(r.TotalInArm),
			"Level Rank":  strconv.Itoa(r.RankInLevel),
			"Level Total": strconv.Itoa(r.TotalInLevel),
		})
	}

	title := fmt.Sprintf("Level %s Ranking", level)
	return s.render(dataset, title, "level_"+sanitizeFilePart(level)+"_ranking", scope.TermID, format)
}

func (s *ExportService) render(dataset export.Dataset, title, stem, termID string, format ExportFormat) (*ExportDocument, error) {
	var (
		payload     []byte
		err         error
		contentType string
		ext         string
	)
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
		ext = "csv"
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
		ext = "pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, fmt.Errorf("render %s export: %w", format, err)
	}

	filename := fmt.Sprintf("%s_%s_%s.%s", stem, sanitizeFilePart(termID), time.Now().UTC().Format("20060102"), ext)
	return &ExportDocument{Filename: filename, ContentType: contentType, Payload: payload}, nil
}

func sanitizeFilePart(part string) string {
	part = strings.ToLower(strings.TrimSpace(part))
	var builder strings.Builder
	builder.Grow(len(part))
	for _, r := range part {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		default:
			builder.WriteByte('-')
		}
	}
	return strings.Trim(builder.String(), "-")
}
