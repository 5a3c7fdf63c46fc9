package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/classcore/results-api/internal/models"
)

// ResultRepository fetches the academic snapshot collections the ranking
// engine consumes. All reads are snapshot-shaped: fully-materialised slices,
// never cursors, and the academic tables are never written.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository constructs the repository.
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Students returns every student record.
func (r *ResultRepository) Students(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, admission_no, full_name, status, campus_id FROM students`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Classes returns every academic class offering.
func (r *ResultRepository) Classes(ctx context.Context) ([]models.AcademicClass, error) {
	const query = `SELECT id, level, arm, session_label FROM academic_classes`
	var classes []models.AcademicClass
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list academic classes: %w", err)
	}
	return classes, nil
}

// EnrollmentsByTerm returns class enrollments for the term.
func (r *ResultRepository) EnrollmentsByTerm(ctx context.Context, termID string) ([]models.Enrollment, error) {
	const query = `SELECT id, student_id, academic_class_id, enrolled_term_id
        FROM academic_class_students WHERE enrolled_term_id = $1`
	var enrollments []models.Enrollment
	if err := r.db.SelectContext(ctx, &enrollments, query, termID); err != nil {
		return nil, fmt.Errorf("list enrollments for term %s: %w", termID, err)
	}
	return enrollments, nil
}

// ReportsByTerm returns computed term reports for the term.
func (r *ResultRepository) ReportsByTerm(ctx context.Context, termID string) ([]models.TermReport, error) {
	const query = `SELECT id, student_id, academic_class_id, term_id, average_score
        FROM student_term_reports WHERE term_id = $1`
	var reports []models.TermReport
	if err := r.db.SelectContext(ctx, &reports, query, termID); err != nil {
		return nil, fmt.Errorf("list term reports for term %s: %w", termID, err)
	}
	return reports, nil
}

// ScoresByTerm returns per-subject score entries for the term.
func (r *ResultRepository) ScoresByTerm(ctx context.Context, termID string) ([]models.ScoreEntry, error) {
	const query = `SELECT id, student_id, academic_class_id, subject_name, term_id, total_score
        FROM score_entries WHERE term_id = $1`
	var scores []models.ScoreEntry
	if err := r.db.SelectContext(ctx, &scores, query, termID); err != nil {
		return nil, fmt.Errorf("list score entries for term %s: %w", termID, err)
	}
	return scores, nil
}
