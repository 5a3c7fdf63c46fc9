package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/classcore/results-api/internal/models"
)

func newResultRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestResultRepositoryStudents(t *testing.T) {
	db, mock, cleanup := newResultRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"id", "admission_no", "full_name", "status", "campus_id"}).
		AddRow("stu-1", "ADM-001", "Ada Obi", models.StudentStatusActive, "campus-1").
		AddRow("stu-2", "ADM-002", "Ben Eze", models.StudentStatusWithdrawn, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, admission_no, full_name, status, campus_id FROM students")).
		WillReturnRows(rows)

	students, err := repo.Students(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, "Ada Obi", students[0].FullName)
	require.Nil(t, students[1].CampusID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryClasses(t *testing.T) {
	db, mock, cleanup := newResultRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"id", "level", "arm", "session_label"}).
		AddRow("class-1", "JSS1", "Gold", "2025/2026")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, level, arm, session_label FROM academic_classes")).
		WillReturnRows(rows)

	classes, err := repo.Classes(context.Background())
	require.NoError(t, err)
	require.Len(t, classes, 1)
	require.Equal(t, "JSS1", classes[0].Level)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryEnrollmentsByTerm(t *testing.T) {
	db, mock, cleanup := newResultRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_id", "academic_class_id", "enrolled_term_id"}).
		AddRow("enr-1", "stu-1", "class-1", "term-1")
	mock.ExpectQuery(`SELECT id, student_id, academic_class_id, enrolled_term_id\s+FROM academic_class_students WHERE enrolled_term_id = \$1`).
		WithArgs("term-1").
		WillReturnRows(rows)

	enrollments, err := repo.EnrollmentsByTerm(context.Background(), "term-1")
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.Equal(t, "class-1", enrollments[0].ClassID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryReportsByTerm(t *testing.T) {
	db, mock, cleanup := newResultRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_id", "academic_class_id", "term_id", "average_score"}).
		AddRow("rep-1", "stu-1", "class-1", "term-1", 87.5)
	mock.ExpectQuery(`SELECT id, student_id, academic_class_id, term_id, average_score\s+FROM student_term_reports WHERE term_id = \$1`).
		WithArgs("term-1").
		WillReturnRows(rows)

	reports, err := repo.ReportsByTerm(context.Background(), "term-1")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.InDelta(t, 87.5, reports[0].AverageScore, 0.0001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResultRepositoryScoresByTermError(t *testing.T) {
	db, mock, cleanup := newResultRepoMock(t)
	defer cleanup()
	repo := NewResultRepository(db)

	mock.ExpectQuery(`SELECT id, student_id, academic_class_id, subject_name, term_id, total_score\s+FROM score_entries WHERE term_id = \$1`).
		WithArgs("term-1").
		WillReturnError(context.DeadlineExceeded)

	_, err := repo.ScoresByTerm(context.Background(), "term-1")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
