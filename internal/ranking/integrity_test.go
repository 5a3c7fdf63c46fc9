package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classcore/results-api/internal/models"
)

func TestIntegrityCleanDataNoIssues(t *testing.T) {
	a := NewAnalyzer(Dataset{
		Students: []models.Student{
			student("1", models.StudentStatusActive),
			student("2", models.StudentStatusActive),
		},
		Classes: []models.AcademicClass{class("10", "SS1", "A", "2025/2026")},
		Enrollments: []models.Enrollment{
			enrollment("1", "10", "1"),
			enrollment("2", "10", "1"),
		},
		Reports: []models.TermReport{
			report("1", "10", "1", 80),
			report("2", "10", "1", 70),
		},
		Scores: []models.ScoreEntry{
			score("1", "10", "Mathematics", "1", 80),
			score("1", "10", "English", "1", 75),
			score("2", "10", "Mathematics", "1", 70),
		},
	})

	assert.Empty(t, a.IntegrityIssues(models.ResultScope{TermID: "1"}))
}

func TestIntegrityDuplicateReportEmitsOneIssue(t *testing.T) {
	a := NewAnalyzer(Dataset{
		Students:    []models.Student{student("1", models.StudentStatusActive)},
		Classes:     []models.AcademicClass{class("10", "SS1", "A", "2025/2026")},
		Enrollments: []models.Enrollment{enrollment("1", "10", "1")},
		Reports: []models.TermReport{
			report("1", "10", "1", 80),
			{ID: "rep-dup", StudentID: "1", ClassID: "10", TermID: "1", AverageScore: 81},
		},
	})

	issues := a.IntegrityIssues(models.ResultScope{TermID: "1"})
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueDuplicateResult, issues[0].Type)
	assert.Contains(t, issues[0].Message, "Student 1")
}

func TestIntegrityReportWithoutEnrollment(t *testing.T) {
	a := NewAnalyzer(Dataset{
		Students: []models.Student{student("5", models.StudentStatusActive)},
		Classes:  []models.AcademicClass{class("10", "SS1", "A", "2025/2026")},
		Reports:  []models.TermReport{report("5", "10", "1", 64)},
	})

	issues := a.IntegrityIssues(models.ResultScope{TermID: "1"})
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueOrphanResult, issues[0].Type)
	assert.Contains(t, issues[0].Message, "Student 5")
	assert.Contains(t, issues[0].Message, "without enrollment")
}

func TestIntegrityEnrollmentForMissingStudent(t *testing.T) {
	a := NewAnalyzer(Dataset{
		Classes:     []models.AcademicClass{class("10", "SS1", "A", "2025/2026")},
		Enrollments: []models.Enrollment{enrollment("ghost", "10", "1")},
	})

	issues := a.IntegrityIssues(models.ResultScope{TermID: "1"})
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueOrphanResult, issues[0].Type)
	assert.Contains(t, issues[0].Message, "student ID ghost")
	assert.Contains(t, issues[0].Message, "student record not found")
}

func TestIntegrityDuplicateScoreEntryNamesSubject(t *testing.T) {
	a := NewAnalyzer(Dataset{
		Students:    []models.Student{student("1", models.StudentStatusActive)},
		Classes:     []models.AcademicClass{class("10", "SS1", "A", "2025/2026")},
		Enrollments: []models.Enrollment{enrollment("1", "10", "1")},
		Scores: []models.ScoreEntry{
			score("1", "10", "Mathematics", "1", 80),
			{ID: "sco-dup", StudentID: "1", ClassID: "10", SubjectName: "Mathematics", TermID: "1", TotalScore: 82},
			score("1", "10", "English", "1", 70),
		},
	})

	issues := a.IntegrityIssues(models.ResultScope{TermID: "1"})
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueDuplicateResult, issues[0].Type)
	assert.Contains(t, issues[0].Message, "Mathematics")
}

func TestIntegrityScopeNarrowsAudit(t *testing.T) {
	// A report in another class of the same session must not be compared
	// against the scoped class's enrollments.
	a := NewAnalyzer(Dataset{
		Students: []models.Student{
			student("1", models.StudentStatusActive),
			student("2", models.StudentStatusActive),
		},
		Classes: []models.AcademicClass{
			class("10", "SS1", "A", "2025/2026"),
			class("11", "SS1", "B", "2025/2026"),
		},
		Enrollments: []models.Enrollment{enrollment("1", "10", "1")},
		Reports: []models.TermReport{
			report("1", "10", "1", 80),
			report("2", "11", "1", 75),
		},
	})

	issues := a.IntegrityIssues(models.ResultScope{TermID: "1", ClassID: "10"})
	assert.Empty(t, issues)
}

func TestIntegrityIgnoresStudentStatus(t *testing.T) {
	// The audit inspects data quality; a withdrawn student's duplicate
	// rows still surface.
	a := NewAnalyzer(Dataset{
		Students:    []models.Student{student("1", models.StudentStatusWithdrawn)},
		Classes:     []models.AcademicClass{class("10", "SS1", "A", "2025/2026")},
		Enrollments: []models.Enrollment{enrollment("1", "10", "1")},
		Reports: []models.TermReport{
			report("1", "10", "1", 80),
			{ID: "rep-dup", StudentID: "1", ClassID: "10", TermID: "1", AverageScore: 79},
		},
	})

	issues := a.IntegrityIssues(models.ResultScope{TermID: "1"})
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueDuplicateResult, issues[0].Type)
}

func TestIntegrityNeverEmitsMissingAssignment(t *testing.T) {
	// Active students with no rows in the scope are simply not inspected.
	a := NewAnalyzer(Dataset{
		Students: []models.Student{
			student("1", models.StudentStatusActive),
			student("2", models.StudentStatusActive),
		},
		Classes:     []models.AcademicClass{class("10", "SS1", "A", "2025/2026")},
		Enrollments: []models.Enrollment{enrollment("1", "10", "1")},
		Reports:     []models.TermReport{report("1", "10", "1", 80)},
	})

	for _, issue := range a.IntegrityIssues(models.ResultScope{TermID: "1"}) {
		assert.NotEqual(t, models.IssueMissingAssignment, issue.Type)
	}
}
