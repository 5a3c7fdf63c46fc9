package ranking

import (
	"fmt"

	"github.com/classcore/results-api/internal/models"
)

// Dataset is the fully-materialised snapshot an Analyzer operates on. The
// surrounding application fetches it; the engine only reads it.
type Dataset struct {
	Students    []models.Student
	Classes     []models.AcademicClass
	Enrollments []models.Enrollment
	Reports     []models.TermReport
	Scores      []models.ScoreEntry
}

// Analyzer answers ranking, statistics and integrity queries over one
// Dataset. Construction builds id lookup maps once so the per-row filters
// stay O(1) regardless of roster size.
type Analyzer struct {
	data     Dataset
	students map[string]models.Student
	classes  map[string]models.AcademicClass
}

// NewAnalyzer builds an Analyzer over the snapshot.
func NewAnalyzer(data Dataset) *Analyzer {
	a := &Analyzer{
		data:     data,
		students: make(map[string]models.Student, len(data.Students)),
		classes:  make(map[string]models.AcademicClass, len(data.Classes)),
	}
	for _, s := range data.Students {
		a.students[s.ID] = s
	}
	for _, c := range data.Classes {
		a.classes[c.ID] = c
	}
	return a
}

// eligible reports whether the student may participate in ranking and
// statistics under the scope. A student missing from the snapshot is
// treated as inactive; a student without a campus bypasses the campus
// filter.
func (a *Analyzer) eligible(studentID string, scope models.ResultScope) bool {
	s, ok := a.students[studentID]
	if !ok {
		return false
	}
	if !s.IsActive() {
		return false
	}
	if scope.CampusID != "" && s.CampusID != nil && *s.CampusID != scope.CampusID {
		return false
	}
	return true
}

// classMatches applies the scope's session filter, and arm filter when
// withArm is set, to the class behind a row. Rows whose class is missing
// from the snapshot fail any filter that is actually set.
func (a *Analyzer) classMatches(classID string, scope models.ResultScope, withArm bool) bool {
	armFilter := withArm && scope.Arm != ""
	if scope.SessionLabel == "" && !armFilter {
		return true
	}
	c, ok := a.classes[classID]
	if !ok {
		return false
	}
	if scope.SessionLabel != "" && c.SessionLabel != scope.SessionLabel {
		return false
	}
	if armFilter && c.Arm != scope.Arm {
		return false
	}
	return true
}

// ReportFor returns the student's term report when one exists in the
// snapshot. With several rows for the same student the first wins, matching
// the snapshot order used everywhere else.
func (a *Analyzer) ReportFor(studentID, termID string) (models.TermReport, bool) {
	for _, r := range a.data.Reports {
		if r.StudentID == studentID && r.TermID == termID {
			return r, true
		}
	}
	return models.TermReport{}, false
}

// studentLabel resolves a student id to its display name, falling back to
// the raw id for audit messages about unknown students.
func (a *Analyzer) studentLabel(studentID string) string {
	if s, ok := a.students[studentID]; ok && s.FullName != "" {
		return s.FullName
	}
	return fmt.Sprintf("student ID %s", studentID)
}
