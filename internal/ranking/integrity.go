package ranking

import (
	"fmt"

	"github.com/classcore/results-api/internal/models"
)

// IntegrityIssues audits the scoped enrollment, report and score rows for
// cross-referential defects: enrollments pointing at missing students,
// results without a backing enrollment, and duplicate rows for keys that
// expect exactly one.
//
// The audit is enrollment-scoped: students who never touch the scope
// through an enrollment, report or score row are not inspected, so a
// student legitimately outside the scope can never be flagged. An earlier
// policy that swept all active students produced exactly those false
// positives and is retired. Student status is ignored here — excluding
// inactive students would hide real duplicates.
//
// The audit always completes; malformed input only produces more findings.
func (a *Analyzer) IntegrityIssues(scope models.ResultScope) []models.IntegrityIssue {
	var issues []models.IntegrityIssue

	inScope := func(classID string) bool {
		if scope.ClassID != "" && classID != scope.ClassID {
			return false
		}
		return a.classMatches(classID, scope, true)
	}

	enrolled := make(map[string]bool)
	for _, e := range a.data.Enrollments {
		if e.TermID != scope.TermID || !inScope(e.ClassID) {
			continue
		}
		enrolled[e.StudentID] = true
		if _, ok := a.students[e.StudentID]; !ok {
			issues = append(issues, models.IntegrityIssue{
				Type:    models.IssueOrphanResult,
				Message: fmt.Sprintf("Enrollment exists for student ID %s but student record not found", e.StudentID),
			})
		}
	}

	type reportKey struct {
		studentID string
		termID    string
		classID   string
	}
	reportCounts := make(map[reportKey]int)
	var reportOrder []reportKey
	for _, r := range a.data.Reports {
		if r.TermID != scope.TermID || !inScope(r.ClassID) {
			continue
		}
		if !enrolled[r.StudentID] {
			issues = append(issues, models.IntegrityIssue{
				Type:    models.IssueOrphanResult,
				Message: fmt.Sprintf("Result exists for %s without enrollment in this class", a.studentLabel(r.StudentID)),
			})
		}
		key := reportKey{r.StudentID, r.TermID, r.ClassID}
		if reportCounts[key] == 0 {
			reportOrder = append(reportOrder, key)
		}
		reportCounts[key]++
	}
	for _, key := range reportOrder {
		if count := reportCounts[key]; count > 1 {
			issues = append(issues, models.IntegrityIssue{
				Type:    models.IssueDuplicateResult,
				Message: fmt.Sprintf("%d result rows for %s in the same term and class", count, a.studentLabel(key.studentID)),
			})
		}
	}

	type scoreKey struct {
		studentID   string
		classID     string
		subjectName string
		termID      string
	}
	scoreCounts := make(map[scoreKey]int)
	var scoreOrder []scoreKey
	for _, e := range a.data.Scores {
		if e.TermID != scope.TermID || !inScope(e.ClassID) {
			continue
		}
		key := scoreKey{e.StudentID, e.ClassID, e.SubjectName, e.TermID}
		if scoreCounts[key] == 0 {
			scoreOrder = append(scoreOrder, key)
		}
		scoreCounts[key]++
	}
	for _, key := range scoreOrder {
		if count := scoreCounts[key]; count > 1 {
			issues = append(issues, models.IntegrityIssue{
				Type:    models.IssueDuplicateResult,
				Message: fmt.Sprintf("%d %s score entries for %s in the same term and class", count, key.subjectName, a.studentLabel(key.studentID)),
			})
		}
	}

	return issues
}
