package ranking

import "github.com/classcore/results-api/internal/models"

// Statistics aggregates enrollment and result figures for the scope.
// Enrolled and WithResults count distinct eligible students; AverageScore,
// PassCount and PassRate run over raw scoped report rows. PassRate keeps
// the row-count denominator even when duplicate reports exist — legacy
// report sheets are built on that figure.
func (a *Analyzer) Statistics(scope models.ResultScope, passingScore float64) models.ResultStatistics {
	var stats models.ResultStatistics

	enrolled := make(map[string]struct{})
	for _, e := range a.data.Enrollments {
		if e.TermID != scope.TermID {
			continue
		}
		if scope.ClassID != "" && e.ClassID != scope.ClassID {
			continue
		}
		if !a.eligible(e.StudentID, scope) {
			continue
		}
		if !a.classMatches(e.ClassID, scope, true) {
			continue
		}
		enrolled[e.StudentID] = struct{}{}
	}
	stats.Enrolled = len(enrolled)

	withResults := make(map[string]struct{})
	var sum float64
	var rows int
	for _, r := range a.data.Reports {
		if r.TermID != scope.TermID {
			continue
		}
		if scope.ClassID != "" && r.ClassID != scope.ClassID {
			continue
		}
		if !a.eligible(r.StudentID, scope) {
			continue
		}
		if !a.classMatches(r.ClassID, scope, true) {
			continue
		}
		withResults[r.StudentID] = struct{}{}
		rows++
		sum += r.AverageScore
		if r.AverageScore >= passingScore {
			stats.PassCount++
		}
	}
	stats.WithResults = len(withResults)
	if rows > 0 {
		stats.AverageScore = sum / float64(rows)
		stats.PassRate = float64(stats.PassCount) / float64(rows) * 100
	}
	return stats
}
