package ranking

import (
	"math"
	"sort"

	"github.com/classcore/results-api/internal/models"
)

// RankCohort dense-ranks the scoped term reports by average score and
// returns one row per report in snapshot order. An empty cohort returns an
// empty list, not an error.
func (a *Analyzer) RankCohort(scope models.ResultScope) []models.CohortRanking {
	scoped := a.cohortReports(scope)
	if len(scoped) == 0 {
		return nil
	}
	ranks := DenseRanks(len(scoped), func(i int) float64 { return scoped[i].AverageScore })
	out := make([]models.CohortRanking, len(scoped))
	for i, r := range scoped {
		out[i] = models.CohortRanking{
			StudentID: r.StudentID,
			Rank:      ranks[i],
			Total:     len(scoped),
		}
	}
	return out
}

// CampusPercentile computes the target report's standing across the whole
// campus population for the scope's term and session. The arm filter is
// deliberately not applied: the denominator spans every arm. Returns nil
// when the population is empty or the target's student is not in it.
//
// Rank 1 of 100 yields 99; the bottom rank yields 0.
func (a *Analyzer) CampusPercentile(scope models.ResultScope, target models.TermReport) *int {
	pool := make([]models.TermReport, 0, len(a.data.Reports))
	for _, r := range a.data.Reports {
		if r.TermID != scope.TermID {
			continue
		}
		if !a.eligible(r.StudentID, scope) {
			continue
		}
		if !a.classMatches(r.ClassID, scope, false) {
			continue
		}
		pool = append(pool, r)
	}
	if len(pool) == 0 {
		return nil
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].AverageScore > pool[j].AverageScore
	})
	rank := 0
	for i, r := range pool {
		if r.StudentID == target.StudentID {
			rank = i + 1
			break
		}
	}
	if rank == 0 {
		return nil
	}

	n := len(pool)
	pct := int(math.Round(float64(n-rank) / float64(n) * 100))
	return &pct
}

func (a *Analyzer) cohortReports(scope models.ResultScope) []models.TermReport {
	var scoped []models.TermReport
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
		scoped = append(scoped, r)
	}
	return scoped
}
