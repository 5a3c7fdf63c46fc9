package ranking

import "github.com/classcore/results-api/internal/models"

// unknownArm buckets reports whose class carries no arm value.
const unknownArm = "Unknown"

// RankLevel ranks every scoped report within the given grade level twice:
// once against the whole level and once against the report's own class arm.
// The arm filter on the scope is intentionally ignored here; both ranks are
// computed from the same level-wide population so the two denominators can
// never drift apart.
func (a *Analyzer) RankLevel(scope models.ResultScope, level string) []models.LevelRanking {
	scoped, arms := a.levelReports(scope, level)
	if len(scoped) == 0 {
		return nil
	}

	levelRanks := DenseRanks(len(scoped), func(i int) float64 { return scoped[i].AverageScore })

	armRank := make([]int, len(scoped))
	armTotal := make([]int, len(scoped))
	for _, members := range groupIndices(arms) {
		members := members
		ranks := DenseRanks(len(members), func(i int) float64 {
			return scoped[members[i]].AverageScore
		})
		for j, idx := range members {
			armRank[idx] = ranks[j]
			armTotal[idx] = len(members)
		}
	}

	out := make([]models.LevelRanking, len(scoped))
	for i, r := range scoped {
		out[i] = models.LevelRanking{
			StudentID:    r.StudentID,
			RankInArm:    armRank[i],
			TotalInArm:   armTotal[i],
			RankInLevel:  levelRanks[i],
			TotalInLevel: len(scoped),
		}
	}
	return out
}

// levelReports filters reports to the scope's term, eligible students and
// classes in the given level, returning the per-report arm alongside.
func (a *Analyzer) levelReports(scope models.ResultScope, level string) ([]models.TermReport, []string) {
	var scoped []models.TermReport
	var arms []string
	for _, r := range a.data.Reports {
		if r.TermID != scope.TermID {
			continue
		}
		if !a.eligible(r.StudentID, scope) {
			continue
		}
		c, ok := a.classes[r.ClassID]
		if !ok || c.Level != level {
			continue
		}
		if scope.SessionLabel != "" && c.SessionLabel != scope.SessionLabel {
			continue
		}
		arm := c.Arm
		if arm == "" {
			arm = unknownArm
		}
		scoped = append(scoped, r)
		arms = append(arms, arm)
	}
	return scoped, arms
}

// groupIndices maps each distinct key to the positions holding it.
func groupIndices(keys []string) map[string][]int {
	groups := make(map[string][]int)
	for i, key := range keys {
		groups[key] = append(groups[key], i)
	}
	return groups
}
