package ranking

import "github.com/classcore/results-api/internal/models"

// RankSubjects applies the level/arm dual ranking to individual subject
// scores: each subject forms its own population, ranked level-wide and then
// per arm, on the entry's total score. One row is emitted per scoped
// (student, subject) entry in snapshot order.
func (a *Analyzer) RankSubjects(scope models.ResultScope, level string) []models.SubjectRanking {
	scoped, arms := a.levelScores(scope, level)
	if len(scoped) == 0 {
		return nil
	}

	rankInLevel := make([]int, len(scoped))
	totalInLevel := make([]int, len(scoped))
	rankInArm := make([]int, len(scoped))
	totalInArm := make([]int, len(scoped))

	subjects := make([]string, len(scoped))
	for i, e := range scoped {
		subjects[i] = e.SubjectName
	}

	for _, members := range groupIndices(subjects) {
		members := members
		ranks := DenseRanks(len(members), func(i int) float64 {
			return scoped[members[i]].TotalScore
		})
		for j, idx := range members {
			rankInLevel[idx] = ranks[j]
			totalInLevel[idx] = len(members)
		}

		// Arm populations are carved out of the subject population, so a
		// subject+arm pair ranks independently of every other subject.
		armKeys := make([]string, len(members))
		for j, idx := range members {
			armKeys[j] = arms[idx]
		}
		for _, armMembers := range groupIndices(armKeys) {
			armMembers := armMembers
			armRanks := DenseRanks(len(armMembers), func(i int) float64 {
				return scoped[members[armMembers[i]]].TotalScore
			})
			for j, pos := range armMembers {
				idx := members[pos]
				rankInArm[idx] = armRanks[j]
				totalInArm[idx] = len(armMembers)
			}
		}
	}

	out := make([]models.SubjectRanking, len(scoped))
	for i, e := range scoped {
		out[i] = models.SubjectRanking{
			StudentID:    e.StudentID,
			SubjectName:  e.SubjectName,
			RankInArm:    rankInArm[i],
			TotalInArm:   totalInArm[i],
			RankInLevel:  rankInLevel[i],
			TotalInLevel: totalInLevel[i],
			Score:        e.TotalScore,
		}
	}
	return out
}

func (a *Analyzer) levelScores(scope models.ResultScope, level string) ([]models.ScoreEntry, []string) {
	var scoped []models.ScoreEntry
	var arms []string
	for _, e := range a.data.Scores {
		if e.TermID != scope.TermID {
			continue
		}
		if !a.eligible(e.StudentID, scope) {
			continue
		}
		c, ok := a.classes[e.ClassID]
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
		scoped = append(scoped, e)
		arms = append(arms, arm)
	}
	return scoped, arms
}
