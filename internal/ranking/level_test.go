package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classcore/results-api/internal/models"
)

func levelFixture() Dataset {
	return Dataset{
		Students: []models.Student{
			student("a1", models.StudentStatusActive),
			student("a2", models.StudentStatusActive),
			student("b1", models.StudentStatusActive),
			student("b2", models.StudentStatusActive),
		},
		Classes: []models.AcademicClass{
			class("ss1a", "SS1", "A", "2025/2026"),
			class("ss1b", "SS1", "B", "2025/2026"),
			class("ss2a", "SS2", "A", "2025/2026"),
		},
		Reports: []models.TermReport{
			report("a1", "ss1a", "1", 80),
			report("a2", "ss1a", "1", 60),
			report("b1", "ss1b", "1", 90),
			report("b2", "ss1b", "1", 70),
		},
	}
}

func TestRankLevelDualRanks(t *testing.T) {
	a := NewAnalyzer(levelFixture())
	got := a.RankLevel(models.ResultScope{TermID: "1"}, "SS1")
	require.Len(t, got, 4)

	byStudent := map[string]models.LevelRanking{}
	for _, row := range got {
		byStudent[row.StudentID] = row
	}

	// level-wide: 90, 80, 70, 60 -> ranks 1..4 over 4
	assert.Equal(t, 1, byStudent["b1"].RankInLevel)
	assert.Equal(t, 2, byStudent["a1"].RankInLevel)
	assert.Equal(t, 3, byStudent["b2"].RankInLevel)
	assert.Equal(t, 4, byStudent["a2"].RankInLevel)
	for _, row := range got {
		assert.Equal(t, 4, row.TotalInLevel)
		assert.Equal(t, 2, row.TotalInArm)
	}

	// arm A: 80, 60 -> 1, 2; arm B: 90, 70 -> 1, 2
	assert.Equal(t, 1, byStudent["a1"].RankInArm)
	assert.Equal(t, 2, byStudent["a2"].RankInArm)
	assert.Equal(t, 1, byStudent["b1"].RankInArm)
	assert.Equal(t, 2, byStudent["b2"].RankInArm)
}

func TestRankLevelExcludesOtherLevels(t *testing.T) {
	data := levelFixture()
	data.Students = append(data.Students, student("c1", models.StudentStatusActive))
	data.Reports = append(data.Reports, report("c1", "ss2a", "1", 99))
	a := NewAnalyzer(data)

	got := a.RankLevel(models.ResultScope{TermID: "1"}, "SS1")
	require.Len(t, got, 4)
	for _, row := range got {
		assert.NotEqual(t, "c1", row.StudentID)
	}
}

func TestRankLevelMissingArmBucketsAsUnknown(t *testing.T) {
	a := NewAnalyzer(Dataset{
		Students: []models.Student{student("1", ""), student("2", "")},
		Classes: []models.AcademicClass{
			class("x", "SS1", "", "2025/2026"),
			class("y", "SS1", "A", "2025/2026"),
		},
		Reports: []models.TermReport{
			report("1", "x", "1", 70),
			report("2", "y", "1", 80),
		},
	})

	got := a.RankLevel(models.ResultScope{TermID: "1"}, "SS1")
	require.Len(t, got, 2)
	// each sits alone in its own arm population
	assert.Equal(t, 1, got[0].RankInArm)
	assert.Equal(t, 1, got[0].TotalInArm)
	assert.Equal(t, 1, got[1].RankInArm)
	assert.Equal(t, 1, got[1].TotalInArm)
	assert.Equal(t, 2, got[0].TotalInLevel)
}

func TestRankLevelEmpty(t *testing.T) {
	a := NewAnalyzer(levelFixture())
	assert.Empty(t, a.RankLevel(models.ResultScope{TermID: "9"}, "SS1"))
	assert.Empty(t, a.RankLevel(models.ResultScope{TermID: "1"}, "JSS3"))
}
