package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classcore/results-api/internal/models"
)

func subjectFixture() Dataset {
	return Dataset{
		Students: []models.Student{
			student("a1", models.StudentStatusActive),
			student("a2", models.StudentStatusActive),
			student("b1", models.StudentStatusActive),
		},
		Classes: []models.AcademicClass{
			class("ss1a", "SS1", "A", "2025/2026"),
			class("ss1b", "SS1", "B", "2025/2026"),
		},
		Scores: []models.ScoreEntry{
			score("a1", "ss1a", "Mathematics", "1", 75),
			score("a2", "ss1a", "Mathematics", "1", 85),
			score("b1", "ss1b", "Mathematics", "1", 95),
			score("a1", "ss1a", "English", "1", 90),
			score("b1", "ss1b", "English", "1", 40),
		},
	}
}

func TestRankSubjectsRanksWithinSubjectPopulations(t *testing.T) {
	a := NewAnalyzer(subjectFixture())
	got := a.RankSubjects(models.ResultScope{TermID: "1"}, "SS1")
	require.Len(t, got, 5)

	key := func(studentID, subject string) models.SubjectRanking {
		for _, row := range got {
			if row.StudentID == studentID && row.SubjectName == subject {
				return row
			}
		}
		t.Fatalf("missing row for %s/%s", studentID, subject)
		return models.SubjectRanking{}
	}

	// Mathematics level-wide: 95, 85, 75 over 3
	assert.Equal(t, 1, key("b1", "Mathematics").RankInLevel)
	assert.Equal(t, 2, key("a2", "Mathematics").RankInLevel)
	assert.Equal(t, 3, key("a1", "Mathematics").RankInLevel)
	assert.Equal(t, 3, key("a1", "Mathematics").TotalInLevel)

	// Mathematics arm A: 85, 75 over 2
	assert.Equal(t, 1, key("a2", "Mathematics").RankInArm)
	assert.Equal(t, 2, key("a1", "Mathematics").RankInArm)
	assert.Equal(t, 2, key("a1", "Mathematics").TotalInArm)

	// English is an independent population of 2
	assert.Equal(t, 1, key("a1", "English").RankInLevel)
	assert.Equal(t, 2, key("b1", "English").RankInLevel)
	assert.Equal(t, 2, key("a1", "English").TotalInLevel)
	assert.Equal(t, 1, key("a1", "English").RankInArm)
	assert.Equal(t, 1, key("a1", "English").TotalInArm)

	// ranked quantity is the subject total
	assert.Equal(t, 75.0, key("a1", "Mathematics").Score)
}

func TestRankSubjectsScopeFilters(t *testing.T) {
	data := subjectFixture()
	data.Students[1] = student("a2", models.StudentStatusExpelled)
	a := NewAnalyzer(data)

	got := a.RankSubjects(models.ResultScope{TermID: "1"}, "SS1")
	require.Len(t, got, 4)
	for _, row := range got {
		assert.NotEqual(t, "a2", row.StudentID)
	}
}

func TestRankSubjectsEmpty(t *testing.T) {
	a := NewAnalyzer(subjectFixture())
	assert.Empty(t, a.RankSubjects(models.ResultScope{TermID: "2"}, "SS1"))
}
