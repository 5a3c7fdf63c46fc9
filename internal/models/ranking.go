package models

// CohortRanking is one student's dense rank within a scoped cohort.
type CohortRanking struct {
	StudentID string `json:"student_id"`
	Rank      int    `json:"rank"`
	Total     int    `json:"total"`
}

// LevelRanking combines a student's standing within their class arm and
// within the whole grade level. The two denominators differ on purpose: a
// result sheet reports both "3rd in SS1-A" and "11th in SS1".
type LevelRanking struct {
	StudentID    string `json:"student_id"`
	RankInArm    int    `json:"rank_in_arm"`
	TotalInArm   int    `json:"total_in_arm"`
	RankInLevel  int    `json:"rank_in_level"`
	TotalInLevel int    `json:"total_in_level"`
}

// SubjectRanking is a per-subject dual ranking row. Score is the ranked
// subject total, not the report average.
type SubjectRanking struct {
	StudentID    string  `json:"student_id"`
	SubjectName  string  `json:"subject_name"`
	RankInArm    int     `json:"rank_in_arm"`
	TotalInArm   int     `json:"total_in_arm"`
	RankInLevel  int     `json:"rank_in_level"`
	TotalInLevel int     `json:"total_in_level"`
	Score        float64 `json:"score"`
}

// ResultStatistics aggregates pass/average figures for a scope.
//
// PassRate divides by the count of scoped report rows, not by WithResults;
// duplicate report rows therefore inflate the denominator. Legacy reporting
// depends on that figure, so it is preserved as-is.
type ResultStatistics struct {
	Enrolled     int     `json:"enrolled"`
	WithResults  int     `json:"with_results"`
	AverageScore float64 `json:"average_score"`
	PassCount    int     `json:"pass_count"`
	PassRate     float64 `json:"pass_rate"`
}
