package models

// TermReport is the computed aggregate result for one student in one term
// and class. Exactly one row is expected per (student, term, class); extra
// rows are surfaced by the integrity audit.
type TermReport struct {
	ID           string  `db:"id" json:"id"`
	StudentID    string  `db:"student_id" json:"student_id"`
	ClassID      string  `db:"academic_class_id" json:"academic_class_id"`
	TermID       string  `db:"term_id" json:"term_id"`
	AverageScore float64 `db:"average_score" json:"average_score"`
}

// ScoreEntry is a single subject score for a student in a term and class.
// Exactly one row is expected per (student, class, subject, term).
type ScoreEntry struct {
	ID          string  `db:"id" json:"id"`
	StudentID   string  `db:"student_id" json:"student_id"`
	ClassID     string  `db:"academic_class_id" json:"academic_class_id"`
	SubjectName string  `db:"subject_name" json:"subject_name"`
	TermID      string  `db:"term_id" json:"term_id"`
	TotalScore  float64 `db:"total_score" json:"total_score"`
}
