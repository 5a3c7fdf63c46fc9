package models

// AcademicClass represents a class offering for one arm of a level within a
// school session, e.g. level "SS1", arm "A", session "2025/2026".
type AcademicClass struct {
	ID           string `db:"id" json:"id"`
	Level        string `db:"level" json:"level"`
	Arm          string `db:"arm" json:"arm"`
	SessionLabel string `db:"session_label" json:"session_label"`
}

// Enrollment captures a student's registration to an academic class for a
// term. It is the authoritative source of scope membership.
type Enrollment struct {
	ID        string `db:"id" json:"id"`
	StudentID string `db:"student_id" json:"student_id"`
	ClassID   string `db:"academic_class_id" json:"academic_class_id"`
	TermID    string `db:"enrolled_term_id" json:"enrolled_term_id"`
}
