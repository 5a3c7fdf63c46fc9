package models

// ResultScope narrows which records participate in a ranking, statistics or
// integrity computation. TermID is the only mandatory field; empty optional
// fields leave their dimension unfiltered.
//
// A nil campus on a student bypasses the campus filter: only students with
// an explicit, different campus are excluded.
type ResultScope struct {
	TermID       string `json:"term_id" validate:"required"`
	CampusID     string `json:"campus_id,omitempty"`
	ClassID      string `json:"academic_class_id,omitempty"`
	Arm          string `json:"arm,omitempty"`
	SessionLabel string `json:"session_label,omitempty"`
}
