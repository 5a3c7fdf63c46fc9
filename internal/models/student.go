package models

// StudentStatus represents the lifecycle state of a student record.
type StudentStatus string

// Statuses that remove a student from active rosters. Any other value,
// including an empty one, counts as active.
const (
	StudentStatusActive    StudentStatus = "Active"
	StudentStatusWithdrawn StudentStatus = "Withdrawn"
	StudentStatusGraduated StudentStatus = "Graduated"
	StudentStatusExpelled  StudentStatus = "Expelled"
	StudentStatusInactive  StudentStatus = "Inactive"
)

// Student represents a learner registered in the institution.
type Student struct {
	ID          string        `db:"id" json:"id"`
	AdmissionNo string        `db:"admission_no" json:"admission_no"`
	FullName    string        `db:"full_name" json:"full_name"`
	Status      StudentStatus `db:"status" json:"status"`
	CampusID    *string       `db:"campus_id" json:"campus_id,omitempty"`
}

// IsActive reports whether the student participates in rankings and
// statistics.
func (s Student) IsActive() bool {
	switch s.Status {
	case StudentStatusWithdrawn, StudentStatusGraduated, StudentStatusExpelled, StudentStatusInactive:
		return false
	}
	return true
}
