package ranking

import "github.com/classcore/results-api/internal/models"

// Shared fixture helpers for the engine tests.

func strPtr(s string) *string { return &s }

func student(id string, status models.StudentStatus) models.Student {
	return models.Student{ID: id, FullName: "Student " + id, Status: status}
}

func campusStudent(id string, campusID string) models.Student {
	s := student(id, models.StudentStatusActive)
	s.CampusID = strPtr(campusID)
	return s
}

func class(id, level, arm, session string) models.AcademicClass {
	return models.AcademicClass{ID: id, Level: level, Arm: arm, SessionLabel: session}
}

func report(studentID, classID, termID string, avg float64) models.TermReport {
	return models.TermReport{
		ID:           "rep-" + studentID + "-" + classID,
		StudentID:    studentID,
		ClassID:      classID,
		TermID:       termID,
		AverageScore: avg,
	}
}

func enrollment(studentID, classID, termID string) models.Enrollment {
	return models.Enrollment{
		ID:        "enr-" + studentID + "-" + classID,
		StudentID: studentID,
		ClassID:   classID,
		TermID:    termID,
	}
}

func score(studentID, classID, subject, termID string, total float64) models.ScoreEntry {
	return models.ScoreEntry{
		ID:          "sco-" + studentID + "-" + subject,
		StudentID:   studentID,
		ClassID:     classID,
		SubjectName: subject,
		TermID:      termID,
		TotalScore:  total,
	}
}
