package model

import "time"

// PreEnrollment заявка студента на предмет до появления группы.
// Удаляется при конвертации в Enrollment.
type PreEnrollment struct {
	ID               int64     `json:"id"`
	StudentID        int64     `json:"student_id"`
	SubjectID        int64     `json:"subject_id"`
	RegistrationDate time.Time `json:"registration_date"`
}
