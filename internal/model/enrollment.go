package model

import "time"

// Enrollment привязка студента к группе, точка отсчёта для начислений.
// Дата зачисления выставляется при создании и не меняется.
type Enrollment struct {
	ID             int64     `json:"id"`
	StudentID      int64     `json:"student_id"`
	GroupID        int64     `json:"group_id"`
	EnrollmentDate time.Time `json:"enrollment_date"`
}
