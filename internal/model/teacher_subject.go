package model

import "time"

// TeacherSubject разрешение учителю вести группы по предмету.
// Наличие записи — единственный сигнал авторизации при создании группы.
type TeacherSubject struct {
	ID        int64     `json:"id"`
	TeacherID int64     `json:"teacher_id"`
	SubjectID int64     `json:"subject_id"`
	CreatedAt time.Time `json:"created_at"`
}
