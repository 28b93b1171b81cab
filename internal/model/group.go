package model

import "time"

type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SubjectID int64     `json:"subject_id"`
	TeacherID int64     `json:"teacher_id"`
	RoomID    int64     `json:"room_id"`
	Days      string    `json:"days"` // например "Monday, Wednesday, Friday"
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`

	// Дополнительные поля для удобства (не из БД)
	Subject   *Subject    `json:"subject,omitempty"`
	Schedules []*Schedule `json:"schedules,omitempty"`
}
