package model

import "time"

type Attendance struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	GroupID   int64     `json:"group_id"`
	Date      time.Time `json:"date"`
	Present   bool      `json:"present"`
}
