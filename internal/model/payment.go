package model

import (
	"time"

	"github.com/google/uuid"
)

// teacherSharePercent доля учителя от платежа
const teacherSharePercent = 40

// Payment платёж студента за группу. Только добавляется, никогда не
// обновляется и не удаляется. Поля Month/Year — описательные метки,
// при расчёте долга платежи суммируются целиком.
type Payment struct {
	ID          int64     `json:"id"`
	ReceiptID   uuid.UUID `json:"receipt_id"`
	StudentID   int64     `json:"student_id"`
	GroupID     int64     `json:"group_id"`
	Amount      int64     `json:"amount"` // в тийинах
	PaymentDate time.Time `json:"payment_date"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
}

// TeacherShare доля учителя от платежа, считается при чтении и не хранится.
// Целочисленная арифметика в тийинах, без плавающей точки.
func (p *Payment) TeacherShare() int64 {
	return p.Amount * teacherSharePercent / 100
}
