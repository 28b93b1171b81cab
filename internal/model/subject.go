package model

import "time"

type Subject struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MonthlyFee  int64     `json:"monthly_fee"` // в тийинах (минорные единицы)
	CreatedAt   time.Time `json:"created_at"`
}
