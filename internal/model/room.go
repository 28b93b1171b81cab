package model

type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"` // справочное поле, вместимость не контролируется
}
