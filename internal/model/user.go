package model

import "time"

// Role роль пользователя в учебном центре
type Role string

const (
	RoleManager       Role = "manager"
	RoleAdministrator Role = "administrator"
	RoleTeacher       Role = "teacher"
	RoleStudent       Role = "student"
)

// Valid проверяет что роль входит в закрытый список
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleAdministrator, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
