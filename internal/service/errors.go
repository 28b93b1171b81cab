package service

import "errors"

// Бизнес-ошибки сервисов. HTTP-слой мапит их на 4xx,
// всё остальное считается ошибкой хранилища и уходит как 500.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNotATeacher        = errors.New("user is not a teacher")
	ErrNotAStudent        = errors.New("user is not a student")
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrTeacherNotEligible = errors.New("teacher is not eligible to teach this subject")
	ErrNotEnrolled        = errors.New("student is not enrolled in this group")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this group")
	ErrInvalidDays        = errors.New("invalid day list")
	ErrInvalidTimeRange   = errors.New("start time must be before end time")
	ErrInvalidAmount      = errors.New("payment amount must be positive")
	ErrInvalidFee         = errors.New("monthly fee must not be negative")
	ErrInvalidRole        = errors.New("unknown role")
	ErrUsernameTaken      = errors.New("username is already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
