package service

import (
	"context"

	"github.com/ustozhub/tutorcenter/internal/model"
)

// Интерфейсы хранилища с точки зрения сервисов.
// Реализуются пакетом repository, в тестах подменяются фейками.

type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]*model.User, error)
}

type SubjectRepo interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id int64) (*model.Subject, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Subject, error)
	List(ctx context.Context) ([]*model.Subject, error)
}

type TeacherSubjectRepo interface {
	Create(ctx context.Context, ts *model.TeacherSubject) error
	Delete(ctx context.Context, teacherID, subjectID int64) (bool, error)
	Exists(ctx context.Context, teacherID, subjectID int64) (bool, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]*model.TeacherSubject, error)
}

type RoomRepo interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id int64) (*model.Room, error)
	List(ctx context.Context) ([]*model.Room, error)
}

type PreEnrollmentRepo interface {
	Create(ctx context.Context, pe *model.PreEnrollment) error
	ListBySubject(ctx context.Context, subjectID int64) ([]*model.PreEnrollment, error)
	Delete(ctx context.Context, id int64) error
}

type GroupRepo interface {
	Create(ctx context.Context, group *model.Group) error
	GetByID(ctx context.Context, id int64) (*model.Group, error)
	List(ctx context.Context) ([]*model.Group, error)
	Delete(ctx context.Context, id int64) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	ListByGroup(ctx context.Context, groupID int64) ([]*model.Schedule, error)
}

type EnrollmentRepo interface {
	Create(ctx context.Context, e *model.Enrollment) error
	GetByStudentAndGroup(ctx context.Context, studentID, groupID int64) (*model.Enrollment, error)
	ListByGroup(ctx context.Context, groupID int64) ([]*model.Enrollment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*model.Enrollment, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, p *model.Payment) error
	SumByStudentAndGroup(ctx context.Context, studentID, groupID int64) (int64, error)
	ListByStudentAndGroup(ctx context.Context, studentID, groupID int64) ([]*model.Payment, error)
}

type AttendanceRepo interface {
	Upsert(ctx context.Context, a *model.Attendance) error
	ListByGroupAndDate(ctx context.Context, groupID int64, date string) ([]*model.Attendance, error)
}
