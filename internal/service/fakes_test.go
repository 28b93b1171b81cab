package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ustozhub/tutorcenter/internal/model"
)

// memStore хранилище в памяти, реализует все репозиторные
// интерфейсы из deps.go для юнит-тестов сервисов
type memStore struct {
	nextID int64

	users         map[int64]*model.User
	subjects      map[int64]*model.Subject
	rooms         map[int64]*model.Room
	eligibilities map[[2]int64]bool

	preEnrollments []*model.PreEnrollment
	groups         map[int64]*model.Group
	schedules      []*model.Schedule
	enrollments    []*model.Enrollment
	payments       []*model.Payment
	attendances    []*model.Attendance

	today time.Time // дата для enrollment_date/registration_date
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[int64]*model.User),
		subjects:      make(map[int64]*model.Subject),
		rooms:         make(map[int64]*model.Room),
		eligibilities: make(map[[2]int64]bool),
		groups:        make(map[int64]*model.Group),
		today:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// WithinTx в фейке просто вызывает fn: атомарность проверяется
// по состоянию стора после ошибки
func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- UserRepo ---

func (m *memStore) addUser(role model.Role) *model.User {
	u := &model.User{ID: m.id(), Username: fmt.Sprintf("user%d", m.nextID), Role: role}
	m.users[u.ID] = u
	return u
}

func (m *memStore) Create(ctx context.Context, user *model.User) error {
	user.ID = m.id()
	m.users[user.ID] = user
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return m.users[id], nil
}

func (m *memStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	var out []*model.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// --- SubjectRepo ---

type subjectRepoFake struct{ *memStore }

func (m subjectRepoFake) Create(ctx context.Context, s *model.Subject) error {
	s.ID = m.id()
	m.subjects[s.ID] = s
	return nil
}

func (m subjectRepoFake) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	return m.subjects[id], nil
}

func (m subjectRepoFake) GetByIDForUpdate(ctx context.Context, id int64) (*model.Subject, error) {
	return m.subjects[id], nil
}

func (m subjectRepoFake) List(ctx context.Context) ([]*model.Subject, error) {
	var out []*model.Subject
	for _, s := range m.subjects {
		out = append(out, s)
	}
	return out, nil
}

func (m *memStore) addSubject(fee int64) *model.Subject {
	s := &model.Subject{ID: m.id(), Name: fmt.Sprintf("subject%d", m.nextID), MonthlyFee: fee}
	m.subjects[s.ID] = s
	return s
}

// --- TeacherSubjectRepo ---

type teacherSubjectRepoFake struct{ *memStore }

func (m teacherSubjectRepoFake) Create(ctx context.Context, ts *model.TeacherSubject) error {
	ts.ID = m.id()
	m.eligibilities[[2]int64{ts.TeacherID, ts.SubjectID}] = true
	return nil
}

func (m teacherSubjectRepoFake) Delete(ctx context.Context, teacherID, subjectID int64) (bool, error) {
	key := [2]int64{teacherID, subjectID}
	if !m.eligibilities[key] {
		return false, nil
	}
	delete(m.eligibilities, key)
	return true, nil
}

func (m teacherSubjectRepoFake) Exists(ctx context.Context, teacherID, subjectID int64) (bool, error) {
	return m.eligibilities[[2]int64{teacherID, subjectID}], nil
}

func (m teacherSubjectRepoFake) ListByTeacher(ctx context.Context, teacherID int64) ([]*model.TeacherSubject, error) {
	var out []*model.TeacherSubject
	for key := range m.eligibilities {
		if key[0] == teacherID {
			out = append(out, &model.TeacherSubject{TeacherID: key[0], SubjectID: key[1]})
		}
	}
	return out, nil
}

// --- RoomRepo ---

type roomRepoFake struct{ *memStore }

func (m roomRepoFake) Create(ctx context.Context, r *model.Room) error {
	r.ID = m.id()
	m.rooms[r.ID] = r
	return nil
}

func (m roomRepoFake) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	return m.rooms[id], nil
}

func (m roomRepoFake) List(ctx context.Context) ([]*model.Room, error) {
	var out []*model.Room
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) addRoom() *model.Room {
	r := &model.Room{ID: m.id(), Name: fmt.Sprintf("room%d", m.nextID)}
	m.rooms[r.ID] = r
	return r
}

// --- PreEnrollmentRepo ---

type preEnrollmentRepoFake struct{ *memStore }

func (m preEnrollmentRepoFake) Create(ctx context.Context, pe *model.PreEnrollment) error {
	pe.ID = m.id()
	pe.RegistrationDate = m.today
	m.preEnrollments = append(m.preEnrollments, pe)
	return nil
}

func (m preEnrollmentRepoFake) ListBySubject(ctx context.Context, subjectID int64) ([]*model.PreEnrollment, error) {
	var out []*model.PreEnrollment
	for _, pe := range m.preEnrollments {
		if pe.SubjectID == subjectID {
			out = append(out, pe)
		}
	}
	return out, nil
}

func (m preEnrollmentRepoFake) Delete(ctx context.Context, id int64) error {
	for i, pe := range m.preEnrollments {
		if pe.ID == id {
			m.preEnrollments = append(m.preEnrollments[:i], m.preEnrollments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("pre-enrollment %d not found", id)
}

func (m *memStore) addPreEnrollment(studentID, subjectID int64) *model.PreEnrollment {
	pe := &model.PreEnrollment{ID: m.id(), StudentID: studentID, SubjectID: subjectID, RegistrationDate: m.today}
	m.preEnrollments = append(m.preEnrollments, pe)
	return pe
}

// --- GroupRepo ---

type groupRepoFake struct{ *memStore }

func (m groupRepoFake) Create(ctx context.Context, g *model.Group) error {
	g.ID = m.id()
	g.CreatedAt = m.today
	m.groups[g.ID] = g
	return nil
}

func (m groupRepoFake) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	return m.groups[id], nil
}

func (m groupRepoFake) List(ctx context.Context) ([]*model.Group, error) {
	var out []*model.Group
	for _, g := range m.groups {
		out = append(out, g)
	}
	return out, nil
}

func (m groupRepoFake) Delete(ctx context.Context, id int64) error {
	delete(m.groups, id)
	return nil
}

// --- ScheduleRepo ---

type scheduleRepoFake struct{ *memStore }

func (m scheduleRepoFake) Create(ctx context.Context, s *model.Schedule) error {
	s.ID = m.id()
	m.schedules = append(m.schedules, s)
	return nil
}

func (m scheduleRepoFake) ListByGroup(ctx context.Context, groupID int64) ([]*model.Schedule, error) {
	var out []*model.Schedule
	for _, s := range m.schedules {
		if s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}

// --- EnrollmentRepo ---

type enrollmentRepoFake struct{ *memStore }

func (m enrollmentRepoFake) Create(ctx context.Context, e *model.Enrollment) error {
	e.ID = m.id()
	e.EnrollmentDate = m.today
	m.enrollments = append(m.enrollments, e)
	return nil
}

func (m enrollmentRepoFake) GetByStudentAndGroup(ctx context.Context, studentID, groupID int64) (*model.Enrollment, error) {
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.GroupID == groupID {
			return e, nil
		}
	}
	return nil, nil
}

func (m enrollmentRepoFake) ListByGroup(ctx context.Context, groupID int64) ([]*model.Enrollment, error) {
	var out []*model.Enrollment
	for _, e := range m.enrollments {
		if e.GroupID == groupID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m enrollmentRepoFake) ListByStudent(ctx context.Context, studentID int64) ([]*model.Enrollment, error) {
	var out []*model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

// --- PaymentRepo ---

type paymentRepoFake struct{ *memStore }

func (m paymentRepoFake) Create(ctx context.Context, p *model.Payment) error {
	p.ID = m.id()
	p.PaymentDate = m.today
	m.payments = append(m.payments, p)
	return nil
}

func (m paymentRepoFake) SumByStudentAndGroup(ctx context.Context, studentID, groupID int64) (int64, error) {
	var total int64
	for _, p := range m.payments {
		if p.StudentID == studentID && p.GroupID == groupID {
			total += p.Amount
		}
	}
	return total, nil
}

func (m paymentRepoFake) ListByStudentAndGroup(ctx context.Context, studentID, groupID int64) ([]*model.Payment, error) {
	var out []*model.Payment
	for _, p := range m.payments {
		if p.StudentID == studentID && p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- AttendanceRepo ---

type attendanceRepoFake struct{ *memStore }

func (m attendanceRepoFake) Upsert(ctx context.Context, a *model.Attendance) error {
	for _, existing := range m.attendances {
		if existing.StudentID == a.StudentID && existing.GroupID == a.GroupID && existing.Date.Equal(a.Date) {
			existing.Present = a.Present
			a.ID = existing.ID
			return nil
		}
	}
	a.ID = m.id()
	m.attendances = append(m.attendances, a)
	return nil
}

func (m attendanceRepoFake) ListByGroupAndDate(ctx context.Context, groupID int64, date string) ([]*model.Attendance, error) {
	var out []*model.Attendance
	for _, a := range m.attendances {
		if a.GroupID == groupID && a.Date.Format("2006-01-02") == date {
			out = append(out, a)
		}
	}
	return out, nil
}
