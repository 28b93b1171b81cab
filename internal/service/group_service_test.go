package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

func newGroupService(store *memStore) *GroupService {
	return NewGroupService(
		store,
		store,
		subjectRepoFake{store},
		teacherSubjectRepoFake{store},
		roomRepoFake{store},
		groupRepoFake{store},
		scheduleRepoFake{store},
		preEnrollmentRepoFake{store},
		enrollmentRepoFake{store},
		zap.NewNop(),
	)
}

func mustTime(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	tod, err := model.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestCreateGroupEligibilityGate(t *testing.T) {
	store := newMemStore()
	svc := newGroupService(store)

	teacher := store.addUser(model.RoleTeacher)
	subject := store.addSubject(100_000_00)
	room := store.addRoom()
	student := store.addUser(model.RoleStudent)
	store.addPreEnrollment(student.ID, subject.ID)

	// Допуска нет — группа не создаётся и ничего не записано
	group, err := svc.CreateGroup(context.Background(), "Algebra A",
		subject.ID, teacher.ID, room.ID, "Monday", mustTime(t, "10:00"), mustTime(t, "12:00"))

	require.ErrorIs(t, err, ErrTeacherNotEligible)
	assert.Nil(t, group)
	assert.Empty(t, store.groups)
	assert.Empty(t, store.schedules)
	assert.Empty(t, store.enrollments)
	assert.Len(t, store.preEnrollments, 1, "pre-enrollment must survive a failed create")

	// С допуском — создаётся
	store.eligibilities[[2]int64{teacher.ID, subject.ID}] = true

	group, err = svc.CreateGroup(context.Background(), "Algebra A",
		subject.ID, teacher.ID, room.ID, "Monday", mustTime(t, "10:00"), mustTime(t, "12:00"))

	require.NoError(t, err)
	require.NotNil(t, group)
	assert.Len(t, store.groups, 1)
}

func TestCreateGroupScheduleExpansion(t *testing.T) {
	store := newMemStore()
	svc := newGroupService(store)

	teacher := store.addUser(model.RoleTeacher)
	subject := store.addSubject(100_000_00)
	room := store.addRoom()
	store.eligibilities[[2]int64{teacher.ID, subject.ID}] = true

	start, end := mustTime(t, "10:00"), mustTime(t, "12:00")
	group, err := svc.CreateGroup(context.Background(), "Algebra A",
		subject.ID, teacher.ID, room.ID, "Monday, Wednesday, Friday", start, end)

	require.NoError(t, err)
	require.Len(t, group.Schedules, 3)
	assert.Equal(t, []model.Weekday{model.Monday, model.Wednesday, model.Friday},
		[]model.Weekday{group.Schedules[0].Day, group.Schedules[1].Day, group.Schedules[2].Day})
	for _, s := range group.Schedules {
		assert.Equal(t, group.ID, s.GroupID)
		assert.Equal(t, start, s.StartTime)
		assert.Equal(t, end, s.EndTime)
	}
}

func TestCreateGroupDayListNormalization(t *testing.T) {
	store := newMemStore()
	svc := newGroupService(store)

	teacher := store.addUser(model.RoleTeacher)
	subject := store.addSubject(100_000_00)
	room := store.addRoom()
	store.eligibilities[[2]int64{teacher.ID, subject.ID}] = true

	// Пробелы, регистр и дубликаты не порождают лишних строк
	group, err := svc.CreateGroup(context.Background(), "Algebra A",
		subject.ID, teacher.ID, room.ID, "  monday , MONDAY, Friday ",
		mustTime(t, "10:00"), mustTime(t, "12:00"))

	require.NoError(t, err)
	require.Len(t, group.Schedules, 2)
	assert.Equal(t, model.Monday, group.Schedules[0].Day)
	assert.Equal(t, model.Friday, group.Schedules[1].Day)
}

func TestCreateGroupPromotion(t *testing.T) {
	store := newMemStore()
	svc := newGroupService(store)

	teacher := store.addUser(model.RoleTeacher)
	subject := store.addSubject(100_000_00)
	otherSubject := store.addSubject(50_000_00)
	room := store.addRoom()
	store.eligibilities[[2]int64{teacher.ID, subject.ID}] = true

	s1 := store.addUser(model.RoleStudent)
	s2 := store.addUser(model.RoleStudent)
	s3 := store.addUser(model.RoleStudent)
	store.addPreEnrollment(s1.ID, subject.ID)
	store.addPreEnrollment(s2.ID, subject.ID)
	p3 := store.addPreEnrollment(s3.ID, otherSubject.ID)

	group, err := svc.CreateGroup(context.Background(), "Algebra A",
		subject.ID, teacher.ID, room.ID, "Monday", mustTime(t, "10:00"), mustTime(t, "12:00"))
	require.NoError(t, err)

	// Обе заявки по предмету конвертированы и удалены
	require.Len(t, store.enrollments, 2)
	assert.Equal(t, s1.ID, store.enrollments[0].StudentID)
	assert.Equal(t, s2.ID, store.enrollments[1].StudentID)
	for _, e := range store.enrollments {
		assert.Equal(t, group.ID, e.GroupID)
		assert.False(t, e.EnrollmentDate.IsZero())
	}

	// Заявка по другому предмету не тронута
	require.Len(t, store.preEnrollments, 1)
	assert.Equal(t, p3.ID, store.preEnrollments[0].ID)
}

func TestCreateGroupValidation(t *testing.T) {
	store := newMemStore()
	svc := newGroupService(store)

	teacher := store.addUser(model.RoleTeacher)
	student := store.addUser(model.RoleStudent)
	subject := store.addSubject(100_000_00)
	room := store.addRoom()
	store.eligibilities[[2]int64{teacher.ID, subject.ID}] = true

	start, end := mustTime(t, "10:00"), mustTime(t, "12:00")

	t.Run("unknown weekday", func(t *testing.T) {
		_, err := svc.CreateGroup(context.Background(), "G", subject.ID, teacher.ID, room.ID,
			"Monday, Someday", start, end)
		assert.ErrorIs(t, err, ErrInvalidDays)
		assert.Empty(t, store.groups)
	})

	t.Run("empty day list", func(t *testing.T) {
		_, err := svc.CreateGroup(context.Background(), "G", subject.ID, teacher.ID, room.ID,
			" , ", start, end)
		assert.ErrorIs(t, err, ErrInvalidDays)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := svc.CreateGroup(context.Background(), "G", subject.ID, teacher.ID, room.ID,
			"Monday", end, start)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := svc.CreateGroup(context.Background(), "G", subject.ID, teacher.ID, room.ID,
			"Monday", start, start)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := svc.CreateGroup(context.Background(), "G", 9999, teacher.ID, room.ID,
			"Monday", start, end)
		assert.ErrorIs(t, err, ErrSubjectNotFound)
	})

	t.Run("missing room", func(t *testing.T) {
		_, err := svc.CreateGroup(context.Background(), "G", subject.ID, teacher.ID, 9999,
			"Monday", start, end)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("teacher is a student", func(t *testing.T) {
		_, err := svc.CreateGroup(context.Background(), "G", subject.ID, student.ID, room.ID,
			"Monday", start, end)
		assert.ErrorIs(t, err, ErrNotATeacher)
	})
}
