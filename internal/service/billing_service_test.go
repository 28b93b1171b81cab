package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

func newBillingService(store *memStore, now time.Time) *BillingService {
	svc := NewBillingService(
		enrollmentRepoFake{store},
		paymentRepoFake{store},
		groupRepoFake{store},
		subjectRepoFake{store},
		zap.NewNop(),
	)
	svc.now = func() time.Time { return now }
	return svc
}

// enrollStudent готовит предмет, группу и зачисление на дату store.today
func enrollStudent(store *memStore, fee int64) (studentID, groupID int64) {
	student := store.addUser(model.RoleStudent)
	teacher := store.addUser(model.RoleTeacher)
	subject := store.addSubject(fee)
	room := store.addRoom()

	group := &model.Group{
		ID:        store.id(),
		Name:      "Algebra A",
		SubjectID: subject.ID,
		TeacherID: teacher.ID,
		RoomID:    room.ID,
	}
	store.groups[group.ID] = group

	store.enrollments = append(store.enrollments, &model.Enrollment{
		ID:             store.id(),
		StudentID:      student.ID,
		GroupID:        group.ID,
		EnrollmentDate: store.today,
	})

	return student.ID, group.ID
}

func TestCalculateDebtInclusiveMonths(t *testing.T) {
	store := newMemStore()
	store.today = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) // дата зачисления

	// Зачисление 2024-01-15, плата 100000.00, расчёт на 2024-03-10:
	// (2024-2024)*12 + (3-1) + 1 = 3 месяца, долг 300000.00
	studentID, groupID := enrollStudent(store, 100_000_00)
	svc := newBillingService(store, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	debt, err := svc.CalculateDebt(context.Background(), studentID, groupID)
	require.NoError(t, err)
	assert.Equal(t, int64(300_000_00), debt)

	// Один платёж на 100000.00 — остаток 200000.00
	_, err = svc.RecordPayment(context.Background(), studentID, groupID, 100_000_00, 1, 2024)
	require.NoError(t, err)

	debt, err = svc.CalculateDebt(context.Background(), studentID, groupID)
	require.NoError(t, err)
	assert.Equal(t, int64(200_000_00), debt)
}

func TestCalculateDebtMonotonicity(t *testing.T) {
	store := newMemStore()
	store.today = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	studentID, groupID := enrollStudent(store, 100_000_00)

	// Без платежей долг не убывает от месяца к месяцу
	var prev int64
	for m := time.Month(1); m <= 12; m++ {
		svc := newBillingService(store, time.Date(2024, m, 28, 0, 0, 0, 0, time.UTC))
		debt, err := svc.CalculateDebt(context.Background(), studentID, groupID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, debt, prev)
		prev = debt
	}

	// Каждый платёж уменьшает долг ровно на свою сумму
	svc := newBillingService(store, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	before, err := svc.CalculateDebt(context.Background(), studentID, groupID)
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), studentID, groupID, 70_000_00, 2, 2024)
	require.NoError(t, err)

	after, err := svc.CalculateDebt(context.Background(), studentID, groupID)
	require.NoError(t, err)
	assert.Equal(t, before-int64(70_000_00), after)
}

func TestCalculateDebtAcrossYears(t *testing.T) {
	store := newMemStore()
	store.today = time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	studentID, groupID := enrollStudent(store, 100_000_00)

	// Ноябрь, декабрь, январь, февраль — 4 инклюзивных месяца
	svc := newBillingService(store, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))
	debt, err := svc.CalculateDebt(context.Background(), studentID, groupID)
	require.NoError(t, err)
	assert.Equal(t, int64(400_000_00), debt)
}

func TestCalculateDebtOverpaymentGoesNegative(t *testing.T) {
	store := newMemStore()
	store.today = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	studentID, groupID := enrollStudent(store, 100_000_00)

	svc := newBillingService(store, store.today)

	// Платёж с меткой будущего месяца всё равно гасит текущий долг
	_, err := svc.RecordPayment(context.Background(), studentID, groupID, 300_000_00, 12, 2024)
	require.NoError(t, err)

	debt, err := svc.CalculateDebt(context.Background(), studentID, groupID)
	require.NoError(t, err)
	assert.Equal(t, int64(-200_000_00), debt, "credit balance is not clamped to zero")
}

func TestCalculateDebtNotEnrolled(t *testing.T) {
	store := newMemStore()
	studentID, groupID := enrollStudent(store, 100_000_00)
	other := store.addUser(model.RoleStudent)

	svc := newBillingService(store, store.today)

	_, err := svc.CalculateDebt(context.Background(), other.ID, groupID)
	assert.ErrorIs(t, err, ErrNotEnrolled)

	_, err = svc.RecordPayment(context.Background(), other.ID, groupID, 100_000_00, 1, 2024)
	assert.ErrorIs(t, err, ErrNotEnrolled)

	// Чужая пара (студент, группа) не мешает своей
	_, err = svc.CalculateDebt(context.Background(), studentID, groupID)
	assert.NoError(t, err)
}

func TestRecordPaymentValidation(t *testing.T) {
	store := newMemStore()
	studentID, groupID := enrollStudent(store, 100_000_00)
	svc := newBillingService(store, store.today)

	_, err := svc.RecordPayment(context.Background(), studentID, groupID, 0, 1, 2024)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.RecordPayment(context.Background(), studentID, groupID, -100, 1, 2024)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.RecordPayment(context.Background(), studentID, groupID, 100, 13, 2024)
	assert.Error(t, err)

	payment, err := svc.RecordPayment(context.Background(), studentID, groupID, 100_000_00, 1, 2024)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, payment.ReceiptID)
	assert.Equal(t, int64(40_000_00), payment.TeacherShare())
}

func TestStudentStatement(t *testing.T) {
	store := newMemStore()
	store.today = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	studentID, groupID := enrollStudent(store, 100_000_00)

	// Второе зачисление того же студента в другую группу
	subject2 := store.addSubject(50_000_00)
	group2 := &model.Group{ID: store.id(), Name: "English B", SubjectID: subject2.ID}
	store.groups[group2.ID] = group2
	store.enrollments = append(store.enrollments, &model.Enrollment{
		ID: store.id(), StudentID: studentID, GroupID: group2.ID, EnrollmentDate: store.today,
	})

	svc := newBillingService(store, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	_, err := svc.RecordPayment(context.Background(), studentID, groupID, 100_000_00, 1, 2024)
	require.NoError(t, err)

	rows, err := svc.StudentStatement(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, groupID, rows[0].GroupID)
	assert.Equal(t, 3, rows[0].BilledMonths)
	assert.Equal(t, int64(300_000_00), rows[0].TotalDue)
	assert.Equal(t, int64(100_000_00), rows[0].TotalPaid)
	assert.Equal(t, int64(200_000_00), rows[0].Debt)

	assert.Equal(t, group2.ID, rows[1].GroupID)
	assert.Equal(t, int64(150_000_00), rows[1].TotalDue)
	assert.Equal(t, int64(150_000_00), rows[1].Debt)
}
