package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

type BillingService struct {
	enrollmentRepo EnrollmentRepo
	paymentRepo    PaymentRepo
	groupRepo      GroupRepo
	subjectRepo    SubjectRepo
	logger         *zap.Logger

	now func() time.Time // подменяется в тестах
}

func NewBillingService(
	enrollmentRepo EnrollmentRepo,
	paymentRepo PaymentRepo,
	groupRepo GroupRepo,
	subjectRepo SubjectRepo,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		enrollmentRepo: enrollmentRepo,
		paymentRepo:    paymentRepo,
		groupRepo:      groupRepo,
		subjectRepo:    subjectRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// StatementRow строка выписки студента по одной группе
type StatementRow struct {
	GroupID      int64  `json:"group_id"`
	GroupName    string `json:"group_name"`
	BilledMonths int    `json:"billed_months"`
	TotalDue     int64  `json:"total_due"`
	TotalPaid    int64  `json:"total_paid"`
	Debt         int64  `json:"debt"`
}

// CalculateDebt считает долг студента по группе: месяцы с зачисления
// (включая месяц зачисления и текущий месяц, без пропорции по дням)
// умножаются на месячную плату предмета, из суммы вычитаются все
// платежи пары. Отрицательный результат — переплата, не обрезается.
func (s *BillingService) CalculateDebt(ctx context.Context, studentID, groupID int64) (int64, error) {
	row, err := s.statementRow(ctx, studentID, groupID)
	if err != nil {
		return 0, err
	}
	return row.Debt, nil
}

func (s *BillingService) statementRow(ctx context.Context, studentID, groupID int64) (*StatementRow, error) {
	enrollment, err := s.enrollmentRepo.GetByStudentAndGroup(ctx, studentID, groupID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrNotEnrolled
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	subject, err := s.subjectRepo.GetByID(ctx, group.SubjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	totalPaid, err := s.paymentRepo.SumByStudentAndGroup(ctx, studentID, groupID)
	if err != nil {
		return nil, err
	}

	months := billedMonths(enrollment.EnrollmentDate, s.now())
	totalDue := int64(months) * subject.MonthlyFee

	return &StatementRow{
		GroupID:      groupID,
		GroupName:    group.Name,
		BilledMonths: months,
		TotalDue:     totalDue,
		TotalPaid:    totalPaid,
		Debt:         totalDue - totalPaid,
	}, nil
}

// billedMonths инклюзивный счётчик месяцев: месяц зачисления и текущий
// месяц считаются полными периодами, по дням ничего не пропорционируется
func billedMonths(enrolled, now time.Time) int {
	return (now.Year()-enrolled.Year())*12 + int(now.Month()) - int(enrolled.Month()) + 1
}

// RecordPayment записывает платёж студента за группу.
// Month/Year — описательные метки периода, на расчёт долга не влияют.
func (s *BillingService) RecordPayment(ctx context.Context, studentID, groupID, amount int64, month, year int) (*model.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	enrollment, err := s.enrollmentRepo.GetByStudentAndGroup(ctx, studentID, groupID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrNotEnrolled
	}

	payment := &model.Payment{
		ReceiptID: uuid.New(),
		StudentID: studentID,
		GroupID:   groupID,
		Amount:    amount,
		Month:     month,
		Year:      year,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment accepted",
		zap.Int64("student_id", studentID),
		zap.Int64("group_id", groupID),
		zap.Int64("amount", amount),
		zap.Int64("teacher_share", payment.TeacherShare()),
	)

	return payment, nil
}

// ListPayments получает платежи студента по группе
func (s *BillingService) ListPayments(ctx context.Context, studentID, groupID int64) ([]*model.Payment, error) {
	return s.paymentRepo.ListByStudentAndGroup(ctx, studentID, groupID)
}

// StudentStatement строит выписку студента по всем его группам
func (s *BillingService) StudentStatement(ctx context.Context, studentID int64) ([]*StatementRow, error) {
	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	rows := make([]*StatementRow, 0, len(enrollments))
	for _, e := range enrollments {
		row, err := s.statementRow(ctx, studentID, e.GroupID)
		if err != nil {
			return nil, fmt.Errorf("statement for group %d: %w", e.GroupID, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
