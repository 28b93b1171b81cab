package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type PaymentRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewPaymentRepository(pool *pgxpool.Pool, logger *zap.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Create записывает платёж. Платежи только добавляются,
// методов обновления и удаления у репозитория нет.
func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	query := `
		INSERT INTO payments (receipt_id, student_id, group_id, amount, month, year)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, payment_date
	`

	err := r.db.DB(ctx).QueryRow(
		ctx, query,
		p.ReceiptID,
		p.StudentID,
		p.GroupID,
		p.Amount,
		p.Month,
		p.Year,
	).Scan(&p.ID, &p.PaymentDate)

	if err != nil {
		r.logger.Error("Failed to insert payment into DB",
			zap.Int64("student_id", p.StudentID),
			zap.Int64("group_id", p.GroupID),
			zap.Int64("amount", p.Amount),
			zap.Error(err))
		return fmt.Errorf("create payment: %w", err)
	}

	r.logger.Info("Payment recorded",
		zap.Int64("payment_id", p.ID),
		zap.String("receipt_id", p.ReceiptID.String()),
		zap.Int64("student_id", p.StudentID),
		zap.Int64("group_id", p.GroupID),
		zap.Int64("amount", p.Amount))

	return nil
}

// SumByStudentAndGroup суммирует все платежи пары (студент, группа).
// Метки month/year не фильтруют сумму.
func (r *PaymentRepository) SumByStudentAndGroup(ctx context.Context, studentID, groupID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE student_id = $1 AND group_id = $2
	`

	var total int64
	err := r.db.DB(ctx).QueryRow(ctx, query, studentID, groupID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}

	return total, nil
}

// ListByStudentAndGroup получает платежи пары (студент, группа)
func (r *PaymentRepository) ListByStudentAndGroup(ctx context.Context, studentID, groupID int64) ([]*model.Payment, error) {
	query := `
		SELECT id, receipt_id, student_id, group_id, amount, payment_date, month, year
		FROM payments
		WHERE student_id = $1 AND group_id = $2
		ORDER BY payment_date, id
	`

	rows, err := r.db.DB(ctx).Query(ctx, query, studentID, groupID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*model.Payment
	for rows.Next() {
		var p model.Payment
		err := rows.Scan(
			&p.ID,
			&p.ReceiptID,
			&p.StudentID,
			&p.GroupID,
			&p.Amount,
			&p.PaymentDate,
			&p.Month,
			&p.Year,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, &p)
	}

	return payments, rows.Err()
}
