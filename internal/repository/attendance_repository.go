package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type AttendanceRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewAttendanceRepository(pool *pgxpool.Pool, logger *zap.Logger) *AttendanceRepository {
	return &AttendanceRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Upsert отмечает посещаемость, повторная отметка за день перезаписывается
func (r *AttendanceRepository) Upsert(ctx context.Context, a *model.Attendance) error {
	query := `
		INSERT INTO attendances (student_id, group_id, date, present)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (student_id, group_id, date) DO UPDATE SET present = EXCLUDED.present
		RETURNING id
	`

	err := r.db.DB(ctx).QueryRow(ctx, query, a.StudentID, a.GroupID, a.Date, a.Present).
		Scan(&a.ID)
	if err != nil {
		r.logger.Error("Failed to upsert attendance",
			zap.Int64("student_id", a.StudentID),
			zap.Int64("group_id", a.GroupID),
			zap.Error(err))
		return fmt.Errorf("upsert attendance: %w", err)
	}

	return nil
}

// ListByGroupAndDate получает посещаемость группы за день
func (r *AttendanceRepository) ListByGroupAndDate(ctx context.Context, groupID int64, date string) ([]*model.Attendance, error) {
	query := `
		SELECT id, student_id, group_id, date, present
		FROM attendances
		WHERE group_id = $1 AND date = $2
		ORDER BY student_id
	`

	rows, err := r.db.DB(ctx).Query(ctx, query, groupID, date)
	if err != nil {
		return nil, fmt.Errorf("list attendances: %w", err)
	}
	defer rows.Close()

	var list []*model.Attendance
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.GroupID, &a.Date, &a.Present); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &a)
	}

	return list, rows.Err()
}
