package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type ScheduleRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewScheduleRepository(pool *pgxpool.Pool, logger *zap.Logger) *ScheduleRepository {
	return &ScheduleRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Create создаёт строку расписания группы
func (r *ScheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	query := `
		INSERT INTO schedules (group_id, day, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.DB(ctx).QueryRow(
		ctx, query,
		schedule.GroupID,
		schedule.Day,
		schedule.StartTime,
		schedule.EndTime,
	).Scan(&schedule.ID)

	if err != nil {
		r.logger.Error("Failed to insert schedule into DB",
			zap.Int64("group_id", schedule.GroupID),
			zap.String("day", string(schedule.Day)),
			zap.Error(err))
		return fmt.Errorf("create schedule: %w", err)
	}

	return nil
}

// ListByGroup получает расписание группы
func (r *ScheduleRepository) ListByGroup(ctx context.Context, groupID int64) ([]*model.Schedule, error) {
	query := `
		SELECT id, group_id, day, start_time, end_time
		FROM schedules
		WHERE group_id = $1
		ORDER BY id
	`

	rows, err := r.db.DB(ctx).Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("list schedules by group: %w", err)
	}
	defer rows.Close()

	var schedules []*model.Schedule
	for rows.Next() {
		var s model.Schedule
		if err := rows.Scan(&s.ID, &s.GroupID, &s.Day, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, &s)
	}

	return schedules, rows.Err()
}
