package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type GroupRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewGroupRepository(pool *pgxpool.Pool, logger *zap.Logger) *GroupRepository {
	return &GroupRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Create создаёт новую группу
func (r *GroupRepository) Create(ctx context.Context, group *model.Group) error {
	query := `
		INSERT INTO groups (name, subject_id, teacher_id, room_id, days, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.DB(ctx).QueryRow(
		ctx, query,
		group.Name,
		group.SubjectID,
		group.TeacherID,
		group.RoomID,
		group.Days,
		group.StartTime,
		group.EndTime,
	).Scan(&group.ID, &group.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to insert group into DB",
			zap.String("name", group.Name),
			zap.Int64("subject_id", group.SubjectID),
			zap.Error(err))
		return fmt.Errorf("create group: %w", err)
	}

	return nil
}

// GetByID получает группу по ID
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	query := `
		SELECT id, name, subject_id, teacher_id, room_id, days, start_time, end_time, created_at
		FROM groups
		WHERE id = $1
	`

	var group model.Group
	err := r.db.DB(ctx).QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.SubjectID,
		&group.TeacherID,
		&group.RoomID,
		&group.Days,
		&group.StartTime,
		&group.EndTime,
		&group.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group by id: %w", err)
	}

	return &group, nil
}

// List получает все группы
func (r *GroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	query := `
		SELECT id, name, subject_id, teacher_id, room_id, days, start_time, end_time, created_at
		FROM groups
		ORDER BY created_at DESC
	`

	rows, err := r.db.DB(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []*model.Group
	for rows.Next() {
		var group model.Group
		err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.SubjectID,
			&group.TeacherID,
			&group.RoomID,
			&group.Days,
			&group.StartTime,
			&group.EndTime,
			&group.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, &group)
	}

	return groups, rows.Err()
}

// Delete удаляет группу, расписание/зачисления/платежи уходят каскадом
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM groups WHERE id = $1`

	tag, err := r.db.DB(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("group %d not found", id)
	}

	return nil
}
