package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type RoomRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewRoomRepository(pool *pgxpool.Pool, logger *zap.Logger) *RoomRepository {
	return &RoomRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Create создаёт новый кабинет
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	query := `
		INSERT INTO rooms (name, capacity)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.DB(ctx).QueryRow(ctx, query, room.Name, room.Capacity).Scan(&room.ID)
	if err != nil {
		r.logger.Error("Failed to insert room into DB",
			zap.String("name", room.Name),
			zap.Error(err))
		return fmt.Errorf("create room: %w", err)
	}

	return nil
}

// GetByID получает кабинет по ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	query := `SELECT id, name, capacity FROM rooms WHERE id = $1`

	var room model.Room
	err := r.db.DB(ctx).QueryRow(ctx, query, id).Scan(&room.ID, &room.Name, &room.Capacity)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room by id: %w", err)
	}

	return &room, nil
}

// List получает все кабинеты
func (r *RoomRepository) List(ctx context.Context) ([]*model.Room, error) {
	query := `SELECT id, name, capacity FROM rooms ORDER BY name`

	rows, err := r.db.DB(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, rows.Err()
}
