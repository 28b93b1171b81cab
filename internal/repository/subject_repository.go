package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type SubjectRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewSubjectRepository(pool *pgxpool.Pool, logger *zap.Logger) *SubjectRepository {
	return &SubjectRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Create создаёт новый предмет
func (r *SubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	query := `
		INSERT INTO subjects (name, description, monthly_fee)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.DB(ctx).QueryRow(
		ctx, query,
		subject.Name,
		subject.Description,
		subject.MonthlyFee,
	).Scan(&subject.ID, &subject.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to insert subject into DB",
			zap.String("name", subject.Name),
			zap.Error(err))
		return fmt.Errorf("create subject: %w", err)
	}

	r.logger.Info("Subject created",
		zap.Int64("subject_id", subject.ID),
		zap.String("name", subject.Name),
		zap.Int64("monthly_fee", subject.MonthlyFee))

	return nil
}

// GetByID получает предмет по ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	return r.get(ctx, `
		SELECT id, name, description, monthly_fee, created_at
		FROM subjects
		WHERE id = $1
	`, id)
}

// GetByIDForUpdate получает предмет с блокировкой строки.
// Сериализует конкурентные CreateGroup по одному предмету,
// чтобы два параллельных создания не разобрали один пул заявок.
func (r *SubjectRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.Subject, error) {
	return r.get(ctx, `
		SELECT id, name, description, monthly_fee, created_at
		FROM subjects
		WHERE id = $1
		FOR UPDATE
	`, id)
}

func (r *SubjectRepository) get(ctx context.Context, query string, id int64) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.DB(ctx).QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Name,
		&subject.Description,
		&subject.MonthlyFee,
		&subject.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject by id: %w", err)
	}

	return &subject, nil
}

// List получает все предметы
func (r *SubjectRepository) List(ctx context.Context) ([]*model.Subject, error) {
	query := `
		SELECT id, name, description, monthly_fee, created_at
		FROM subjects
		ORDER BY name
	`

	rows, err := r.db.DB(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*model.Subject
	for rows.Next() {
		var subject model.Subject
		err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Description,
			&subject.MonthlyFee,
			&subject.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, &subject)
	}

	return subjects, rows.Err()
}
