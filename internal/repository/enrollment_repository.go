package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type EnrollmentRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewEnrollmentRepository(pool *pgxpool.Pool, logger *zap.Logger) *EnrollmentRepository {
	return &EnrollmentRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Create зачисляет студента в группу
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, group_id)
		VALUES ($1, $2)
		RETURNING id, enrollment_date
	`

	err := r.db.DB(ctx).QueryRow(ctx, query, e.StudentID, e.GroupID).
		Scan(&e.ID, &e.EnrollmentDate)
	if err != nil {
		r.logger.Error("Failed to insert enrollment into DB",
			zap.Int64("student_id", e.StudentID),
			zap.Int64("group_id", e.GroupID),
			zap.Error(err))
		return fmt.Errorf("create enrollment: %w", err)
	}

	return nil
}

// GetByStudentAndGroup получает зачисление пары (студент, группа)
func (r *EnrollmentRepository) GetByStudentAndGroup(ctx context.Context, studentID, groupID int64) (*model.Enrollment, error) {
	query := `
		SELECT id, student_id, group_id, enrollment_date
		FROM enrollments
		WHERE student_id = $1 AND group_id = $2
	`

	var e model.Enrollment
	err := r.db.DB(ctx).QueryRow(ctx, query, studentID, groupID).
		Scan(&e.ID, &e.StudentID, &e.GroupID, &e.EnrollmentDate)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}

	return &e, nil
}

// ListByGroup получает состав группы
func (r *EnrollmentRepository) ListByGroup(ctx context.Context, groupID int64) ([]*model.Enrollment, error) {
	query := `
		SELECT id, student_id, group_id, enrollment_date
		FROM enrollments
		WHERE group_id = $1
		ORDER BY enrollment_date, id
	`

	return r.list(ctx, query, groupID)
}

// ListByStudent получает все зачисления студента
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*model.Enrollment, error) {
	query := `
		SELECT id, student_id, group_id, enrollment_date
		FROM enrollments
		WHERE student_id = $1
		ORDER BY enrollment_date, id
	`

	return r.list(ctx, query, studentID)
}

func (r *EnrollmentRepository) list(ctx context.Context, query string, arg int64) ([]*model.Enrollment, error) {
	rows, err := r.db.DB(ctx).Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var list []*model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.GroupID, &e.EnrollmentDate); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		list = append(list, &e)
	}

	return list, rows.Err()
}
