package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type TeacherSubjectRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewTeacherSubjectRepository(pool *pgxpool.Pool, logger *zap.Logger) *TeacherSubjectRepository {
	return &TeacherSubjectRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Create выдаёт учителю допуск к предмету
func (r *TeacherSubjectRepository) Create(ctx context.Context, ts *model.TeacherSubject) error {
	query := `
		INSERT INTO teacher_subjects (teacher_id, subject_id)
		VALUES ($1, $2)
		ON CONFLICT (teacher_id, subject_id) DO UPDATE SET teacher_id = EXCLUDED.teacher_id
		RETURNING id, created_at
	`

	err := r.db.DB(ctx).QueryRow(ctx, query, ts.TeacherID, ts.SubjectID).
		Scan(&ts.ID, &ts.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert teacher subject into DB",
			zap.Int64("teacher_id", ts.TeacherID),
			zap.Int64("subject_id", ts.SubjectID),
			zap.Error(err))
		return fmt.Errorf("create teacher subject: %w", err)
	}

	return nil
}

// Delete отзывает допуск учителя к предмету
func (r *TeacherSubjectRepository) Delete(ctx context.Context, teacherID, subjectID int64) (bool, error) {
	query := `DELETE FROM teacher_subjects WHERE teacher_id = $1 AND subject_id = $2`

	tag, err := r.db.DB(ctx).Exec(ctx, query, teacherID, subjectID)
	if err != nil {
		return false, fmt.Errorf("delete teacher subject: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Exists проверяет наличие допуска (teacher, subject)
func (r *TeacherSubjectRepository) Exists(ctx context.Context, teacherID, subjectID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM teacher_subjects WHERE teacher_id = $1 AND subject_id = $2)`

	var exists bool
	err := r.db.DB(ctx).QueryRow(ctx, query, teacherID, subjectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check teacher subject: %w", err)
	}

	return exists, nil
}

// ListByTeacher получает все допуски учителя
func (r *TeacherSubjectRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]*model.TeacherSubject, error) {
	query := `
		SELECT id, teacher_id, subject_id, created_at
		FROM teacher_subjects
		WHERE teacher_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.DB(ctx).Query(ctx, query, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list teacher subjects: %w", err)
	}
	defer rows.Close()

	var list []*model.TeacherSubject
	for rows.Next() {
		var ts model.TeacherSubject
		if err := rows.Scan(&ts.ID, &ts.TeacherID, &ts.SubjectID, &ts.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan teacher subject: %w", err)
		}
		list = append(list, &ts)
	}

	return list, rows.Err()
}
