package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
	"github.com/ustozhub/tutorcenter/internal/repository/base"
)

type PreEnrollmentRepository struct {
	db     *base.Repository
	logger *zap.Logger
}

func NewPreEnrollmentRepository(pool *pgxpool.Pool, logger *zap.Logger) *PreEnrollmentRepository {
	return &PreEnrollmentRepository{
		db:     base.NewRepository(pool),
		logger: logger,
	}
}

// Create создаёт заявку студента на предмет
func (r *PreEnrollmentRepository) Create(ctx context.Context, pe *model.PreEnrollment) error {
	query := `
		INSERT INTO pre_enrollments (student_id, subject_id)
		VALUES ($1, $2)
		RETURNING id, registration_date
	`

	err := r.db.DB(ctx).QueryRow(ctx, query, pe.StudentID, pe.SubjectID).
		Scan(&pe.ID, &pe.RegistrationDate)
	if err != nil {
		r.logger.Error("Failed to insert pre-enrollment into DB",
			zap.Int64("student_id", pe.StudentID),
			zap.Int64("subject_id", pe.SubjectID),
			zap.Error(err))
		return fmt.Errorf("create pre-enrollment: %w", err)
	}

	return nil
}

// ListBySubject получает все заявки по предмету
func (r *PreEnrollmentRepository) ListBySubject(ctx context.Context, subjectID int64) ([]*model.PreEnrollment, error) {
	query := `
		SELECT id, student_id, subject_id, registration_date
		FROM pre_enrollments
		WHERE subject_id = $1
		ORDER BY registration_date, id
	`

	rows, err := r.db.DB(ctx).Query(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("list pre-enrollments by subject: %w", err)
	}
	defer rows.Close()

	var list []*model.PreEnrollment
	for rows.Next() {
		var pe model.PreEnrollment
		if err := rows.Scan(&pe.ID, &pe.StudentID, &pe.SubjectID, &pe.RegistrationDate); err != nil {
			return nil, fmt.Errorf("scan pre-enrollment: %w", err)
		}
		list = append(list, &pe)
	}

	return list, rows.Err()
}

// Delete удаляет заявку (после конвертации в зачисление)
func (r *PreEnrollmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM pre_enrollments WHERE id = $1`

	tag, err := r.db.DB(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete pre-enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pre-enrollment %d not found", id)
	}

	return nil
}
