package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

// CatalogService справочники: предметы, кабинеты, допуски учителей
type CatalogService struct {
	userRepo           UserRepo
	subjectRepo        SubjectRepo
	roomRepo           RoomRepo
	teacherSubjectRepo TeacherSubjectRepo
	logger             *zap.Logger
}

func NewCatalogService(
	userRepo UserRepo,
	subjectRepo SubjectRepo,
	roomRepo RoomRepo,
	teacherSubjectRepo TeacherSubjectRepo,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		userRepo:           userRepo,
		subjectRepo:        subjectRepo,
		roomRepo:           roomRepo,
		teacherSubjectRepo: teacherSubjectRepo,
		logger:             logger,
	}
}

// CreateSubject создаёт предмет с месячной платой в тийинах
func (s *CatalogService) CreateSubject(ctx context.Context, name, description string, monthlyFee int64) (*model.Subject, error) {
	if monthlyFee < 0 {
		return nil, ErrInvalidFee
	}

	subject := &model.Subject{
		Name:        name,
		Description: description,
		MonthlyFee:  monthlyFee,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}

	return subject, nil
}

// ListSubjects получает все предметы
func (s *CatalogService) ListSubjects(ctx context.Context) ([]*model.Subject, error) {
	return s.subjectRepo.List(ctx)
}

// CreateRoom создаёт кабинет
func (s *CatalogService) CreateRoom(ctx context.Context, name string, capacity int) (*model.Room, error) {
	room := &model.Room{
		Name:     name,
		Capacity: capacity,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// ListRooms получает все кабинеты
func (s *CatalogService) ListRooms(ctx context.Context) ([]*model.Room, error) {
	return s.roomRepo.List(ctx)
}

// GrantEligibility выдаёт учителю допуск к предмету
func (s *CatalogService) GrantEligibility(ctx context.Context, teacherID, subjectID int64) (*model.TeacherSubject, error) {
	teacher, err := s.userRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}
	if teacher == nil {
		return nil, ErrUserNotFound
	}
	if teacher.Role != model.RoleTeacher {
		return nil, ErrNotATeacher
	}

	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	ts := &model.TeacherSubject{
		TeacherID: teacherID,
		SubjectID: subjectID,
	}
	if err := s.teacherSubjectRepo.Create(ctx, ts); err != nil {
		return nil, err
	}

	s.logger.Info("Teacher eligibility granted",
		zap.Int64("teacher_id", teacherID),
		zap.Int64("subject_id", subjectID),
	)

	return ts, nil
}

// RevokeEligibility отзывает допуск. Уже существующие группы не трогаем:
// допуск проверяется один раз, при создании группы.
func (s *CatalogService) RevokeEligibility(ctx context.Context, teacherID, subjectID int64) error {
	removed, err := s.teacherSubjectRepo.Delete(ctx, teacherID, subjectID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrTeacherNotEligible
	}

	s.logger.Info("Teacher eligibility revoked",
		zap.Int64("teacher_id", teacherID),
		zap.Int64("subject_id", subjectID),
	)

	return nil
}

// ListTeacherEligibilities получает допуски учителя
func (s *CatalogService) ListTeacherEligibilities(ctx context.Context, teacherID int64) ([]*model.TeacherSubject, error) {
	return s.teacherSubjectRepo.ListByTeacher(ctx, teacherID)
}
