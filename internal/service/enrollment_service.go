package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

type EnrollmentService struct {
	userRepo          UserRepo
	subjectRepo       SubjectRepo
	groupRepo         GroupRepo
	preEnrollmentRepo PreEnrollmentRepo
	enrollmentRepo    EnrollmentRepo
	logger            *zap.Logger
}

func NewEnrollmentService(
	userRepo UserRepo,
	subjectRepo SubjectRepo,
	groupRepo GroupRepo,
	preEnrollmentRepo PreEnrollmentRepo,
	enrollmentRepo EnrollmentRepo,
	logger *zap.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		userRepo:          userRepo,
		subjectRepo:       subjectRepo,
		groupRepo:         groupRepo,
		preEnrollmentRepo: preEnrollmentRepo,
		enrollmentRepo:    enrollmentRepo,
		logger:            logger,
	}
}

// PreEnroll регистрирует интерес студента к предмету до появления группы
func (s *EnrollmentService) PreEnroll(ctx context.Context, studentID, subjectID int64) (*model.PreEnrollment, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, ErrUserNotFound
	}
	if student.Role != model.RoleStudent {
		return nil, ErrNotAStudent
	}

	subject, err := s.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	pre := &model.PreEnrollment{
		StudentID: studentID,
		SubjectID: subjectID,
	}
	if err := s.preEnrollmentRepo.Create(ctx, pre); err != nil {
		return nil, err
	}

	s.logger.Info("Pre-enrollment registered",
		zap.Int64("student_id", studentID),
		zap.Int64("subject_id", subjectID),
	)

	return pre, nil
}

// ListPreEnrollments получает заявки по предмету
func (s *EnrollmentService) ListPreEnrollments(ctx context.Context, subjectID int64) ([]*model.PreEnrollment, error) {
	return s.preEnrollmentRepo.ListBySubject(ctx, subjectID)
}

// Enroll зачисляет студента в существующую группу напрямую
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, groupID int64) (*model.Enrollment, error) {
	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, ErrUserNotFound
	}
	if student.Role != model.RoleStudent {
		return nil, ErrNotAStudent
	}

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	existing, err := s.enrollmentRepo.GetByStudentAndGroup(ctx, studentID, groupID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := &model.Enrollment{
		StudentID: studentID,
		GroupID:   groupID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	s.logger.Info("Student enrolled",
		zap.Int64("student_id", studentID),
		zap.Int64("group_id", groupID),
	)

	return enrollment, nil
}

// GroupRoster получает состав группы
func (s *EnrollmentService) GroupRoster(ctx context.Context, groupID int64) ([]*model.Enrollment, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return s.enrollmentRepo.ListByGroup(ctx, groupID)
}
