package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

// AttendanceService отметки посещаемости. Ядро биллинга посещаемость
// не потребляет, это чисто учётная запись для администраторов.
type AttendanceService struct {
	enrollmentRepo EnrollmentRepo
	attendanceRepo AttendanceRepo
	logger         *zap.Logger
}

func NewAttendanceService(
	enrollmentRepo EnrollmentRepo,
	attendanceRepo AttendanceRepo,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		enrollmentRepo: enrollmentRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

// Mark отмечает студента за день, повторная отметка перезаписывает первую
func (s *AttendanceService) Mark(ctx context.Context, studentID, groupID int64, date time.Time, present bool) (*model.Attendance, error) {
	enrollment, err := s.enrollmentRepo.GetByStudentAndGroup(ctx, studentID, groupID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrNotEnrolled
	}

	attendance := &model.Attendance{
		StudentID: studentID,
		GroupID:   groupID,
		Date:      date,
		Present:   present,
	}
	if err := s.attendanceRepo.Upsert(ctx, attendance); err != nil {
		return nil, err
	}

	s.logger.Info("Attendance marked",
		zap.Int64("student_id", studentID),
		zap.Int64("group_id", groupID),
		zap.String("date", date.Format("2006-01-02")),
		zap.Bool("present", present),
	)

	return attendance, nil
}

// ListByGroupAndDate получает посещаемость группы за день
func (s *AttendanceService) ListByGroupAndDate(ctx context.Context, groupID int64, date string) ([]*model.Attendance, error) {
	return s.attendanceRepo.ListByGroupAndDate(ctx, groupID, date)
}
