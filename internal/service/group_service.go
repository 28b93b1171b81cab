package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ustozhub/tutorcenter/internal/model"
)

type GroupService struct {
	txm                TxManager
	userRepo           UserRepo
	subjectRepo        SubjectRepo
	teacherSubjectRepo TeacherSubjectRepo
	roomRepo           RoomRepo
	groupRepo          GroupRepo
	scheduleRepo       ScheduleRepo
	preEnrollmentRepo  PreEnrollmentRepo
	enrollmentRepo     EnrollmentRepo
	logger             *zap.Logger
}

func NewGroupService(
	txm TxManager,
	userRepo UserRepo,
	subjectRepo SubjectRepo,
	teacherSubjectRepo TeacherSubjectRepo,
	roomRepo RoomRepo,
	groupRepo GroupRepo,
	scheduleRepo ScheduleRepo,
	preEnrollmentRepo PreEnrollmentRepo,
	enrollmentRepo EnrollmentRepo,
	logger *zap.Logger,
) *GroupService {
	return &GroupService{
		txm:                txm,
		userRepo:           userRepo,
		subjectRepo:        subjectRepo,
		teacherSubjectRepo: teacherSubjectRepo,
		roomRepo:           roomRepo,
		groupRepo:          groupRepo,
		scheduleRepo:       scheduleRepo,
		preEnrollmentRepo:  preEnrollmentRepo,
		enrollmentRepo:     enrollmentRepo,
		logger:             logger,
	}
}

// CreateGroup создаёт группу по предмету: проверяет допуск учителя,
// разворачивает расписание по списку дней и конвертирует все заявки
// по предмету в зачисления. Вся цепочка выполняется в одной транзакции,
// строка предмета блокируется FOR UPDATE, поэтому две параллельные
// группы по одному предмету не разберут один пул заявок.
func (s *GroupService) CreateGroup(
	ctx context.Context,
	name string,
	subjectID, teacherID, roomID int64,
	days string,
	startTime, endTime model.TimeOfDay,
) (*model.Group, error) {
	// Валидация до открытия транзакции
	dayList, err := model.ParseDayList(days)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDays, err)
	}
	if !startTime.Before(endTime) {
		return nil, ErrInvalidTimeRange
	}

	var group *model.Group
	err = s.txm.WithinTx(ctx, func(ctx context.Context) error {
		// Блокируем предмет на время создания группы
		subject, err := s.subjectRepo.GetByIDForUpdate(ctx, subjectID)
		if err != nil {
			return fmt.Errorf("get subject: %w", err)
		}
		if subject == nil {
			return ErrSubjectNotFound
		}

		teacher, err := s.userRepo.GetByID(ctx, teacherID)
		if err != nil {
			return fmt.Errorf("get teacher: %w", err)
		}
		if teacher == nil {
			return ErrUserNotFound
		}
		if teacher.Role != model.RoleTeacher {
			return ErrNotATeacher
		}

		room, err := s.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			return fmt.Errorf("get room: %w", err)
		}
		if room == nil {
			return ErrRoomNotFound
		}

		// Единственная авторизационная проверка ядра:
		// без записи (teacher, subject) группа не создаётся,
		// и до этой точки ничего не записано.
		eligible, err := s.teacherSubjectRepo.Exists(ctx, teacherID, subjectID)
		if err != nil {
			return fmt.Errorf("check eligibility: %w", err)
		}
		if !eligible {
			return ErrTeacherNotEligible
		}

		group = &model.Group{
			Name:      name,
			SubjectID: subjectID,
			TeacherID: teacherID,
			RoomID:    roomID,
			Days:      days,
			StartTime: startTime,
			EndTime:   endTime,
			Subject:   subject,
		}
		if err := s.groupRepo.Create(ctx, group); err != nil {
			return err
		}

		// Разворачиваем расписание: одна строка на день,
		// время одинаковое для всех дней
		for _, day := range dayList {
			schedule := &model.Schedule{
				GroupID:   group.ID,
				Day:       day,
				StartTime: startTime,
				EndTime:   endTime,
			}
			if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
				return err
			}
			group.Schedules = append(group.Schedules, schedule)
		}

		// Конвертируем заявки по предмету в зачисления.
		// Фильтра по учителю или времени нет: заявка подаётся
		// на предмет, её забирает первая созданная группа.
		pres, err := s.preEnrollmentRepo.ListBySubject(ctx, subjectID)
		if err != nil {
			return err
		}
		for _, pre := range pres {
			enrollment := &model.Enrollment{
				StudentID: pre.StudentID,
				GroupID:   group.ID,
			}
			if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
				return err
			}
			if err := s.preEnrollmentRepo.Delete(ctx, pre.ID); err != nil {
				return err
			}
		}

		s.logger.Info("Group created",
			zap.Int64("group_id", group.ID),
			zap.String("name", name),
			zap.Int64("subject_id", subjectID),
			zap.Int64("teacher_id", teacherID),
			zap.Int("schedule_rows", len(dayList)),
			zap.Int("promoted_pre_enrollments", len(pres)),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return group, nil
}

// GetGroup получает группу вместе с расписанием
func (s *GroupService) GetGroup(ctx context.Context, groupID int64) (*model.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	group.Schedules, err = s.scheduleRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	group.Subject, err = s.subjectRepo.GetByID(ctx, group.SubjectID)
	if err != nil {
		return nil, err
	}

	return group, nil
}

// ListGroups получает все группы
func (s *GroupService) ListGroups(ctx context.Context) ([]*model.Group, error) {
	return s.groupRepo.List(ctx)
}

// DeleteGroup удаляет группу со всеми расписаниями и зачислениями
func (s *GroupService) DeleteGroup(ctx context.Context, groupID int64) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	if err := s.groupRepo.Delete(ctx, groupID); err != nil {
		return err
	}

	s.logger.Info("Group deleted", zap.Int64("group_id", groupID))
	return nil
}
