package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-roster/internal/dto"
	"course-roster/internal/model"
	"course-roster/internal/repository"
	pkgerrors "course-roster/pkg/errors"
)

// ── 课程模块业务错误 ──

var ErrCourseNotFound = errors.New("课程不存在")

// CourseService 课程业务接口
type CourseService interface {
	Create(ctx context.Context, fields model.Fields) (*dto.CourseDetailResponse, error)
	// GetByID 课程完整序列化
	GetByID(ctx context.Context, id int64) (*dto.CourseDetailResponse, error)
	// GetSome 课程精简序列化
	GetSome(ctx context.Context, id int64) (*dto.CourseDetailResponse, error)
	List(ctx context.Context) ([]dto.CourseDetailResponse, error)
	// Delete 删除课程并级联删除其作业
	Delete(ctx context.Context, id int64) error

	AddInstructor(ctx context.Context, courseID, userID int64) error
	RemoveInstructor(ctx context.Context, courseID, userID int64) error
	ListInstructors(ctx context.Context, courseID int64) ([]dto.UserSummary, error)

	AddStudent(ctx context.Context, courseID, userID int64) error
	RemoveStudent(ctx context.Context, courseID, userID int64) error
	ListStudents(ctx context.Context, courseID int64) ([]dto.UserSummary, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, fields model.Fields) (*dto.CourseDetailResponse, error) {
	course := model.NewCourse(fields)

	if err := s.repo.Course.Create(ctx, course); err != nil {
		err = pkgerrors.Classify(err)
		s.logger.Error("创建课程失败", zap.Stringp("code", course.Code), zap.Error(err))
		return nil, err
	}

	return SerializeCourse(course), nil
}

// ────────────────────── GetByID / GetSome ──────────────────────

func (s *courseService) GetByID(ctx context.Context, id int64) (*dto.CourseDetailResponse, error) {
	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return SerializeCourse(course), nil
}

func (s *courseService) GetSome(ctx context.Context, id int64) (*dto.CourseDetailResponse, error) {
	course, err := s.getCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	return SerializeCourseSome(course), nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context) ([]dto.CourseDetailResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseDetailResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *SerializeCourse(&courses[i]))
	}
	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("删除课程失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("课程已删除", zap.Int64("id", id))
	return nil
}

// ────────────────────── 教师 / 学生关联 ──────────────────────

func (s *courseService) AddInstructor(ctx context.Context, courseID, userID int64) error {
	if err := s.checkLinkEnds(ctx, courseID, userID); err != nil {
		return err
	}
	if err := s.repo.Course.AddInstructor(ctx, courseID, userID); err != nil {
		err = pkgerrors.Classify(err)
		s.logger.Error("添加课程教师失败", zap.Int64("course_id", courseID), zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *courseService) RemoveInstructor(ctx context.Context, courseID, userID int64) error {
	if err := s.repo.Course.RemoveInstructor(ctx, courseID, userID); err != nil {
		s.logger.Error("移除课程教师失败", zap.Int64("course_id", courseID), zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *courseService) ListInstructors(ctx context.Context, courseID int64) ([]dto.UserSummary, error) {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return nil, err
	}
	users, err := s.repo.Course.ListInstructors(ctx, courseID)
	if err != nil {
		s.logger.Error("查询课程教师失败", zap.Int64("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return subserializeUsers(users), nil
}

func (s *courseService) AddStudent(ctx context.Context, courseID, userID int64) error {
	if err := s.checkLinkEnds(ctx, courseID, userID); err != nil {
		return err
	}
	if err := s.repo.Course.AddStudent(ctx, courseID, userID); err != nil {
		err = pkgerrors.Classify(err)
		s.logger.Error("添加课程学生失败", zap.Int64("course_id", courseID), zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *courseService) RemoveStudent(ctx context.Context, courseID, userID int64) error {
	if err := s.repo.Course.RemoveStudent(ctx, courseID, userID); err != nil {
		s.logger.Error("移除课程学生失败", zap.Int64("course_id", courseID), zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *courseService) ListStudents(ctx context.Context, courseID int64) ([]dto.UserSummary, error) {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return nil, err
	}
	users, err := s.repo.Course.ListStudents(ctx, courseID)
	if err != nil {
		s.logger.Error("查询课程学生失败", zap.Int64("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return subserializeUsers(users), nil
}

// ── 内部辅助方法 ──

func (s *courseService) getCourse(ctx context.Context, id int64) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return course, nil
}

// checkLinkEnds 校验关联两端均存在
func (s *courseService) checkLinkEnds(ctx context.Context, courseID, userID int64) error {
	if _, err := s.getCourse(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.repo.User.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Int64("id", userID), zap.Error(err))
		return err
	}
	return nil
}
