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

// ── 用户模块业务错误 ──

var ErrUserNotFound = errors.New("用户不存在")

// UserService 用户业务接口
type UserService interface {
	Create(ctx context.Context, fields model.Fields) (*dto.UserDetailResponse, error)
	// GetByID 用户完整序列化
	GetByID(ctx context.Context, id int64) (*dto.UserDetailResponse, error)
	// ListCourses 分别查询两张关联表，任教课程在前
	ListCourses(ctx context.Context, id int64) ([]dto.CourseSummary, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, fields model.Fields) (*dto.UserDetailResponse, error) {
	user := model.NewUser(fields)

	if err := s.repo.User.Create(ctx, user); err != nil {
		err = pkgerrors.Classify(err)
		s.logger.Error("创建用户失败", zap.Stringp("netid", user.NetID), zap.Error(err))
		return nil, err
	}

	return SerializeUser(user), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *userService) GetByID(ctx context.Context, id int64) (*dto.UserDetailResponse, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return SerializeUser(user), nil
}

// ────────────────────── ListCourses ──────────────────────

func (s *userService) ListCourses(ctx context.Context, id int64) ([]dto.CourseSummary, error) {
	if _, err := s.getUser(ctx, id); err != nil {
		return nil, err
	}

	instructing, err := s.repo.User.ListInstructorCourses(ctx, id)
	if err != nil {
		s.logger.Error("查询任教课程失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	studying, err := s.repo.User.ListStudentCourses(ctx, id)
	if err != nil {
		s.logger.Error("查询选修课程失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return joinCourseSummaries(instructing, studying), nil
}

// ────────────────────── Delete ──────────────────────

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.User.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("删除用户失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *userService) getUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}
