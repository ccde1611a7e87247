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

// ── 作业模块业务错误 ──

var ErrAssignmentNotFound = errors.New("作业不存在")

// AssignmentService 作业业务接口
type AssignmentService interface {
	Create(ctx context.Context, fields model.Fields) (*dto.AssignmentDetailResponse, error)
	// GetByID 作业完整序列化；所属课程缺失时返回 ErrAssignmentCourseMissing
	GetByID(ctx context.Context, id int64) (*dto.AssignmentDetailResponse, error)
	ListByCourse(ctx context.Context, courseID int64) ([]dto.AssignmentSummary, error)
	Delete(ctx context.Context, id int64) error
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *assignmentService) Create(ctx context.Context, fields model.Fields) (*dto.AssignmentDetailResponse, error) {
	assignment := model.NewAssignment(fields)

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		err = pkgerrors.Classify(err)
		s.logger.Error("创建作业失败",
			zap.Stringp("title", assignment.Title),
			zap.Int64("course_id", assignment.CourseID),
			zap.Error(err),
		)
		return nil, err
	}

	// 重新加载以带出所属课程
	return s.GetByID(ctx, assignment.ID)
}

// ────────────────────── GetByID ──────────────────────

func (s *assignmentService) GetByID(ctx context.Context, id int64) (*dto.AssignmentDetailResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询作业失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	resp, err := SerializeAssignment(assignment)
	if err != nil {
		s.logger.Warn("作业引用的课程不存在",
			zap.Int64("id", id),
			zap.Int64("course_id", assignment.CourseID),
		)
		return nil, err
	}
	return resp, nil
}

// ────────────────────── ListByCourse ──────────────────────

func (s *assignmentService) ListByCourse(ctx context.Context, courseID int64) ([]dto.AssignmentSummary, error) {
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Int64("id", courseID), zap.Error(err))
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("列出课程作业失败", zap.Int64("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return subserializeAssignments(assignments), nil
}

// ────────────────────── Delete ──────────────────────

func (s *assignmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Assignment.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("删除作业失败", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
