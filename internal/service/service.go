package service

import (
	"go.uber.org/zap"

	"course-roster/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Course     CourseService
	Assignment AssignmentService
	User       UserService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Course:     NewCourseService(repo, logger),
		Assignment: NewAssignmentService(repo, logger),
		User:       NewUserService(repo, logger),
	}
}
