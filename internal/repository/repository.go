package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Course     CourseRepository
	Assignment AssignmentRepository
	User       UserRepository
}

// NewRepository 创建 Repository 聚合
// db 需已通过 model.SetupJoinTables 注册关联表
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Course:     NewCourseRepo(db),
		Assignment: NewAssignmentRepo(db),
		User:       NewUserRepo(db),
	}
}
