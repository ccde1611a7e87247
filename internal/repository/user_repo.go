package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course-roster/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// GetByID 查询用户并预加载任教课程与选修课程
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	ListInstructorCourses(ctx context.Context, userID int64) ([]model.Course, error)
	ListStudentCourses(ctx context.Context, userID int64) ([]model.Course, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("InstructorCourses", func(db *gorm.DB) *gorm.DB { return db.Order("course.id") }).
		Preload("StudentCourses", func(db *gorm.DB) *gorm.DB { return db.Order("course.id") }).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete 删除用户及其在两张关联表中的记录，课程与作业不受影响
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("instructor_id = ?", id).Delete(&model.CourseInstructor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&model.CourseStudent{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *userRepo) ListInstructorCourses(ctx context.Context, userID int64) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Joins("JOIN association1 ON association1.course_id = course.id").
		Where("association1.instructor_id = ?", userID).
		Order("course.id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *userRepo) ListStudentCourses(ctx context.Context, userID int64) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Joins("JOIN association2 ON association2.course_id = course.id").
		Where("association2.student_id = ?", userID).
		Order("course.id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
