package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"course-roster/internal/model"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	// GetByID 查询课程并预加载作业、教师、学生
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	// Delete 删除课程，同时删除其全部作业与关联记录
	Delete(ctx context.Context, id int64) error

	AddInstructor(ctx context.Context, courseID, userID int64) error
	RemoveInstructor(ctx context.Context, courseID, userID int64) error
	ListInstructors(ctx context.Context, courseID int64) ([]model.User, error)

	AddStudent(ctx context.Context, courseID, userID int64) error
	RemoveStudent(ctx context.Context, courseID, userID int64) error
	ListStudents(ctx context.Context, courseID int64) ([]model.User, error)
}

// courseRepo CourseRepository 的 GORM 实现
type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	var course model.Course
	err := r.preloaded(ctx).
		Where("id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.preloaded(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Instructors", func(db *gorm.DB) *gorm.DB { return db.Order(`"user".id`) }).
		Preload("Students", func(db *gorm.DB) *gorm.DB { return db.Order(`"user".id`) })
}

// Delete 显式级联：关联记录 → 作业 → 课程，课程不存在时返回 gorm.ErrRecordNotFound
func (r *courseRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseInstructor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseStudent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Assignment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Course{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ── 教师关联（association1）──

func (r *courseRepo) AddInstructor(ctx context.Context, courseID, userID int64) error {
	link := &model.CourseInstructor{CourseID: courseID, InstructorID: userID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
}

func (r *courseRepo) RemoveInstructor(ctx context.Context, courseID, userID int64) error {
	return r.db.WithContext(ctx).
		Where("course_id = ? AND instructor_id = ?", courseID, userID).
		Delete(&model.CourseInstructor{}).Error
}

func (r *courseRepo) ListInstructors(ctx context.Context, courseID int64) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Joins(`JOIN association1 ON association1.instructor_id = "user".id`).
		Where("association1.course_id = ?", courseID).
		Order(`"user".id`).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ── 学生关联（association2）──

func (r *courseRepo) AddStudent(ctx context.Context, courseID, userID int64) error {
	link := &model.CourseStudent{CourseID: courseID, StudentID: userID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
}

func (r *courseRepo) RemoveStudent(ctx context.Context, courseID, userID int64) error {
	return r.db.WithContext(ctx).
		Where("course_id = ? AND student_id = ?", courseID, userID).
		Delete(&model.CourseStudent{}).Error
}

func (r *courseRepo) ListStudents(ctx context.Context, courseID int64) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Joins(`JOIN association2 ON association2.student_id = "user".id`).
		Where("association2.course_id = ?", courseID).
		Order(`"user".id`).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
