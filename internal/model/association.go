package model

import "gorm.io/gorm"

// ── 多对多关联表（纯外键对，无额外属性）──

// CourseInstructor 课程-教师关联 — 对应 association1
type CourseInstructor struct {
	CourseID     int64 `gorm:"primaryKey" json:"course_id"`
	InstructorID int64 `gorm:"primaryKey" json:"instructor_id"`
}

// TableName 指定表名
func (CourseInstructor) TableName() string { return "association1" }

// CourseStudent 课程-学生关联 — 对应 association2
type CourseStudent struct {
	CourseID  int64 `gorm:"primaryKey" json:"course_id"`
	StudentID int64 `gorm:"primaryKey" json:"student_id"`
}

// TableName 指定表名
func (CourseStudent) TableName() string { return "association2" }

// SetupJoinTables 将显式关联模型注册到两端的 many2many 关系上
// 必须在 AutoMigrate 和任何 Association 操作之前调用
func SetupJoinTables(db *gorm.DB) error {
	joins := []struct {
		owner interface{}
		field string
		join  interface{}
	}{
		{&Course{}, "Instructors", &CourseInstructor{}},
		{&Course{}, "Students", &CourseStudent{}},
		{&User{}, "InstructorCourses", &CourseInstructor{}},
		{&User{}, "StudentCourses", &CourseStudent{}},
	}
	for _, j := range joins {
		if err := db.SetupJoinTable(j.owner, j.field, j.join); err != nil {
			return err
		}
	}
	return nil
}

// All 返回需要建表的全部实体模型（关联表随 many2many 关系一并创建）
func All() []interface{} {
	return []interface{}{
		&Course{},
		&User{},
		&Assignment{},
	}
}
