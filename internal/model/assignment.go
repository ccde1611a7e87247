package model

// Assignment 作业表 — 对应 assignment
type Assignment struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"   json:"id"`
	Title    *string `gorm:"not null"                   json:"title"`
	DueDate  *int64  `gorm:"column:due_date;not null"   json:"due_date"` // 时间戳或天数，含义由调用方约定
	CourseID int64   `gorm:"not null;index"             json:"course_id"`

	// 关联（所属课程，删除课程时级联删除）
	Course *Course `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignment" }

// NewAssignment 由松散字段构造作业
func NewAssignment(f Fields) *Assignment {
	a := &Assignment{
		Title: f.StringPtr("title"),
	}
	if due, ok := f.Int64("due_date"); ok {
		a.DueDate = &due
	}
	if courseID, ok := f.Int64("course_id"); ok {
		a.CourseID = courseID
	}
	return a
}
