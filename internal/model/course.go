package model

// Course 课程表 — 对应 course
type Course struct {
	ID   int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code *string `gorm:"not null"                 json:"code"`
	Name *string `gorm:"not null"                 json:"name"`

	// 关联
	Assignments []Assignment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"                                              json:"assignments,omitempty"`
	Instructors []User       `gorm:"many2many:association1;joinForeignKey:CourseID;joinReferences:InstructorID;constraint:OnDelete:CASCADE" json:"instructors,omitempty"`
	Students    []User       `gorm:"many2many:association2;joinForeignKey:CourseID;joinReferences:StudentID;constraint:OnDelete:CASCADE"    json:"students,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "course" }

// NewCourse 由松散字段构造课程，未提供的字段保持 nil，非空约束在落库时由数据库校验
// 显式给出的空串是合法值
func NewCourse(f Fields) *Course {
	return &Course{
		Code: f.StringPtr("code"),
		Name: f.StringPtr("name"),
	}
}
