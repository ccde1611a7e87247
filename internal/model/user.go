package model

// User 用户表 — 对应 user
// netid 为机构内标识，不做唯一约束
type User struct {
	ID    int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  *string `gorm:"not null"                 json:"name"`
	NetID *string `gorm:"column:netid;not null"    json:"netid"`

	// 关联：教师身份与学生身份互相独立
	InstructorCourses []Course `gorm:"many2many:association1;joinForeignKey:InstructorID;joinReferences:CourseID;constraint:OnDelete:CASCADE" json:"instructor_courses,omitempty"`
	StudentCourses    []Course `gorm:"many2many:association2;joinForeignKey:StudentID;joinReferences:CourseID;constraint:OnDelete:CASCADE"    json:"student_courses,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "user" }

// NewUser 由松散字段构造用户
func NewUser(f Fields) *User {
	return &User{
		Name:  f.StringPtr("name"),
		NetID: f.StringPtr("netid"),
	}
}
