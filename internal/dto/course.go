package dto

// ── 课程模块 DTO ──

// CourseSummary 课程部分序列化：仅标识与标量字段，不展开关联
type CourseSummary struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// CourseDetailResponse 课程完整序列化
type CourseDetailResponse struct {
	ID          int64               `json:"id"`
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	Assignments []AssignmentSummary `json:"assignments"`
	Instructors []UserSummary       `json:"instructors"`
	Students    []UserSummary       `json:"students"`
}
