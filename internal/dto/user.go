package dto

// ── 用户模块 DTO ──

// UserSummary 用户部分序列化
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	NetID string `json:"netid"`
}

// UserDetailResponse 用户完整序列化
// Courses 先列出任教课程，再列出选修课程
type UserDetailResponse struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	NetID   string          `json:"netid"`
	Courses []CourseSummary `json:"courses"`
}
