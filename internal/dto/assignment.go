package dto

// ── 作业模块 DTO ──

// AssignmentSummary 作业部分序列化
type AssignmentSummary struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	DueDate *int64 `json:"due_date"`
}

// AssignmentDetailResponse 作业完整序列化
// Course 固定为单元素列表，保持与既有客户端的格式兼容
type AssignmentDetailResponse struct {
	ID      int64           `json:"id"`
	Title   string          `json:"title"`
	DueDate *int64          `json:"due_date"`
	Course  []CourseSummary `json:"course"`
}
