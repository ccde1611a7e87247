package service

import (
	"errors"

	"course-roster/internal/dto"
	"course-roster/internal/model"
)

// ErrAssignmentCourseMissing 作业引用的课程不存在（悬空 course_id 或课程已删除）
var ErrAssignmentCourseMissing = errors.New("作业所属课程不存在")

// ═══════════════════════════════════════════════════════════
// 序列化
// ═══════════════════════════════════════════════════════════
//
// 两种输出形态：
//   - 完整序列化：包含关联实体，关联实体一律使用部分序列化，避免无限展开
//   - 部分序列化（Subserialize）：仅 id 与标量字段
//
// 关联为空时输出 []，不输出 null。

// ── 课程 ──

// SerializeCourse 课程完整序列化
func SerializeCourse(c *model.Course) *dto.CourseDetailResponse {
	return &dto.CourseDetailResponse{
		ID:          c.ID,
		Code:        deref(c.Code),
		Name:        deref(c.Name),
		Assignments: subserializeAssignments(c.Assignments),
		Instructors: subserializeUsers(c.Instructors),
		Students:    subserializeUsers(c.Students),
	}
}

// SerializeCourseSome 课程精简序列化：所有关联实体均为部分形态
// 与 SerializeCourse 各自独立定义，不要假设两者存在包含关系
func SerializeCourseSome(c *model.Course) *dto.CourseDetailResponse {
	resp := &dto.CourseDetailResponse{
		ID:          c.ID,
		Code:        deref(c.Code),
		Name:        deref(c.Name),
		Assignments: make([]dto.AssignmentSummary, 0, len(c.Assignments)),
		Instructors: make([]dto.UserSummary, 0, len(c.Instructors)),
		Students:    make([]dto.UserSummary, 0, len(c.Students)),
	}
	for i := range c.Assignments {
		resp.Assignments = append(resp.Assignments, *SubserializeAssignment(&c.Assignments[i]))
	}
	for i := range c.Instructors {
		resp.Instructors = append(resp.Instructors, *SubserializeUser(&c.Instructors[i]))
	}
	for i := range c.Students {
		resp.Students = append(resp.Students, *SubserializeUser(&c.Students[i]))
	}
	return resp
}

// SubserializeCourse 课程部分序列化
func SubserializeCourse(c *model.Course) *dto.CourseSummary {
	return &dto.CourseSummary{
		ID:   c.ID,
		Code: deref(c.Code),
		Name: deref(c.Name),
	}
}

// ── 作业 ──

// SerializeAssignment 作业完整序列化，course 为所属课程部分形态的单元素列表
// 使用已加载的 Course 引用；引用为空时返回 ErrAssignmentCourseMissing，不输出残缺结构
func SerializeAssignment(a *model.Assignment) (*dto.AssignmentDetailResponse, error) {
	if a.Course == nil || a.Course.ID != a.CourseID {
		return nil, ErrAssignmentCourseMissing
	}
	return &dto.AssignmentDetailResponse{
		ID:      a.ID,
		Title:   deref(a.Title),
		DueDate: a.DueDate,
		Course:  []dto.CourseSummary{*SubserializeCourse(a.Course)},
	}, nil
}

// SubserializeAssignment 作业部分序列化
func SubserializeAssignment(a *model.Assignment) *dto.AssignmentSummary {
	return &dto.AssignmentSummary{
		ID:      a.ID,
		Title:   deref(a.Title),
		DueDate: a.DueDate,
	}
}

// ── 用户 ──

// SerializeUser 用户完整序列化，courses = 任教课程 ++ 选修课程
func SerializeUser(u *model.User) *dto.UserDetailResponse {
	return &dto.UserDetailResponse{
		ID:      u.ID,
		Name:    deref(u.Name),
		NetID:   deref(u.NetID),
		Courses: joinCourseSummaries(u.InstructorCourses, u.StudentCourses),
	}
}

// SubserializeUser 用户部分序列化
func SubserializeUser(u *model.User) *dto.UserSummary {
	return &dto.UserSummary{
		ID:    u.ID,
		Name:  deref(u.Name),
		NetID: deref(u.NetID),
	}
}

// ── 内部辅助方法 ──

// deref 已落库实体的必填文本不会为 nil；未落库时按空串输出
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func subserializeAssignments(assignments []model.Assignment) []dto.AssignmentSummary {
	result := make([]dto.AssignmentSummary, 0, len(assignments))
	for i := range assignments {
		result = append(result, *SubserializeAssignment(&assignments[i]))
	}
	return result
}

func subserializeUsers(users []model.User) []dto.UserSummary {
	result := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		result = append(result, *SubserializeUser(&users[i]))
	}
	return result
}

func joinCourseSummaries(instructing, studying []model.Course) []dto.CourseSummary {
	result := make([]dto.CourseSummary, 0, len(instructing)+len(studying))
	for i := range instructing {
		result = append(result, *SubserializeCourse(&instructing[i]))
	}
	for i := range studying {
		result = append(result, *SubserializeCourse(&studying[i]))
	}
	return result
}
