package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"course-roster/internal/dto"
	"course-roster/internal/service"
)

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

type mockCourseService struct {
	service.CourseService
	detail    *dto.CourseDetailResponse
	list      []dto.CourseDetailResponse
	err       error
	deletedID int64
}

func (m *mockCourseService) GetByID(_ context.Context, _ int64) (*dto.CourseDetailResponse, error) {
	return m.detail, m.err
}
func (m *mockCourseService) GetSome(_ context.Context, _ int64) (*dto.CourseDetailResponse, error) {
	return m.detail, m.err
}
func (m *mockCourseService) List(_ context.Context) ([]dto.CourseDetailResponse, error) {
	return m.list, m.err
}
func (m *mockCourseService) Delete(_ context.Context, id int64) error {
	m.deletedID = id
	return m.err
}

type mockAssignmentService struct {
	service.AssignmentService
	detail *dto.AssignmentDetailResponse
	err    error
}

func (m *mockAssignmentService) GetByID(_ context.Context, _ int64) (*dto.AssignmentDetailResponse, error) {
	return m.detail, m.err
}

type mockUserService struct {
	service.UserService
	detail *dto.UserDetailResponse
}

func (m *mockUserService) GetByID(_ context.Context, _ int64) (*dto.UserDetailResponse, error) {
	return m.detail, nil
}

// ═══════════════════════════════════════════════════════════
// Tests
// ═══════════════════════════════════════════════════════════

func TestRun_Course(t *testing.T) {
	svc := &service.Service{Course: &mockCourseService{
		detail: &dto.CourseDetailResponse{ID: 1, Code: "CS101", Name: "Intro",
			Assignments: []dto.AssignmentSummary{}, Instructors: []dto.UserSummary{}, Students: []dto.UserSummary{}},
	}}
	var out bytes.Buffer

	if err := run(context.Background(), svc, &out, "course", []string{"1"}); err != nil {
		t.Fatalf("run 失败: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("输出不是合法 JSON: %v\n%s", err, out.String())
	}
	if got["code"] != "CS101" {
		t.Errorf("code = %v", got["code"])
	}
}

func TestRun_AssignmentMissingCourse(t *testing.T) {
	svc := &service.Service{Assignment: &mockAssignmentService{err: service.ErrAssignmentCourseMissing}}
	var out bytes.Buffer

	err := run(context.Background(), svc, &out, "assignment", []string{"3"})
	if !errors.Is(err, service.ErrAssignmentCourseMissing) {
		t.Fatalf("期望 ErrAssignmentCourseMissing, 实际 %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("出错时不应输出: %s", out.String())
	}
}

func TestRun_User(t *testing.T) {
	svc := &service.Service{User: &mockUserService{
		detail: &dto.UserDetailResponse{ID: 2, Name: "Ada", NetID: "al1", Courses: []dto.CourseSummary{}},
	}}
	var out bytes.Buffer

	if err := run(context.Background(), svc, &out, "user", []string{"2"}); err != nil {
		t.Fatalf("run 失败: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte(`"netid": "al1"`)) {
		t.Errorf("输出缺少 netid: %s", out.String())
	}
}

func TestRun_DeleteCourse(t *testing.T) {
	courses := &mockCourseService{}
	svc := &service.Service{Course: courses}
	var out bytes.Buffer

	if err := run(context.Background(), svc, &out, "delete-course", []string{"7"}); err != nil {
		t.Fatalf("run 失败: %v", err)
	}
	if courses.deletedID != 7 {
		t.Errorf("deletedID = %d", courses.deletedID)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	svc := &service.Service{}
	cases := []struct {
		cmd  string
		args []string
	}{
		{"course", nil},
		{"course", []string{"abc"}},
		{"user", []string{"1", "2"}},
		{"explode", nil},
	}
	for _, tc := range cases {
		if err := run(context.Background(), svc, &bytes.Buffer{}, tc.cmd, tc.args); !errors.Is(err, errUsage) {
			t.Errorf("%s %v: 期望 errUsage, 实际 %v", tc.cmd, tc.args, err)
		}
	}
}
