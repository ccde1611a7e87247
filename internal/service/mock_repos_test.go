package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"course-roster/internal/model"
	"course-roster/internal/repository"
)

// ── 内存存储：模拟主键生成、非空 / 外键约束与级联删除 ──

type link struct {
	courseID int64
	userID   int64
}

type memStore struct {
	nextID      int64
	courses     map[int64]*model.Course
	assignments map[int64]*model.Assignment
	users       map[int64]*model.User
	instructors map[link]bool
	students    map[link]bool
	// err 非空时所有读操作返回该错误，用于模拟存储故障
	err error
}

func newMemStore() *memStore {
	return &memStore{
		courses:     make(map[int64]*model.Course),
		assignments: make(map[int64]*model.Assignment),
		users:       make(map[int64]*model.User),
		instructors: make(map[link]bool),
		students:    make(map[link]bool),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) repository() *repository.Repository {
	return &repository.Repository{
		Course:     &mockCourseRepo{s: s},
		Assignment: &mockAssignmentRepo{s: s},
		User:       &mockUserRepo{s: s},
	}
}

func notNullViolation(column string) error {
	return &pgconn.PgError{Code: "23502", ColumnName: column}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (s *memStore) usersLinked(links map[link]bool, courseID int64) []model.User {
	var result []model.User
	for _, id := range sortedKeys(s.users) {
		if links[link{courseID, id}] {
			result = append(result, *s.users[id])
		}
	}
	return result
}

func (s *memStore) coursesLinked(links map[link]bool, userID int64) []model.Course {
	var result []model.Course
	for _, id := range sortedKeys(s.courses) {
		if links[link{id, userID}] {
			result = append(result, *s.courses[id])
		}
	}
	return result
}

// loadCourse 返回带预加载关联的副本
func (s *memStore) loadCourse(id int64) *model.Course {
	c := *s.courses[id]
	c.Assignments = nil
	for _, aid := range sortedKeys(s.assignments) {
		if a := s.assignments[aid]; a.CourseID == id {
			c.Assignments = append(c.Assignments, *a)
		}
	}
	c.Instructors = s.usersLinked(s.instructors, id)
	c.Students = s.usersLinked(s.students, id)
	return &c
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	s *memStore
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.Code == nil {
		return notNullViolation("code")
	}
	if course.Name == nil {
		return notNullViolation("name")
	}
	course.ID = m.s.id()
	stored := *course
	m.s.courses[course.ID] = &stored
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	if _, ok := m.s.courses[id]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.s.loadCourse(id), nil
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	var result []model.Course
	for _, id := range sortedKeys(m.s.courses) {
		result = append(result, *m.s.loadCourse(id))
	}
	return result, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.s.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for l := range m.s.instructors {
		if l.courseID == id {
			delete(m.s.instructors, l)
		}
	}
	for l := range m.s.students {
		if l.courseID == id {
			delete(m.s.students, l)
		}
	}
	for aid, a := range m.s.assignments {
		if a.CourseID == id {
			delete(m.s.assignments, aid)
		}
	}
	delete(m.s.courses, id)
	return nil
}

func (m *mockCourseRepo) addLink(links map[link]bool, courseID, userID int64) error {
	if _, ok := m.s.courses[courseID]; !ok {
		return foreignKeyViolation("fk_course")
	}
	if _, ok := m.s.users[userID]; !ok {
		return foreignKeyViolation("fk_user")
	}
	links[link{courseID, userID}] = true
	return nil
}

func (m *mockCourseRepo) AddInstructor(_ context.Context, courseID, userID int64) error {
	return m.addLink(m.s.instructors, courseID, userID)
}

func (m *mockCourseRepo) RemoveInstructor(_ context.Context, courseID, userID int64) error {
	delete(m.s.instructors, link{courseID, userID})
	return nil
}

func (m *mockCourseRepo) ListInstructors(_ context.Context, courseID int64) ([]model.User, error) {
	return m.s.usersLinked(m.s.instructors, courseID), nil
}

func (m *mockCourseRepo) AddStudent(_ context.Context, courseID, userID int64) error {
	return m.addLink(m.s.students, courseID, userID)
}

func (m *mockCourseRepo) RemoveStudent(_ context.Context, courseID, userID int64) error {
	delete(m.s.students, link{courseID, userID})
	return nil
}

func (m *mockCourseRepo) ListStudents(_ context.Context, courseID int64) ([]model.User, error) {
	return m.s.usersLinked(m.s.students, courseID), nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	s *memStore
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	if a.Title == nil {
		return notNullViolation("title")
	}
	if a.DueDate == nil {
		return notNullViolation("due_date")
	}
	if _, ok := m.s.courses[a.CourseID]; !ok {
		return foreignKeyViolation("fk_assignment_course")
	}
	a.ID = m.s.id()
	stored := *a
	stored.Course = nil
	m.s.assignments[a.ID] = &stored
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id int64) (*model.Assignment, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	stored, ok := m.s.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a := *stored
	if c, ok := m.s.courses[a.CourseID]; ok {
		course := *c
		a.Course = &course
	}
	return &a, nil
}

func (m *mockAssignmentRepo) ListByCourse(_ context.Context, courseID int64) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, id := range sortedKeys(m.s.assignments) {
		if a := m.s.assignments[id]; a.CourseID == courseID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.s.assignments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.s.assignments, id)
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	s *memStore
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	if u.Name == nil {
		return notNullViolation("name")
	}
	if u.NetID == nil {
		return notNullViolation("netid")
	}
	u.ID = m.s.id()
	stored := *u
	m.s.users[u.ID] = &stored
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	stored, ok := m.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u := *stored
	u.InstructorCourses = m.s.coursesLinked(m.s.instructors, id)
	u.StudentCourses = m.s.coursesLinked(m.s.students, id)
	return &u, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.s.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for l := range m.s.instructors {
		if l.userID == id {
			delete(m.s.instructors, l)
		}
	}
	for l := range m.s.students {
		if l.userID == id {
			delete(m.s.students, l)
		}
	}
	delete(m.s.users, id)
	return nil
}

func (m *mockUserRepo) ListInstructorCourses(_ context.Context, userID int64) ([]model.Course, error) {
	return m.s.coursesLinked(m.s.instructors, userID), nil
}

func (m *mockUserRepo) ListStudentCourses(_ context.Context, userID int64) ([]model.Course, error) {
	return m.s.coursesLinked(m.s.students, userID), nil
}
