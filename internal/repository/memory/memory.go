// Package memory implements the repository contracts in process memory.
// It is the mock-data fallback for local development (STORE=memory) and the
// backing store for unit tests. A single mutex guards every operation, so the
// enrollment check-and-increment is trivially atomic.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
)

// Store is the in-memory repository.Store.
type Store struct {
	mu sync.Mutex

	users         map[string]*model.User
	emails        map[string]string // email -> user id
	courses       map[string]*model.Course
	enrollments   map[string]*model.Enrollment
	enrolled      map[[2]string]bool // {courseID, userID} pairs
	entrepreneurs map[string]*model.Entrepreneur
	unemployed    map[string]*model.UnemployedPerson
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		users:         make(map[string]*model.User),
		emails:        make(map[string]string),
		courses:       make(map[string]*model.Course),
		enrollments:   make(map[string]*model.Enrollment),
		enrolled:      make(map[[2]string]bool),
		entrepreneurs: make(map[string]*model.Entrepreneur),
		unemployed:    make(map[string]*model.UnemployedPerson),
	}
}

func (s *Store) Users() repository.UserStore                 { return (*userStore)(s) }
func (s *Store) Courses() repository.CourseStore             { return (*courseStore)(s) }
func (s *Store) Entrepreneurs() repository.EntrepreneurStore { return (*entrepreneurStore)(s) }
func (s *Store) Unemployed() repository.UnemployedStore      { return (*unemployedStore)(s) }

// ─── Users ────────────────────────────────────────────────────────────────────

type userStore Store

func (s *userStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.emails[u.Email]; taken {
		return repository.ErrAlreadyRegistered
	}
	cp := *u
	s.users[u.ID] = &cp
	s.emails[u.Email] = u.ID
	return nil
}

func (s *userStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.emails[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s.users[id]
	return &cp, nil
}

// ─── Courses & enrollments ────────────────────────────────────────────────────

type courseStore Store

func (s *courseStore) List(_ context.Context) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	courses := make([]model.Course, 0, len(s.courses))
	for _, c := range s.courses {
		courses = append(courses, *c)
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].CreatedAt.After(courses[j].CreatedAt)
	})
	return courses, nil
}

func (s *courseStore) GetByID(_ context.Context, id string) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *courseStore) Create(_ context.Context, c *model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.courses[c.ID] = &cp
	return nil
}

func (s *courseStore) Update(_ context.Context, c *model.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.courses[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *c
	cp.EnrolledCount = cur.EnrolledCount // mutated only via Enroll
	cp.CreatedAt = cur.CreatedAt
	s.courses[c.ID] = &cp
	return nil
}

func (s *courseStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.courses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.courses, id)
	for eid, e := range s.enrollments {
		if e.CourseID == id {
			delete(s.enrollments, eid)
			delete(s.enrolled, [2]string{e.CourseID, e.UserID})
		}
	}
	return nil
}

func (s *courseStore) Enroll(_ context.Context, courseID, userID string) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[courseID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if s.enrolled[[2]string{courseID, userID}] {
		return nil, repository.ErrAlreadyEnrolled
	}
	if c.EnrolledCount >= c.Slots {
		return nil, repository.ErrCourseFull
	}

	e := &model.Enrollment{
		ID:        uuid.New().String(),
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}
	s.enrollments[e.ID] = e
	s.enrolled[[2]string{courseID, userID}] = true
	c.EnrolledCount++

	cp := *c
	return &cp, nil
}

func (s *courseStore) IsEnrolled(_ context.Context, courseID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enrolled[[2]string{courseID, userID}], nil
}

func (s *courseStore) ListEnrollments(_ context.Context, courseID string) ([]model.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var enrollments []model.Enrollment
	for _, e := range s.enrollments {
		if e.CourseID == courseID {
			enrollments = append(enrollments, *e)
		}
	}
	sort.Slice(enrollments, func(i, j int) bool {
		return enrollments[i].CreatedAt.Before(enrollments[j].CreatedAt)
	})
	return enrollments, nil
}

func (s *courseStore) ListEnrolledCourses(_ context.Context, userID string) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var enrollments []*model.Enrollment
	for _, e := range s.enrollments {
		if e.UserID == userID {
			enrollments = append(enrollments, e)
		}
	}
	sort.Slice(enrollments, func(i, j int) bool {
		return enrollments[i].CreatedAt.After(enrollments[j].CreatedAt)
	})
	var courses []model.Course
	for _, e := range enrollments {
		if c, ok := s.courses[e.CourseID]; ok {
			courses = append(courses, *c)
		}
	}
	return courses, nil
}

// ─── Entrepreneurs ────────────────────────────────────────────────────────────

type entrepreneurStore Store

func (s *entrepreneurStore) List(_ context.Context) ([]model.Entrepreneur, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]model.Entrepreneur, 0, len(s.entrepreneurs))
	for _, e := range s.entrepreneurs {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *entrepreneurStore) GetByID(_ context.Context, id string) (*model.Entrepreneur, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entrepreneurs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *entrepreneurStore) Create(_ context.Context, e *model.Entrepreneur) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	s.entrepreneurs[e.ID] = &cp
	return nil
}

// ─── Unemployment registry ────────────────────────────────────────────────────

type unemployedStore Store

func (s *unemployedStore) List(_ context.Context) ([]model.UnemployedPerson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	people := make([]model.UnemployedPerson, 0, len(s.unemployed))
	for _, p := range s.unemployed {
		people = append(people, copyPerson(p))
	}
	sort.Slice(people, func(i, j int) bool {
		return people[i].CreatedAt.After(people[j].CreatedAt)
	})
	return people, nil
}

func (s *unemployedStore) GetByID(_ context.Context, id string) (*model.UnemployedPerson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.unemployed[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := copyPerson(p)
	return &cp, nil
}

func (s *unemployedStore) Create(_ context.Context, p *model.UnemployedPerson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := copyPerson(p)
	s.unemployed[p.ID] = &cp
	return nil
}

func (s *unemployedStore) UpdateStatus(_ context.Context, id string, status model.EmploymentStatus) (*model.UnemployedPerson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.unemployed[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Status = status
	cp := copyPerson(p)
	return &cp, nil
}

func copyPerson(p *model.UnemployedPerson) model.UnemployedPerson {
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	return cp
}
