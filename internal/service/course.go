package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahalla-hub/community-services/internal/auth"
	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
)

// maxSlots bounds course capacity to something a community center can hold.
const maxSlots = 100_000

// CourseService orchestrates the course catalog and enrollment.
type CourseService struct {
	courses repository.CourseStore
}

// NewCourseService constructs a CourseService with its dependencies.
func NewCourseService(courses repository.CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

// List returns all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courses.List(ctx)
}

// Get returns a single course by ID.
func (s *CourseService) Get(ctx context.Context, id string) (*model.Course, error) {
	if id == "" {
		return nil, repository.ErrNotFound
	}
	return s.courses.GetByID(ctx, id)
}

// Create validates the request and stores a new course. Admin only.
func (s *CourseService) Create(ctx context.Context, caller *auth.Identity, req model.CourseRequest) (*model.Course, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validateCourse(req); err != nil {
		return nil, err
	}
	course := &model.Course{
		ID:            uuid.New().String(),
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Location:      req.Location,
		Slots:         req.Slots,
		EnrolledCount: 0,
		ImageURL:      req.ImageURL,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

// Update rewrites the editable fields of a course. Admin only.
// The enrolled count is never editable, and slots may not drop below it.
func (s *CourseService) Update(ctx context.Context, caller *auth.Identity, id string, req model.CourseRequest) (*model.Course, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := validateCourse(req); err != nil {
		return nil, err
	}
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Slots < course.EnrolledCount {
		return nil, fmt.Errorf("slots cannot be lower than the current enrolled count (%d)", course.EnrolledCount)
	}

	course.Title = strings.TrimSpace(req.Title)
	course.Description = req.Description
	course.StartDate = req.StartDate
	course.EndDate = req.EndDate
	course.Location = req.Location
	course.Slots = req.Slots
	course.ImageURL = req.ImageURL
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return s.courses.GetByID(ctx, id)
}

// Delete removes a course. Admin only.
func (s *CourseService) Delete(ctx context.Context, caller *auth.Identity, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	return s.courses.Delete(ctx, id)
}

// Enroll signs the caller up for a course, guarding the capacity invariant.
// Preconditions, in order: authenticated caller, no existing enrollment,
// remaining seats. The store performs the final check-and-increment
// atomically, so a stale read here cannot oversell the last seat.
func (s *CourseService) Enroll(ctx context.Context, caller *auth.Identity, courseID string) (*model.Course, error) {
	if err := requireAuth(caller); err != nil {
		return nil, err
	}
	if courseID == "" {
		return nil, repository.ErrNotFound
	}

	course, err := s.courses.Enroll(ctx, courseID, caller.UserID)
	if err != nil {
		// Surface domain errors directly so handlers can set correct HTTP status.
		if errors.Is(err, repository.ErrNotFound) ||
			errors.Is(err, repository.ErrCourseFull) ||
			errors.Is(err, repository.ErrAlreadyEnrolled) {
			return nil, err
		}
		return nil, fmt.Errorf("enroll in course: %w", err)
	}
	return course, nil
}

// IsEnrolled reports whether the caller already holds an enrollment.
func (s *CourseService) IsEnrolled(ctx context.Context, caller *auth.Identity, courseID string) (bool, error) {
	if err := requireAuth(caller); err != nil {
		return false, err
	}
	return s.courses.IsEnrolled(ctx, courseID, caller.UserID)
}

// ListEnrollments returns all enrollments for a course. Admin only.
func (s *CourseService) ListEnrollments(ctx context.Context, caller *auth.Identity, courseID string) ([]model.Enrollment, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.courses.ListEnrollments(ctx, courseID)
}

// EnrolledCourses returns the courses the caller has joined.
func (s *CourseService) EnrolledCourses(ctx context.Context, caller *auth.Identity) ([]model.Course, error) {
	if err := requireAuth(caller); err != nil {
		return nil, err
	}
	return s.courses.ListEnrolledCourses(ctx, caller.UserID)
}

func validateCourse(req model.CourseRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("course title is required")
	}
	if req.Slots < 0 {
		return fmt.Errorf("slots cannot be negative")
	}
	if req.Slots > maxSlots {
		return fmt.Errorf("slots cannot exceed %d", maxSlots)
	}
	return nil
}
