// Package repository defines the persistence contracts for the community
// services API and the sentinel errors shared by all implementations.
// Two implementations exist: postgres (pgx, the real backend) and memory
// (the mock-data fallback used in development and unit tests).
package repository

import (
	"context"
	"errors"

	"github.com/mahalla-hub/community-services/internal/model"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrCourseFull is returned when a course has no remaining seats.
var ErrCourseFull = errors.New("course is full")

// ErrAlreadyEnrolled is returned when a user holds an enrollment for the course.
var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

// ErrAlreadyRegistered is returned when an account email is already taken.
var ErrAlreadyRegistered = errors.New("email already registered")

// UserStore handles persistence for accounts.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// CourseStore handles persistence for courses and enrollments.
//
// Enroll must perform the duplicate check, the capacity check, and the
// counter increment as one atomic operation so that concurrent attempts for
// the last seat cannot both succeed.
type CourseStore interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id string) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id string) error

	Enroll(ctx context.Context, courseID, userID string) (*model.Course, error)
	IsEnrolled(ctx context.Context, courseID, userID string) (bool, error)
	ListEnrollments(ctx context.Context, courseID string) ([]model.Enrollment, error)
	ListEnrolledCourses(ctx context.Context, userID string) ([]model.Course, error)
}

// EntrepreneurStore handles persistence for the business directory.
type EntrepreneurStore interface {
	List(ctx context.Context) ([]model.Entrepreneur, error)
	GetByID(ctx context.Context, id string) (*model.Entrepreneur, error)
	Create(ctx context.Context, e *model.Entrepreneur) error
}

// UnemployedStore handles persistence for the unemployment registry.
type UnemployedStore interface {
	List(ctx context.Context) ([]model.UnemployedPerson, error)
	GetByID(ctx context.Context, id string) (*model.UnemployedPerson, error)
	Create(ctx context.Context, p *model.UnemployedPerson) error
	UpdateStatus(ctx context.Context, id string, status model.EmploymentStatus) (*model.UnemployedPerson, error)
}

// Store bundles all entity stores behind one backend.
type Store interface {
	Users() UserStore
	Courses() CourseStore
	Entrepreneurs() EntrepreneurStore
	Unemployed() UnemployedStore
}
