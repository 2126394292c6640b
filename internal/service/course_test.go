package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahalla-hub/community-services/internal/auth"
	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
	"github.com/mahalla-hub/community-services/internal/repository/memory"
)

var (
	adminCaller = &auth.Identity{UserID: "admin-1", Role: model.RoleAdmin}
	userA       = &auth.Identity{UserID: "user-a", Role: model.RoleUser}
	userB       = &auth.Identity{UserID: "user-b", Role: model.RoleUser}
)

func newCourseService(t *testing.T) *CourseService {
	t.Helper()
	return NewCourseService(memory.New().Courses())
}

func createCourse(t *testing.T, svc *CourseService, slots int) *model.Course {
	t.Helper()
	course, err := svc.Create(context.Background(), adminCaller, model.CourseRequest{
		Title: "Web dasturlash asoslari", Slots: slots,
	})
	require.NoError(t, err)
	require.Equal(t, 0, course.EnrolledCount)
	return course
}

func TestCreateRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)
	req := model.CourseRequest{Title: "Course", Slots: 10}

	_, err := svc.Create(ctx, nil, req)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Create(ctx, userA, req)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(ctx, adminCaller, req)
	assert.NoError(t, err)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)

	_, err := svc.Create(ctx, adminCaller, model.CourseRequest{Title: "  ", Slots: 10})
	assert.Error(t, err)

	_, err = svc.Create(ctx, adminCaller, model.CourseRequest{Title: "Course", Slots: -1})
	assert.Error(t, err)

	_, err = svc.Create(ctx, adminCaller, model.CourseRequest{Title: "Course", Slots: maxSlots + 1})
	assert.Error(t, err)

	// Zero slots is a valid (immediately full) course.
	course, err := svc.Create(ctx, adminCaller, model.CourseRequest{Title: "Course", Slots: 0})
	require.NoError(t, err)
	assert.True(t, course.IsFull())
}

// TestEnrollScenario is the full capacity scenario: slots 1, user A enrolls,
// user A retries, user B is refused, state unchanged throughout.
func TestEnrollScenario(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)
	course := createCourse(t, svc, 1)

	got, err := svc.Enroll(ctx, userA, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.EnrolledCount)

	_, err = svc.Enroll(ctx, userA, course.ID)
	assert.ErrorIs(t, err, repository.ErrAlreadyEnrolled)

	_, err = svc.Enroll(ctx, userB, course.ID)
	assert.ErrorIs(t, err, repository.ErrCourseFull)

	cur, err := svc.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cur.EnrolledCount)
	assert.LessOrEqual(t, cur.EnrolledCount, cur.Slots)
}

func TestEnrollRequiresAuthentication(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)
	course := createCourse(t, svc, 5)

	_, err := svc.Enroll(ctx, nil, course.ID)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// Authentication failure leaves the course untouched.
	cur, err := svc.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, cur.EnrolledCount)
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc := newCourseService(t)
	_, err := svc.Enroll(context.Background(), userA, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEnrolledCourses(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)
	c1 := createCourse(t, svc, 5)
	c2 := createCourse(t, svc, 5)

	_, err := svc.Enroll(ctx, userA, c1.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, userA, c2.ID)
	require.NoError(t, err)

	mine, err := svc.EnrolledCourses(ctx, userA)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.EnrolledCourses(ctx, userB)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	_, err = svc.EnrolledCourses(ctx, nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestIsEnrolled(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)
	course := createCourse(t, svc, 5)

	_, err := svc.Enroll(ctx, userA, course.ID)
	require.NoError(t, err)

	enrolled, err := svc.IsEnrolled(ctx, userA, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)

	enrolled, err = svc.IsEnrolled(ctx, userB, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}

func TestUpdateGuardsInvariant(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)
	course := createCourse(t, svc, 3)

	_, err := svc.Enroll(ctx, userA, course.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, userB, course.ID)
	require.NoError(t, err)

	// Shrinking below the enrolled count would break 0 ≤ enrolled ≤ slots.
	_, err = svc.Update(ctx, adminCaller, course.ID, model.CourseRequest{
		Title: "Smaller", Slots: 1,
	})
	assert.Error(t, err)

	got, err := svc.Update(ctx, adminCaller, course.ID, model.CourseRequest{
		Title: "Bigger", Slots: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, got.Slots)
	assert.Equal(t, 2, got.EnrolledCount)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)
	course := createCourse(t, svc, 5)

	assert.ErrorIs(t, svc.Delete(ctx, userA, course.ID), ErrForbidden)
	assert.NoError(t, svc.Delete(ctx, adminCaller, course.ID))

	_, err := svc.Get(ctx, course.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListEnrollmentsRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newCourseService(t)
	course := createCourse(t, svc, 5)

	_, err := svc.Enroll(ctx, userA, course.ID)
	require.NoError(t, err)

	_, err = svc.ListEnrollments(ctx, userA, course.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	enrollments, err := svc.ListEnrollments(ctx, adminCaller, course.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, userA.UserID, enrollments[0].UserID)
}
