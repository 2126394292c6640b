package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
)

func newCourse(id string, slots, enrolled int) *model.Course {
	return &model.Course{
		ID: id, Title: "Course " + id,
		Slots: slots, EnrolledCount: enrolled,
		CreatedAt: time.Now().UTC(),
	}
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	require.NoError(t, users.Create(ctx, &model.User{ID: "u1", Email: "a@example.com"}))
	err := users.Create(ctx, &model.User{ID: "u2", Email: "a@example.com"})
	assert.ErrorIs(t, err, repository.ErrAlreadyRegistered)

	got, err := users.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestEnrollHappyPath(t *testing.T) {
	ctx := context.Background()
	courses := New().Courses()
	require.NoError(t, courses.Create(ctx, newCourse("c1", 2, 0)))

	got, err := courses.Enroll(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.EnrolledCount)

	enrolled, err := courses.IsEnrolled(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.True(t, enrolled)

	enrollments, err := courses.ListEnrollments(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, "u1", enrollments[0].UserID)
}

// TestEnrollScenario walks the spec scenario: slots 1, user A enrolls, user A
// retries, user B is turned away, and state never moves past the cap.
func TestEnrollScenario(t *testing.T) {
	ctx := context.Background()
	courses := New().Courses()
	require.NoError(t, courses.Create(ctx, newCourse("c1", 1, 0)))

	got, err := courses.Enroll(ctx, "c1", "userA")
	require.NoError(t, err)
	assert.Equal(t, 1, got.EnrolledCount)

	_, err = courses.Enroll(ctx, "c1", "userA")
	assert.ErrorIs(t, err, repository.ErrAlreadyEnrolled)

	_, err = courses.Enroll(ctx, "c1", "userB")
	assert.ErrorIs(t, err, repository.ErrCourseFull)

	cur, err := courses.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, cur.EnrolledCount)

	enrollments, err := courses.ListEnrollments(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestEnrollUnknownCourse(t *testing.T) {
	_, err := New().Courses().Enroll(context.Background(), "nope", "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// TestEnrollConcurrentLastSeats hammers a small course from many goroutines
// and verifies the capacity invariant: exactly slots winners, never more.
func TestEnrollConcurrentLastSeats(t *testing.T) {
	ctx := context.Background()
	courses := New().Courses()
	const slots = 5
	const attempts = 40
	require.NoError(t, courses.Create(ctx, newCourse("c1", slots, 0)))

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = courses.Enroll(ctx, "c1", fmt.Sprintf("user-%d", i))
		}(i)
	}
	wg.Wait()

	var won, full int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, repository.ErrCourseFull)
			full++
		}
	}
	assert.Equal(t, slots, won)
	assert.Equal(t, attempts-slots, full)

	cur, err := courses.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, slots, cur.EnrolledCount)
}

func TestUpdateNeverTouchesEnrolledCount(t *testing.T) {
	ctx := context.Background()
	courses := New().Courses()
	require.NoError(t, courses.Create(ctx, newCourse("c1", 10, 0)))
	_, err := courses.Enroll(ctx, "c1", "u1")
	require.NoError(t, err)

	edited := newCourse("c1", 12, 99) // enrolled count in the payload is ignored
	require.NoError(t, courses.Update(ctx, edited))

	cur, err := courses.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 12, cur.Slots)
	assert.Equal(t, 1, cur.EnrolledCount)
}

func TestDeleteCascadesEnrollments(t *testing.T) {
	ctx := context.Background()
	courses := New().Courses()
	require.NoError(t, courses.Create(ctx, newCourse("c1", 5, 0)))
	_, err := courses.Enroll(ctx, "c1", "u1")
	require.NoError(t, err)

	require.NoError(t, courses.Delete(ctx, "c1"))

	mine, err := courses.ListEnrolledCourses(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestUnemployedUpdateStatus(t *testing.T) {
	ctx := context.Background()
	people := New().Unemployed()
	require.NoError(t, people.Create(ctx, &model.UnemployedPerson{
		ID: "p1", Name: "Malika", Age: 32,
		Skills: []string{"Tikuvchilik"}, Status: model.StatusActive,
	}))

	got, err := people.UpdateStatus(ctx, "p1", model.StatusEmployed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusEmployed, got.Status)
	assert.Equal(t, "Malika", got.Name)
	assert.Equal(t, []string{"Tikuvchilik"}, got.Skills)

	_, err = people.UpdateStatus(ctx, "missing", model.StatusEmployed)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Seed()

	courses, err := s.Courses().List(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
	for _, c := range courses {
		assert.GreaterOrEqual(t, c.EnrolledCount, 0)
		assert.LessOrEqual(t, c.EnrolledCount, c.Slots)
	}

	entrepreneurs, err := s.Entrepreneurs().List(ctx)
	require.NoError(t, err)
	assert.Len(t, entrepreneurs, 2)

	people, err := s.Unemployed().List(ctx)
	require.NoError(t, err)
	assert.Len(t, people, 3)
}
