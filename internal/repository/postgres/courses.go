package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahalla-hub/community-services/internal/model"
	"github.com/mahalla-hub/community-services/internal/repository"
)

const courseColumns = `id, title, description, start_date, end_date, location,
	slots, enrolled_count, image_url, created_at`

// CourseRepository handles persistence for courses and enrollments.
type CourseRepository struct {
	db *pgxpool.Pool
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	var c model.Course
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.StartDate, &c.EndDate,
		&c.Location, &c.Slots, &c.EnrolledCount, &c.ImageURL, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all courses ordered by creation time descending.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+courseColumns+` FROM courses ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

// GetByID returns a single course or ErrNotFound.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	c, err := scanCourse(r.db.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return c, nil
}

// Create inserts a new course with a zero enrolled count.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO courses (id, title, description, start_date, end_date,
		 location, slots, enrolled_count, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Title, c.Description, c.StartDate, c.EndDate,
		c.Location, c.Slots, c.EnrolledCount, c.ImageURL, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// Update rewrites the editable course fields. enrolled_count is never touched
// here; only Enroll mutates it.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE courses
		 SET title = $2, description = $3, start_date = $4, end_date = $5,
		     location = $6, slots = $7, image_url = $8
		 WHERE id = $1`,
		c.ID, c.Title, c.Description, c.StartDate, c.EndDate,
		c.Location, c.Slots, c.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a course and its enrollments (cascade in the schema).
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Enroll performs a concurrency-safe enrollment inside a transaction.
//
// The course row is locked with SELECT … FOR UPDATE so concurrent attempts
// serialise, and the counter increment is additionally conditional on
// enrolled_count < slots. Two concurrent calls for the last seat therefore
// produce exactly one enrollment; the loser sees ErrCourseFull.
func (r *CourseRepository) Enroll(ctx context.Context, courseID, userID string) (*model.Course, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// Lock the course row for the duration of the transaction.
	var slots, enrolled int
	err = tx.QueryRow(ctx,
		`SELECT slots, enrolled_count FROM courses WHERE id = $1 FOR UPDATE`,
		courseID,
	).Scan(&slots, &enrolled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("lock course row: %w", err)
	}

	// Duplicate check comes before the capacity check so that a user who is
	// already in sees AlreadyEnrolled even when the course has since filled.
	var dup int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND user_id = $2`,
		courseID, userID,
	).Scan(&dup)
	if err != nil {
		return nil, fmt.Errorf("check duplicate enrollment: %w", err)
	}
	if dup > 0 {
		err = repository.ErrAlreadyEnrolled
		return nil, err
	}

	if enrolled >= slots {
		err = repository.ErrCourseFull
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO enrollments (id, course_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), courseID, userID, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	// Conditional increment guards the capacity invariant even if the lock
	// above were ever weakened.
	tag, err := tx.Exec(ctx,
		`UPDATE courses SET enrolled_count = enrolled_count + 1
		 WHERE id = $1 AND enrolled_count < slots`,
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("increment enrolled_count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = repository.ErrCourseFull
		return nil, err
	}

	course, err := scanCourse(tx.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, courseID,
	))
	if err != nil {
		return nil, fmt.Errorf("reload course: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return course, nil
}

// IsEnrolled reports whether the user already holds an enrollment.
func (r *CourseRepository) IsEnrolled(ctx context.Context, courseID, userID string) (bool, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1 AND user_id = $2`,
		courseID, userID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return n > 0, nil
}

// ListEnrollments returns all enrollments for a course, oldest first.
func (r *CourseRepository) ListEnrollments(ctx context.Context, courseID string) ([]model.Enrollment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, course_id, created_at
		 FROM enrollments
		 WHERE course_id = $1
		 ORDER BY created_at ASC`,
		courseID,
	)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.UserID, &e.CourseID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// ListEnrolledCourses returns the courses the user has joined, newest first.
func (r *CourseRepository) ListEnrolledCourses(ctx context.Context, userID string) ([]model.Course, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.title, c.description, c.start_date, c.end_date,
		        c.location, c.slots, c.enrolled_count, c.image_url, c.created_at
		 FROM courses c
		 JOIN enrollments e ON e.course_id = c.id
		 WHERE e.user_id = $1
		 ORDER BY e.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list enrolled courses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}
