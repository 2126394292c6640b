// Package model defines the core domain types for the community services API.
package model

import "time"

// Role is the coarse permission level attached to a user account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Course is a training course with a fixed number of seats.
// Start/end dates are opaque ISO date strings supplied by the admin forms.
type Course struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Location      string    `json:"location"`
	Slots         int       `json:"slots"`
	EnrolledCount int       `json:"enrolled_count"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
}

// Remaining returns the number of available seats.
func (c *Course) Remaining() int {
	return c.Slots - c.EnrolledCount
}

// IsFull returns true when no seats remain.
func (c *Course) IsFull() bool {
	return c.EnrolledCount >= c.Slots
}

// Enrollment links a user to a course they have joined.
// Unique on (UserID, CourseID); there is no unenroll.
type Enrollment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Entrepreneur is a directory entry for a local business owner.
type Entrepreneur struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"business_name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	ContactInfo  string    `json:"contact_info"`
	JoinDate     string    `json:"join_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmploymentStatus tracks an unemployed person through the registry.
type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "active"
	StatusEmployed   EmploymentStatus = "employed"
	StatusInTraining EmploymentStatus = "in-training"
)

// ValidStatus reports whether s is one of the known registry statuses.
func ValidStatus(s EmploymentStatus) bool {
	switch s {
	case StatusActive, StatusEmployed, StatusInTraining:
		return true
	}
	return false
}

// UnemployedPerson is a registry entry managed by administrators.
type UnemployedPerson struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Age              int              `json:"age"`
	Skills           []string         `json:"skills"`
	Education        string           `json:"education"`
	ContactInfo      string           `json:"contact_info"`
	RegistrationDate string           `json:"registration_date"`
	Status           EmploymentStatus `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ─── Request payloads ─────────────────────────────────────────────────────────

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the signed session token and the resolved identity.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CourseRequest is the payload for creating or updating a course.
// EnrolledCount is intentionally absent: it is mutated only by enrollment.
type CourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location"`
	Slots       int    `json:"slots"`
	ImageURL    string `json:"image_url"`
}

// EntrepreneurRequest is the payload for adding a directory entry.
type EntrepreneurRequest struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	ContactInfo  string `json:"contact_info"`
	JoinDate     string `json:"join_date"`
}

// UnemployedRequest is the payload for adding a registry entry.
type UnemployedRequest struct {
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Skills           []string `json:"skills"`
	Education        string   `json:"education"`
	ContactInfo      string   `json:"contact_info"`
	RegistrationDate string   `json:"registration_date"`
}

// StatusUpdateRequest is the payload for the registry status transition.
type StatusUpdateRequest struct {
	Status EmploymentStatus `json:"status"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
