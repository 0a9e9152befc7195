package portalsdk

import "time"

// RegisterRequest is the payload for POST /api/register. Role is optional and
// defaults to "user".
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User mirrors the server's account shape. The password digest is never
// present in responses.
type User struct {
	ID               int64         `json:"id"`
	Email            string        `json:"email"`
	Name             string        `json:"name"`
	Role             string        `json:"role"`
	RegistrationDate time.Time     `json:"registrationDate"`
	LearningStats    LearningStats `json:"learningStats"`
}

// LearningStats is a user's progress summary.
type LearningStats struct {
	TotalHours       float64      `json:"totalHours"`
	CompletedCourses []int64      `json:"completedCourses"`
	EnrolledCourses  []int64      `json:"enrolledCourses"`
	TestResults      []TestResult `json:"testResults"`
}

// TestResult is one graded attempt.
type TestResult struct {
	CourseID int64     `json:"courseId"`
	Score    int       `json:"score"`
	Date     time.Time `json:"date"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Course is a catalog entry.
type Course struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    string     `json:"duration"`
	Category    string     `json:"category"`
	Lessons     int        `json:"lessons"`
	Materials   []Material `json:"materials"`
}

// Material is an attachment to a course.
type Material struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// EnrollResponse is returned by the enroll endpoint with the user's full
// enrolled set after the operation.
type EnrollResponse struct {
	EnrolledCourses []int64 `json:"enrolledCourses"`
}

// TicketRequest is the payload for POST /api/tickets.
type TicketRequest struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// Ticket is a filed support request.
type Ticket struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats are the platform-wide aggregate counters.
type Stats struct {
	TotalUsers         int64   `json:"totalUsers"`
	TotalCourses       int64   `json:"totalCourses"`
	TotalTickets       int64   `json:"totalTickets"`
	TotalLearningHours float64 `json:"totalLearningHours"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
