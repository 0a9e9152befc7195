package domain

import "time"

// Role is the stored access level of a user. Roles are embedded in tokens and
// shown in responses but no route enforces them beyond requiring a valid
// token.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleManager       Role = "manager"
	RoleUser          Role = "user"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleUser:
		return true
	}
	return false
}

// User is a registered account. PasswordDigest is never serialized.
type User struct {
	ID               int64         `json:"id"`
	Email            string        `json:"email"`
	PasswordDigest   string        `json:"-"`
	Name             string        `json:"name"`
	Role             Role          `json:"role"`
	RegistrationDate time.Time     `json:"registrationDate"`
	LearningStats    LearningStats `json:"learningStats"`
}

// LearningStats tracks a user's progress through the catalog.
type LearningStats struct {
	TotalHours       float64      `json:"totalHours"`
	CompletedCourses []int64      `json:"completedCourses"`
	EnrolledCourses  []int64      `json:"enrolledCourses"`
	TestResults      []TestResult `json:"testResults"`
}

// TestResult is one graded attempt, ordered by Date within LearningStats.
type TestResult struct {
	CourseID int64     `json:"courseId"`
	Score    int       `json:"score"`
	Date     time.Time `json:"date"`
}

// NewLearningStats returns empty stats with non-nil slices so JSON renders
// [] rather than null for fresh accounts.
func NewLearningStats() LearningStats {
	return LearningStats{
		CompletedCourses: []int64{},
		EnrolledCourses:  []int64{},
		TestResults:      []TestResult{},
	}
}
