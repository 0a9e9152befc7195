package domain

import "time"

// Demo credentials created by seeding. Useful for local development and the
// end-to-end suite; disable seeding in real deployments.
const (
	SeedAdminEmail    = "admin@portal.example"
	SeedAdminPassword = "admin123"
	SeedUserEmail     = "user@portal.example"
	SeedUserPassword  = "user123"
)

// SeedUsers returns the demo accounts inserted when the store is empty.
// PasswordDigest is left blank; the caller hashes the seed passwords.
func SeedUsers(now time.Time) []User {
	return []User{
		{
			Email:            SeedAdminEmail,
			Name:             "System Administrator",
			Role:             RoleAdministrator,
			RegistrationDate: now,
			LearningStats: LearningStats{
				TotalHours:       15,
				CompletedCourses: []int64{1, 2},
				EnrolledCourses:  []int64{1, 2, 3},
				TestResults: []TestResult{
					{CourseID: 1, Score: 95, Date: now},
					{CourseID: 2, Score: 88, Date: now},
				},
			},
		},
		{
			Email:            SeedUserEmail,
			Name:             "Regular User",
			Role:             RoleUser,
			RegistrationDate: now,
			LearningStats: LearningStats{
				TotalHours:       8,
				CompletedCourses: []int64{1},
				EnrolledCourses:  []int64{1, 3},
				TestResults: []TestResult{
					{CourseID: 1, Score: 78, Date: now},
				},
			},
		},
	}
}

// SeedCourses returns the starter catalog.
func SeedCourses() []Course {
	return []Course{
		{
			ID:          1,
			Title:       "Getting Started with the Portal",
			Description: "Introductory course covering day-to-day use of the learning portal",
			Duration:    "2 hours",
			Category:    "Mandatory",
			Lessons:     5,
			Materials: []Material{
				{ID: 1, Type: "presentation", Title: "Introduction to the system"},
				{ID: 2, Type: "video", Title: "Video walkthrough"},
			},
		},
		{
			ID:          2,
			Title:       "Information Security Essentials",
			Description: "Fundamentals of information security for all staff",
			Duration:    "4 hours",
			Category:    "Security",
			Lessons:     8,
			Materials: []Material{
				{ID: 3, Type: "document", Title: "Security handbook"},
			},
		},
		{
			ID:          3,
			Title:       "Effective Remote Collaboration",
			Description: "Working practices and tooling for distributed teams",
			Duration:    "3 hours",
			Category:    "Skills",
			Lessons:     6,
			Materials: []Material{
				{ID: 4, Type: "video", Title: "Collaboration tooling overview"},
				{ID: 5, Type: "document", Title: "Remote work guidelines"},
			},
		},
	}
}
