package http

import (
	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/pkg/portalsdk"
)

// Conversions from domain types to the wire shapes shared with the SDK.
// Slices come out non-nil so empty collections render as [].

func toSDKUser(u domain.User) portalsdk.User {
	return portalsdk.User{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             string(u.Role),
		RegistrationDate: u.RegistrationDate,
		LearningStats:    toSDKLearningStats(u.LearningStats),
	}
}

func toSDKLearningStats(s domain.LearningStats) portalsdk.LearningStats {
	results := make([]portalsdk.TestResult, 0, len(s.TestResults))
	for _, r := range s.TestResults {
		results = append(results, portalsdk.TestResult{
			CourseID: r.CourseID,
			Score:    r.Score,
			Date:     r.Date,
		})
	}
	return portalsdk.LearningStats{
		TotalHours:       s.TotalHours,
		CompletedCourses: nonNil(s.CompletedCourses),
		EnrolledCourses:  nonNil(s.EnrolledCourses),
		TestResults:      results,
	}
}

func toSDKCourse(c domain.Course) portalsdk.Course {
	materials := make([]portalsdk.Material, 0, len(c.Materials))
	for _, m := range c.Materials {
		materials = append(materials, portalsdk.Material{ID: m.ID, Type: m.Type, Title: m.Title})
	}
	return portalsdk.Course{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Duration:    c.Duration,
		Category:    c.Category,
		Lessons:     c.Lessons,
		Materials:   materials,
	}
}

func toSDKTicket(t domain.Ticket) portalsdk.Ticket {
	return portalsdk.Ticket{
		ID:        t.ID,
		UserID:    t.UserID,
		Subject:   t.Subject,
		Message:   t.Message,
		Category:  t.Category,
		Priority:  t.Priority,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}

func toSDKStats(s domain.Stats) portalsdk.Stats {
	return portalsdk.Stats{
		TotalUsers:         s.TotalUsers,
		TotalCourses:       s.TotalCourses,
		TotalTickets:       s.TotalTickets,
		TotalLearningHours: s.TotalLearningHours,
	}
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
