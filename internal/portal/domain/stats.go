package domain

// Stats are the public aggregate counters. TotalLearningHours is the sum of
// LearningStats.TotalHours across all current users.
type Stats struct {
	TotalUsers         int64   `json:"totalUsers"`
	TotalCourses       int64   `json:"totalCourses"`
	TotalTickets       int64   `json:"totalTickets"`
	TotalLearningHours float64 `json:"totalLearningHours"`
}
