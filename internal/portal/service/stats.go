package service

import (
	"context"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
)

// StatsService aggregates platform-wide counters.
type StatsService struct {
	Store store.Store
}

// Aggregate counts users, courses and tickets and sums learning hours across
// all accounts. The counts are read independently, so under heavy writes the
// snapshot may be slightly torn; each figure is individually accurate.
func (s *StatsService) Aggregate(ctx context.Context) (domain.Stats, error) {
	users, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	courses, err := s.Store.Courses().CountCourses(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	tickets, err := s.Store.Tickets().CountTickets(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	hours, err := s.Store.Users().TotalLearningHours(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		TotalUsers:         users,
		TotalCourses:       courses,
		TotalTickets:       tickets,
		TotalLearningHours: hours,
	}, nil
}
