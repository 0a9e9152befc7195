package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
	"github.com/yklabs/portal/pkg/slogx"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService serves the catalogue and handles enrollment.
type CourseService struct {
	Store store.Store
}

// List returns every course in the catalogue.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.Store.Courses().ListCourses(ctx)
}

// Enroll adds the course to the user's enrolled set and returns the updated
// set. Enrolling twice is a no-op, not an error, so retried requests are
// safe. The course is checked before the user so a bogus course id reports
// as such even for a valid account.
func (s *CourseService) Enroll(ctx context.Context, userID, courseID int64) ([]int64, error) {
	if _, err := s.Store.Courses().GetCourseByID(ctx, courseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	enrolled, err := s.Store.Users().EnrollUser(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	slogx.FromContext(ctx).Info("user enrolled",
		slog.Int64("user_id", userID),
		slog.Int64("course_id", courseID),
	)
	return enrolled, nil
}
