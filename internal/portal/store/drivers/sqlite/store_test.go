package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "portal_test.db")
	s, err := NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(email string) domain.User {
	return domain.User{
		Email:            email,
		PasswordDigest:   "$2a$10$digest",
		Name:             "Test User",
		Role:             domain.RoleUser,
		RegistrationDate: time.Now().UTC().Truncate(time.Second),
		LearningStats:    domain.NewLearningStats(),
	}
}

func TestUsersCreateAndLookup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Users().CreateUser(ctx, testUser("a@x.com"))
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, []int64{}, created.LearningStats.EnrolledCourses)

	byEmail, err := s.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	_, err = s.Users().GetUserByEmail(ctx, "A@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().CreateUser(ctx, testUser("a@x.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsersCreateWithStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("admin@x.com")
	u.LearningStats = domain.LearningStats{
		TotalHours:       15,
		CompletedCourses: []int64{1, 2},
		EnrolledCourses:  []int64{1, 2, 3},
		TestResults: []domain.TestResult{
			{CourseID: 1, Score: 95, Date: time.Now().UTC().Truncate(time.Second)},
		},
	}

	created, err := s.Users().CreateUser(ctx, u)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, created.LearningStats.EnrolledCourses)
	require.Equal(t, []int64{1, 2}, created.LearningStats.CompletedCourses)
	require.Len(t, created.LearningStats.TestResults, 1)
	require.Equal(t, 95, created.LearningStats.TestResults[0].Score)

	total, err := s.Users().TotalLearningHours(ctx)
	require.NoError(t, err)
	require.Equal(t, float64(15), total)
}

func TestEnrollUserIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	u, err := s.Users().CreateUser(ctx, testUser("a@x.com"))
	require.NoError(t, err)

	first, err := s.Users().EnrollUser(ctx, u.ID, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, first)

	second, err := s.Users().EnrollUser(ctx, u.ID, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, second)

	_, err = s.Users().EnrollUser(ctx, 999, 2)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCoursesSeedListGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Courses().SeedCourses(ctx, domain.SeedCourses()))
	require.NoError(t, s.Courses().SeedCourses(ctx, domain.SeedCourses()))

	list, err := s.Courses().ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.NotEmpty(t, list[0].Materials)

	n, err := s.Courses().CountCourses(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	_, err = s.Courses().GetCourseByID(ctx, 42)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTickets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestStore(t)

	u, err := s.Users().CreateUser(ctx, testUser("a@x.com"))
	require.NoError(t, err)

	ticket := domain.Ticket{
		ID:        "01J0TESTTICKETULID0000000",
		UserID:    u.ID,
		Subject:   "Cannot open course",
		Message:   "The video will not play",
		Category:  "technical",
		Priority:  "high",
		Status:    domain.TicketStatusOpen,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Tickets().CreateTicket(ctx, ticket))

	mine, err := s.Tickets().ListTicketsByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, ticket.Subject, mine[0].Subject)

	n, err := s.Tickets().CountTickets(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}
