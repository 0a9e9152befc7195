package store

import (
	"context"
	"errors"

	"github.com/yklabs/portal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (memory, sqlite)
// implement it. Sub-repositories keep concerns tidy and let handlers depend
// on exactly what they use.
type Store interface {
	Users() Users
	Courses() Courses
	Tickets() Tickets

	// ApplyMigrations prepares the backing schema. Drivers without a schema
	// return nil.
	ApplyMigrations() error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail does an exact, case-sensitive match.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user and allocates its id atomically.
	// Returns ErrAlreadyExists when the email is taken; the uniqueness check
	// and the insert are a single atomic step.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// EnrollUser adds courseID to the user's enrolled set if absent and
	// returns the resulting set. The read-modify-write is atomic, so two
	// concurrent enrollments cannot lose an update.
	EnrollUser(ctx context.Context, userID, courseID int64) ([]int64, error)

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int64, error)

	// TotalLearningHours sums LearningStats.TotalHours across all users.
	TotalLearningHours(ctx context.Context) (float64, error)
}

type Courses interface {
	// GetCourseByID returns a course by id.
	GetCourseByID(ctx context.Context, id int64) (domain.Course, error)

	// ListCourses returns the full catalog ordered by id.
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// CountCourses returns the catalog size.
	CountCourses(ctx context.Context) (int64, error)

	// SeedCourses inserts catalog entries, skipping ids that already exist.
	SeedCourses(ctx context.Context, courses []domain.Course) error
}

type Tickets interface {
	// CreateTicket stores a new ticket. The caller supplies the ULID id.
	CreateTicket(ctx context.Context, t domain.Ticket) error

	// ListTicketsByUser returns a user's tickets, newest first.
	ListTicketsByUser(ctx context.Context, userID int64) ([]domain.Ticket, error)

	// CountTickets returns the total number of tickets.
	CountTickets(ctx context.Context) (int64, error)
}
