// Package memory implements the store on in-process data structures. It is
// the default backend: all state is lost on restart by design.
//
// Every mutating operation takes the write lock and id allocation is a
// counter incremented under that lock, so concurrent registrations can never
// observe the same id and concurrent enrollments can never lose an update.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
)

type Store struct {
	mu sync.RWMutex

	users      map[int64]domain.User
	emailIndex map[string]int64
	nextUserID int64

	courses map[int64]domain.Course
	tickets []domain.Ticket
}

func NewStore() *Store {
	return &Store{
		users:      make(map[int64]domain.User),
		emailIndex: make(map[string]int64),
		courses:    make(map[int64]domain.Course),
	}
}

func (s *Store) Users() store.Users     { return &usersRepo{s: s} }
func (s *Store) Courses() store.Courses { return &coursesRepo{s: s} }
func (s *Store) Tickets() store.Tickets { return &ticketsRepo{s: s} }

// ApplyMigrations is a no-op; there is no schema to prepare.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() error { return nil }

type usersRepo struct {
	s *Store
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.emailIndex[email]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return copyUser(r.s.users[id]), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.emailIndex[u.Email]; taken {
		return domain.User{}, store.ErrAlreadyExists
	}

	r.s.nextUserID++
	u.ID = r.s.nextUserID

	stored := copyUser(u)
	r.s.users[u.ID] = stored
	r.s.emailIndex[u.Email] = u.ID

	return copyUser(stored), nil
}

func (r *usersRepo) EnrollUser(ctx context.Context, userID, courseID int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return nil, store.ErrNotFound
	}

	if !slices.Contains(u.LearningStats.EnrolledCourses, courseID) {
		enrolled := append(slices.Clone(u.LearningStats.EnrolledCourses), courseID)
		u.LearningStats.EnrolledCourses = enrolled
		r.s.users[userID] = u
	}

	return slices.Clone(u.LearningStats.EnrolledCourses), nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.users)), nil
}

func (r *usersRepo) TotalLearningHours(ctx context.Context) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var total float64
	for _, u := range r.s.users {
		total += u.LearningStats.TotalHours
	}
	return total, nil
}

type coursesRepo struct {
	s *Store
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id int64) (domain.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.courses[id]
	if !ok {
		return domain.Course{}, store.ErrNotFound
	}
	return copyCourse(c), nil
}

func (r *coursesRepo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		out = append(out, copyCourse(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *coursesRepo) CountCourses(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.courses)), nil
}

func (r *coursesRepo) SeedCourses(ctx context.Context, courses []domain.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range courses {
		if _, exists := r.s.courses[c.ID]; exists {
			continue
		}
		r.s.courses[c.ID] = copyCourse(c)
	}
	return nil
}

type ticketsRepo struct {
	s *Store
}

func (r *ticketsRepo) CreateTicket(ctx context.Context, t domain.Ticket) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.tickets = append(r.s.tickets, t)
	return nil
}

func (r *ticketsRepo) ListTicketsByUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Ticket
	for i := len(r.s.tickets) - 1; i >= 0; i-- {
		if r.s.tickets[i].UserID == userID {
			out = append(out, r.s.tickets[i])
		}
	}
	return out, nil
}

func (r *ticketsRepo) CountTickets(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.tickets)), nil
}

// copyUser deep-copies the slices inside LearningStats so callers can never
// alias the store's internal state.
func copyUser(u domain.User) domain.User {
	u.LearningStats.CompletedCourses = slices.Clone(u.LearningStats.CompletedCourses)
	u.LearningStats.EnrolledCourses = slices.Clone(u.LearningStats.EnrolledCourses)
	u.LearningStats.TestResults = slices.Clone(u.LearningStats.TestResults)
	return u
}

func copyCourse(c domain.Course) domain.Course {
	c.Materials = slices.Clone(c.Materials)
	return c
}
