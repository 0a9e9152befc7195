package sqlite

import (
	"context"
	"database/sql"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
)

type usersRepo struct {
	db *sql.DB
}

const selectUser = `
SELECT id, email, password_digest, name, role, registration_date, total_hours
FROM users
`

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE id = ?`, id)
	return r.scanUser(ctx, row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE email = ?`, email)
	return r.scanUser(ctx, row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.User{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO users (email, password_digest, name, role, registration_date, total_hours)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.Email, u.PasswordDigest, u.Name, string(u.Role), u.RegistrationDate, u.LearningStats.TotalHours,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, store.ErrAlreadyExists
		}
		return domain.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	u.ID = id

	for _, courseID := range u.LearningStats.EnrolledCourses {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO enrollments (user_id, course_id) VALUES (?, ?)`, id, courseID); err != nil {
			return domain.User{}, err
		}
	}
	for _, courseID := range u.LearningStats.CompletedCourses {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO completions (user_id, course_id) VALUES (?, ?)`, id, courseID); err != nil {
			return domain.User{}, err
		}
	}
	for _, tr := range u.LearningStats.TestResults {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO test_results (user_id, course_id, score, taken_at) VALUES (?, ?, ?, ?)`,
			id, tr.CourseID, tr.Score, tr.Date); err != nil {
			return domain.User{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.User{}, err
	}
	return r.GetUserByID(ctx, id)
}

func (r *usersRepo) EnrollUser(ctx context.Context, userID, courseID int64) ([]int64, error) {
	var exists int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE id = ?`, userID).Scan(&exists); err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, store.ErrNotFound
	}

	// The unique primary key makes the enroll idempotent and race-free.
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO enrollments (user_id, course_id) VALUES (?, ?)`, userID, courseID); err != nil {
		return nil, err
	}

	return r.enrolledCourses(ctx, userID)
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) TotalLearningHours(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_hours), 0) FROM users`).Scan(&total)
	return total, err
}

func (r *usersRepo) scanUser(ctx context.Context, row *sql.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordDigest, &u.Name, &role, &u.RegistrationDate, &u.LearningStats.TotalHours)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)

	if u.LearningStats.EnrolledCourses, err = r.enrolledCourses(ctx, u.ID); err != nil {
		return domain.User{}, err
	}
	if u.LearningStats.CompletedCourses, err = r.courseIDs(ctx, `SELECT course_id FROM completions WHERE user_id = ? ORDER BY course_id`, u.ID); err != nil {
		return domain.User{}, err
	}
	if u.LearningStats.TestResults, err = r.testResults(ctx, u.ID); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) enrolledCourses(ctx context.Context, userID int64) ([]int64, error) {
	return r.courseIDs(ctx, `SELECT course_id FROM enrollments WHERE user_id = ? ORDER BY course_id`, userID)
}

func (r *usersRepo) courseIDs(ctx context.Context, query string, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *usersRepo) testResults(ctx context.Context, userID int64) ([]domain.TestResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course_id, score, taken_at FROM test_results WHERE user_id = ? ORDER BY taken_at, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.TestResult{}
	for rows.Next() {
		var tr domain.TestResult
		if err := rows.Scan(&tr.CourseID, &tr.Score, &tr.Date); err != nil {
			return nil, err
		}
		results = append(results, tr)
	}
	return results, rows.Err()
}
