package sqlite

import (
	"context"
	"database/sql"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
)

type coursesRepo struct {
	db *sql.DB
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id int64) (domain.Course, error) {
	var c domain.Course
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, duration, category, lessons FROM courses WHERE id = ?`, id).
		Scan(&c.ID, &c.Title, &c.Description, &c.Duration, &c.Category, &c.Lessons)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}

	c.Materials, err = r.materials(ctx, c.ID)
	if err != nil {
		return domain.Course{}, err
	}
	return c, nil
}

func (r *coursesRepo) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, duration, category, lessons FROM courses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Duration, &c.Category, &c.Lessons); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range courses {
		if courses[i].Materials, err = r.materials(ctx, courses[i].ID); err != nil {
			return nil, err
		}
	}
	return courses, nil
}

func (r *coursesRepo) CountCourses(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM courses`).Scan(&n)
	return n, err
}

func (r *coursesRepo) SeedCourses(ctx context.Context, courses []domain.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range courses {
		res, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO courses (id, title, description, duration, category, lessons)
			VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Title, c.Description, c.Duration, c.Category, c.Lessons,
		)
		if err != nil {
			return err
		}

		// Skip materials when the course row already existed.
		if n, err := res.RowsAffected(); err != nil || n == 0 {
			if err != nil {
				return err
			}
			continue
		}

		for _, m := range c.Materials {
			if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO course_materials (id, course_id, type, title)
				VALUES (?, ?, ?, ?)`,
				m.ID, c.ID, m.Type, m.Title,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (r *coursesRepo) materials(ctx context.Context, courseID int64) ([]domain.Material, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, title FROM course_materials WHERE course_id = ? ORDER BY id`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	materials := []domain.Material{}
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(&m.ID, &m.Type, &m.Title); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

var _ store.Courses = (*coursesRepo)(nil)
