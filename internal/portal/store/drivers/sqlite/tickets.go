package sqlite

import (
	"context"
	"database/sql"

	"github.com/yklabs/portal/internal/portal/domain"
)

type ticketsRepo struct {
	db *sql.DB
}

func (r *ticketsRepo) CreateTicket(ctx context.Context, t domain.Ticket) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tickets (id, user_id, subject, message, category, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Subject, t.Message, t.Category, t.Priority, t.Status, t.CreatedAt,
	)
	return err
}

func (r *ticketsRepo) ListTicketsByUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, subject, message, category, priority, status, created_at
		FROM tickets WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := []domain.Ticket{}
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Category, &t.Priority, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *ticketsRepo) CountTickets(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM tickets`).Scan(&n)
	return n, err
}
