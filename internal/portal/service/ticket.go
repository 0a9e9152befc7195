package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/store"
	"github.com/yklabs/portal/pkg/idx"
	"github.com/yklabs/portal/pkg/slogx"
)

// TicketService files support tickets on behalf of authenticated users.
type TicketService struct {
	Store store.Store
}

// TicketParams carries a new support ticket request.
type TicketParams struct {
	Subject  string
	Message  string
	Category string
	Priority string
}

// Create files a ticket for the given user. New tickets always start open;
// callers cannot pick a status.
func (s *TicketService) Create(ctx context.Context, userID int64, p TicketParams) (domain.Ticket, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Ticket{}, ErrUserNotFound
		}
		return domain.Ticket{}, err
	}

	ticket := domain.Ticket{
		ID:        idx.New().String(),
		UserID:    userID,
		Subject:   p.Subject,
		Message:   p.Message,
		Category:  p.Category,
		Priority:  p.Priority,
		Status:    domain.TicketStatusOpen,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Tickets().CreateTicket(ctx, ticket); err != nil {
		return domain.Ticket{}, err
	}

	slogx.FromContext(ctx).Info("ticket created",
		slog.String("ticket_id", ticket.ID),
		slog.Int64("user_id", userID),
		slog.String("priority", ticket.Priority),
	)
	return ticket, nil
}

// ListForUser returns the user's tickets, newest first.
func (s *TicketService) ListForUser(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	return s.Store.Tickets().ListTicketsByUser(ctx, userID)
}
