package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/internal/portal/domain"
	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/internal/portal/store/drivers/memory"
)

func TestTicketService_Create(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	svc := &service.TicketService{Store: st}
	user := createUser(t, st, "reporter@example.com")

	ticket, err := svc.Create(ctx, user.ID, service.TicketParams{
		Subject:  "Cannot open lesson 3",
		Message:  "The video player shows a blank screen",
		Category: "technical",
		Priority: "high",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ticket.ID)
	require.Equal(t, user.ID, ticket.UserID)
	require.Equal(t, domain.TicketStatusOpen, ticket.Status)
	require.False(t, ticket.CreatedAt.IsZero())

	second, err := svc.Create(ctx, user.ID, service.TicketParams{
		Subject: "Another issue", Message: "Details", Category: "other", Priority: "low",
	})
	require.NoError(t, err)
	require.NotEqual(t, ticket.ID, second.ID)

	tickets, err := svc.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
}

func TestTicketService_CreateUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := &service.TicketService{Store: memory.NewStore()}

	_, err := svc.Create(ctx, 42, service.TicketParams{Subject: "s", Message: "m"})
	require.ErrorIs(t, err, service.ErrUserNotFound)
}
