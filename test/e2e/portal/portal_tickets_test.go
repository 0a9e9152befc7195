package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/pkg/portalsdk"
)

func TestE2E_CreateTicket(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)
	session := registerFreshUser(t, client, "ticket")

	ticket, err := session.CreateTicket(ctx, portalsdk.TicketRequest{
		Subject:  "Quiz will not submit",
		Message:  "The submit button does nothing on course 2 quiz",
		Category: "technical",
		Priority: "medium",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ticket.ID)
	require.Equal(t, "open", ticket.Status)
	require.Equal(t, session.User().ID, ticket.UserID)
	require.False(t, ticket.CreatedAt.IsZero())
}

func TestE2E_TicketValidation(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)
	session := registerFreshUser(t, client, "ticketval")

	_, err := session.CreateTicket(ctx, portalsdk.TicketRequest{Subject: "No message body"})
	assertAPIError(t, err, http.StatusBadRequest, "Missing message should be rejected")
}
