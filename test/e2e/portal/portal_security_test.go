package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/pkg/portalsdk"
)

func TestE2E_ProtectedRoutesRequireToken(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)

	// No token at all.
	anonymous := client.NewSessionFromToken("")
	_, err := anonymous.Profile(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, "Missing token should 401")

	// A syntactically bogus token.
	bogus := client.NewSessionFromToken("not-a-jwt")
	_, err = bogus.Profile(ctx)
	assertAPIError(t, err, http.StatusForbidden, "Bogus token should 403")

	_, err = bogus.Enroll(ctx, 1)
	assertAPIError(t, err, http.StatusForbidden, "Bogus token should 403 on enroll")

	_, err = bogus.CreateTicket(ctx, portalsdk.TicketRequest{Subject: "s", Message: "m"})
	assertAPIError(t, err, http.StatusForbidden, "Bogus token should 403 on tickets")
}

func TestE2E_TamperedTokenRejected(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)
	session := registerFreshUser(t, client, "tamper")

	// Flip the last character of the signature.
	token := session.Token()
	require.NotEmpty(t, token)
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := client.NewSessionFromToken(token[:len(token)-1] + string(flipped))

	_, err := tampered.Profile(ctx)
	assertAPIError(t, err, http.StatusForbidden, "Tampered token should 403")
}
