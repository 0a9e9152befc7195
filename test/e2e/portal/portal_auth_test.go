package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/pkg/portalsdk"
)

func TestE2E_RegisterLoginProfile(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)

	session := registerFreshUser(t, client, "flow")
	require.NotEmpty(t, session.Token())
	require.Equal(t, "user", session.User().Role)
	require.Empty(t, session.User().LearningStats.EnrolledCourses)

	// Login with the same credentials yields the same account.
	login, err := client.Login(ctx, session.User().Email, "e2e-password")
	require.NoError(t, err)
	require.Equal(t, session.User().ID, login.User().ID)

	profile, err := login.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, session.User().Email, profile.Email)
}

func TestE2E_DuplicateRegistration(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)

	first := registerFreshUser(t, client, "dup")

	_, err := client.Register(ctx, portalsdk.RegisterRequest{
		Email:    first.User().Email,
		Password: "other-password",
		Name:     "Imposter",
	})
	assertAPIError(t, err, http.StatusBadRequest, "Duplicate registration should fail")
}

func TestE2E_SeededAdminLogin(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := portalsdk.NewSDKClient(baseURL)

	session, err := client.Login(ctx, seedAdminEmail, seedAdminPassword)
	require.NoError(t, err)
	require.Equal(t, "administrator", session.User().Role)

	_, err = client.Login(ctx, seedAdminEmail, "not-the-password")
	assertAPIError(t, err, http.StatusUnauthorized, "Wrong password should be rejected")
}
