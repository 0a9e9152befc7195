package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/internal/portal/store"
	"github.com/yklabs/portal/internal/portal/store/drivers/memory"
	"github.com/yklabs/portal/pkg/jwtx"
)

func newTestSigner() *jwtx.HS256Signer {
	return &jwtx.HS256Signer{
		Secret: []byte("test-secret"),
		Issuer: "portal-test",
		TTL:    time.Hour,
	}
}

func newAuthService() (*service.AuthService, store.Store) {
	st := memory.NewStore()
	return &service.AuthService{Store: st, Signer: newTestSigner()}, st
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	token, user, err := svc.Register(ctx, service.RegisterParams{
		Email:    "alice@example.com",
		Password: "s3cret",
		Name:     "Alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "user", string(user.Role))
	require.NotEmpty(t, user.PasswordDigest)
	require.NotEqual(t, "s3cret", user.PasswordDigest)

	verifier := &jwtx.HS256Verifier{Secret: []byte("test-secret"), Issuer: "portal-test"}
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)

	loginToken, loginUser, err := svc.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, loginToken)
	require.Equal(t, user.ID, loginUser.ID)
}

func TestAuthService_RegisterExplicitRole(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	_, user, err := svc.Register(ctx, service.RegisterParams{
		Email:    "boss@example.com",
		Password: "pw",
		Name:     "Boss",
		Role:     "manager",
	})
	require.NoError(t, err)
	require.Equal(t, "manager", string(user.Role))

	_, _, err = svc.Register(ctx, service.RegisterParams{
		Email:    "weird@example.com",
		Password: "pw",
		Name:     "Weird",
		Role:     "superuser",
	})
	require.ErrorIs(t, err, service.ErrInvalidRole)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	_, _, err := svc.Register(ctx, service.RegisterParams{Email: "dup@example.com", Password: "pw", Name: "First"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, service.RegisterParams{Email: "dup@example.com", Password: "pw2", Name: "Second"})
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestAuthService_ConcurrentRegistrationSameEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	const n = 20
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.Register(ctx, service.RegisterParams{
				Email:    "race@example.com",
				Password: fmt.Sprintf("pw%d", n),
				Name:     "Racer",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won int
	for err := range errs {
		if err == nil {
			won++
		} else {
			require.ErrorIs(t, err, service.ErrEmailTaken)
		}
	}
	require.Equal(t, 1, won)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	_, _, err := svc.Register(ctx, service.RegisterParams{Email: "bob@example.com", Password: "right", Name: "Bob"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "bob@example.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "right")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}
