package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("admin123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(digest, "$2"), "expected bcrypt digest, got %q", digest)

	require.NoError(t, VerifyPassword("admin123", digest))
	require.ErrorIs(t, VerifyPassword("admin124", digest), ErrPasswordMismatch)
}

func TestHashPasswordSalted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)

	// Each digest carries its own random salt.
	require.NotEqual(t, a, b)
	require.NoError(t, VerifyPassword("same-password", a))
	require.NoError(t, VerifyPassword("same-password", b))
}

func TestVerifyPasswordMalformedDigestFailsClosed(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{"", "not-a-digest", "$2a$zz$garbage"} {
		require.ErrorIs(t, VerifyPassword("whatever", digest), ErrPasswordMismatch)
	}
}

func TestHashPasswordCostFloor(t *testing.T) {
	t.Parallel()

	digest, err := HashPasswordCost("abcdef", 1)
	require.NoError(t, err)
	require.NoError(t, VerifyPassword("abcdef", digest))
}
