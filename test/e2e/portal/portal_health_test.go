package portal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yklabs/portal/pkg/portalsdk"
)

func TestE2E_Health(t *testing.T) {
	baseURL, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "online", health.Status)
	require.NotEmpty(t, health.Version)
	require.WithinDuration(t, time.Now(), health.Timestamp, time.Minute)
}
