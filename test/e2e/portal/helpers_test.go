package portal_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yklabs/portal/pkg/portalsdk"
)

/*
 * Common constants and helper functions for portal end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "portal-test:latest"

	testJWTSecret = "e2e-test-secret-0001"

	seedAdminEmail    = "admin@portal.example"
	seedAdminPassword = "admin123"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Portal Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Portal Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/portal/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupPortalContainer starts the portal in a container and returns the base URL.
func setupPortalContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"3000/tcp"},
		Env: map[string]string{
			"PORTAL_JWT_SECRET":     testJWTSecret,
			"PORTAL_STORE_DRIVER":   "memory",
			"PORTAL_SEED_DEMO_DATA": "true",
			"ENV":                   "test",
			"LOG_LEVEL":             "info",
			"LOG_FORMAT":            "json",
		},
		WaitingFor: wait.ForHTTP("/api/health").
			WithPort("3000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "3000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerFreshUser registers a unique user and returns its session.
func registerFreshUser(t *testing.T, client *portalsdk.SDKClient, prefix string) *portalsdk.Session {
	t.Helper()

	email := fmt.Sprintf("%s-%d@e2e.example", prefix, time.Now().UnixNano())
	session, err := client.Register(context.Background(), portalsdk.RegisterRequest{
		Email:    email,
		Password: "e2e-password",
		Name:     "E2E " + prefix,
	})
	require.NoError(t, err, "Registration should succeed")
	require.NotNil(t, session)

	return session
}

// assertAPIError verifies err is an *APIError with the given status code.
func assertAPIError(t *testing.T, err error, statusCode int, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *portalsdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, statusCode, apiErr.StatusCode, "%s - unexpected status, message: %s", context, apiErr.Message)
}
