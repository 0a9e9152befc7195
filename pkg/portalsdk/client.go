package portalsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the unauthenticated surface of the portal API and
// produces Sessions from register or login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the portal at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Health calls GET /api/health.
func (c *SDKClient) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns an authenticated session for it.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/register", "", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// Login authenticates existing credentials and returns a session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var out AuthResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", "", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// Courses fetches the course catalogue. No authentication required.
func (c *SDKClient) Courses(ctx context.Context) ([]Course, error) {
	var out []Course
	if err := c.doJSON(ctx, http.MethodGet, "/api/courses", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats fetches the aggregate platform counters.
func (c *SDKClient) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.doJSON(ctx, http.MethodGet, "/api/stats", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
