package portalsdk

import (
	"context"
	"fmt"
	"net/http"
)

// Session is an authenticated view of the API. Tokens are long-lived and not
// refreshed; when one expires the caller logs in again.
type Session struct {
	client *SDKClient
	token  string
	user   User
}

func newSession(client *SDKClient, auth AuthResponse) *Session {
	return &Session{client: client, token: auth.Token, user: auth.User}
}

// NewSessionFromToken builds a session around an existing token, for callers
// that persist tokens across runs.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Token returns the bearer token backing this session.
func (s *Session) Token() string { return s.token }

// User returns the account snapshot captured at login or registration. It is
// not refreshed; use Profile for current state.
func (s *Session) User() User { return s.user }

// Profile calls GET /api/profile for the authenticated user.
func (s *Session) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/profile", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Enroll adds the course to the user's enrolled set and returns the updated
// set. Enrolling in the same course twice is not an error.
func (s *Session) Enroll(ctx context.Context, courseID int64) ([]int64, error) {
	var out EnrollResponse
	path := fmt.Sprintf("/api/courses/%d/enroll", courseID)
	if err := s.client.doJSON(ctx, http.MethodPost, path, s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.EnrolledCourses, nil
}

// CreateTicket files a support ticket for the authenticated user.
func (s *Session) CreateTicket(ctx context.Context, req TicketRequest) (*Ticket, error) {
	var out Ticket
	if err := s.client.doJSON(ctx, http.MethodPost, "/api/tickets", s.token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
