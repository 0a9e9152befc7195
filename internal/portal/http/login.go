package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/pkg/httpx"
	"github.com/yklabs/portal/pkg/metricsx"
	"github.com/yklabs/portal/pkg/portalsdk"
	"github.com/yklabs/portal/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	Metrics     *metricsx.Collector
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Verifies email and password and returns a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	portalsdk.AuthResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing email or password"
//	@Failure		401		{object}	httpx.ErrorResponse	"Unknown email or wrong password"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid email or password")
		return
	case err != nil:
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Metrics.RecordLogin()
	httpx.WriteJSON(w, http.StatusOK, portalsdk.AuthResponse{
		Token: token,
		User:  toSDKUser(user),
	})
}
