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

type RegisterHandler struct {
	AuthService *service.AuthService
	Metrics     *metricsx.Collector
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a new account
//	@Description	Creates a user and returns a bearer token for it. Role is optional and defaults to "user".
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.RegisterRequest	true	"Registration payload"
//	@Success		201		{object}	portalsdk.AuthResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing field, invalid role or duplicate email"
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email, password and name are required")
		return
	}

	token, user, err := h.AuthService.Register(ctx, service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	switch {
	case errors.Is(err, service.ErrInvalidRole):
		httpx.WriteError(w, http.StatusBadRequest, "invalid role")
		return
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "email already registered")
		return
	case err != nil:
		log.Error("registration failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Metrics.RecordRegistration()
	httpx.WriteJSON(w, http.StatusCreated, portalsdk.AuthResponse{
		Token: token,
		User:  toSDKUser(user),
	})
}
