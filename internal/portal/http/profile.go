package http

import (
	"errors"
	"net/http"

	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/pkg/httpx"
	"github.com/yklabs/portal/pkg/slogx"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the authenticated user's account.
//
//	@Summary		Get own profile
//	@Description	Returns the account behind the bearer token, learning stats included.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.User
//	@Failure		401	{object}	httpx.ErrorResponse	"Missing token"
//	@Failure		403	{object}	httpx.ErrorResponse	"Invalid token"
//	@Failure		404	{object}	httpx.ErrorResponse	"Account no longer exists"
//	@Router			/api/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusForbidden, "invalid token")
		return
	}

	user, err := h.UserService.Profile(ctx, userID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		// Token outlived the account.
		httpx.WriteError(w, http.StatusNotFound, "user not found")
		return
	case err != nil:
		log.Error("profile lookup failed", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKUser(user))
}
