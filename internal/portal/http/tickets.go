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

type TicketsHandler struct {
	TicketService *service.TicketService
	Metrics       *metricsx.Collector
}

// ServeHTTP files a support ticket for the authenticated user.
//
//	@Summary		Create a support ticket
//	@Description	Files a ticket on behalf of the authenticated user. New tickets always start open.
//	@Tags			Support
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.TicketRequest	true	"Ticket payload"
//	@Success		201		{object}	portalsdk.Ticket
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing subject or message"
//	@Failure		401		{object}	httpx.ErrorResponse	"Missing token"
//	@Failure		403		{object}	httpx.ErrorResponse	"Invalid token"
//	@Failure		404		{object}	httpx.ErrorResponse	"Account no longer exists"
//	@Router			/api/tickets [post].
func (h *TicketsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusForbidden, "invalid token")
		return
	}

	var req portalsdk.TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Subject == "" || req.Message == "" {
		httpx.WriteError(w, http.StatusBadRequest, "subject and message are required")
		return
	}

	ticket, err := h.TicketService.Create(ctx, userID, service.TicketParams{
		Subject:  req.Subject,
		Message:  req.Message,
		Category: req.Category,
		Priority: req.Priority,
	})
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "user not found")
		return
	case err != nil:
		log.Error("ticket creation failed", "user_id", userID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Metrics.RecordTicket()
	httpx.WriteJSON(w, http.StatusCreated, toSDKTicket(ticket))
}
