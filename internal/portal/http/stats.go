package http

import (
	"net/http"

	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/pkg/httpx"
	"github.com/yklabs/portal/pkg/slogx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// ServeHTTP returns platform-wide aggregate counters.
//
//	@Summary		Aggregate statistics
//	@Description	Counts of users, courses and tickets, plus total learning hours across all accounts.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	portalsdk.Stats
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/api/stats [get].
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.StatsService.Aggregate(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("stats aggregation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKStats(stats))
}
