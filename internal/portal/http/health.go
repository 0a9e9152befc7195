package http

import (
	"net/http"
	"time"

	"github.com/yklabs/portal/pkg/httpx"
	"github.com/yklabs/portal/pkg/portalsdk"
)

// HealthHandler reports service liveness.
//
//	@Summary		Health check
//	@Description	Returns service status, current time and build version.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	portalsdk.HealthResponse
//	@Router			/api/health [get].
func HealthHandler(version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, portalsdk.HealthResponse{
			Status:    "online",
			Timestamp: time.Now().UTC(),
			Version:   version,
		})
	})
}
