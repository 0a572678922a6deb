package devserver

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-sync-client/models"
)

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthCheckResponse{
		CurrentServerDateTime: time.Now().UTC(),
		ServerUptime:          time.Since(h.started).Seconds(),
	}
	if h.buildInfo.Released() {
		resp.DeployedGitTag = h.buildInfo.BuildVersion()
	}

	h.writeJSON(w, r, resp)
}
