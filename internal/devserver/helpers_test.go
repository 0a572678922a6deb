package devserver

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/models"
)

const testSignKey = "test-sign-key"

func newTestHandler() *Handler {
	return NewHandler(config.ServerConfig{
		HTTPAddress:   "localhost:0",
		TokenSignKey:  testSignKey,
		TokenDuration: time.Hour,
	}, models.NewAppBuildInfo("v1.2.3", "2026-10-18", "abc123"), logger.Nop())
}

// call sends a request through the full router.
func call(h *Handler, method, target, token, deviceUUID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(models.HeaderAccessToken, token)
	}
	if deviceUUID != "" {
		req.Header.Set(models.HeaderDeviceUUID, deviceUUID)
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newDeviceUUID() string {
	return uuid.NewString()
}
