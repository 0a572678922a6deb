package auth

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-sync-client/internal/logger"
)

// SignOutHandler implements adapter.UnauthorizedHandler: the server no
// longer accepts the token, so it is dropped and onSignOut is called.
type SignOutHandler struct {
	credentials *Credentials
	onSignOut   func(ctx context.Context)
	count       atomic.Int64
	logger      *logger.Logger
}

// NewSignOutHandler returns a handler clearing credentials. onSignOut may be
// nil.
func NewSignOutHandler(credentials *Credentials, onSignOut func(ctx context.Context), logger *logger.Logger) *SignOutHandler {
	return &SignOutHandler{credentials: credentials, onSignOut: onSignOut, logger: logger}
}

func (h *SignOutHandler) UserWasUnauthorized(ctx context.Context) {
	h.count.Add(1)
	h.credentials.Clear()

	h.logger.Warn().
		Str("func", "SignOutHandler.UserWasUnauthorized").
		Int64("count", h.count.Load()).
		Msg("server rejected credentials, signing out")

	if h.onSignOut != nil {
		h.onSignOut(ctx)
	}
}

// Count returns how many 401 answers were reported.
func (h *SignOutHandler) Count() int64 {
	return h.count.Load()
}
