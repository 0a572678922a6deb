package devserver

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

// withDevice rejects requests without a valid device UUID header and stores
// the UUID under [utils.DeviceUUIDCtxKey]. Staged uploads are kept per
// device.
func (h *Handler) withDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceUUID := r.Header.Get(models.HeaderDeviceUUID)
		if !utils.IsUUID(deviceUUID) {
			h.fail(w, r, ErrInvalidDeviceUUID)
			return
		}

		ctx := context.WithValue(r.Context(), utils.DeviceUUIDCtxKey, deviceUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withAccessToken requires the access token header and stores the raw token
// under [utils.AccessTokenCtxKey]. The token does not have to belong to an
// account yet: AddUser and RedeemSharingInvitation create one.
func (h *Handler) withAccessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(models.HeaderAccessToken)
		if token == "" {
			h.fail(w, r, ErrEmptyAccessToken)
			return
		}

		ctx := context.WithValue(r.Context(), utils.AccessTokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// auth resolves the access token to an account and stores its id under
// [utils.UserIDCtxKey]. Tokens issued by this server are verified as JWTs;
// anything else is looked up as an account provider token. Unknown tokens
// get 401, which CheckCreds callers read as "no such user".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token, _ := utils.GetAccessTokenFromContext(ctx)

		userID, ok := h.resolveUser(token)
		if !ok {
			logger.FromRequest(r).Debug().Str("func", "Handler.auth").Msg("access token matches no user")
			h.fail(w, r, ErrUnknownUser)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) resolveUser(token string) (int64, bool) {
	if parsed, err := utils.ValidateAndParseJWTToken(token, h.signKey, TokenIssuer); err == nil {
		return parsed.UserID, h.state.userExists(parsed.UserID)
	}

	return h.state.userByToken(token)
}
