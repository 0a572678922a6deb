package devserver

import (
	"net/http"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

func (h *Handler) addUser(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.GetAccessTokenFromContext(r.Context())
	cloudFolderName := r.URL.Query().Get(models.KeyCloudFolderName)

	if _, ok := h.resolveUser(token); ok {
		h.fail(w, r, ErrUserExists)
		return
	}

	userID, sg, err := h.state.addUser(token, cloudFolderName)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("sharing_group_id", int64(sg)).Msg("user added")
	h.writeJSON(w, r, models.AddUserResponse{UserID: &userID, SharingGroupID: &sg})
}

func (h *Handler) checkCreds(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	permission, err := h.state.permission(userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	deviceUUID, _ := utils.GetDeviceUUIDFromContext(r.Context())
	accessToken, err := h.issueToken(userID, deviceUUID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.CheckCredsResponse{UserID: &userID, Permission: &permission, AccessToken: accessToken})
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.state.removeUser(userID); err != nil {
		h.fail(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Msg("user removed")
	h.writeJSON(w, r, struct{}{})
}

func (h *Handler) getSharingGroups(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	h.writeJSON(w, r, models.GetSharingGroupsResponse{SharingGroupIDs: h.state.sharingGroups(userID)})
}

func (h *Handler) createSharingInvitation(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	q := newQuery(r)
	sg := q.sharingGroupID()
	permission := q.permission()
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	code, err := h.state.createInvitation(userID, sg, permission)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.CreateSharingInvitationResponse{SharingInvitationUUID: code})
}

func (h *Handler) redeemSharingInvitation(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.GetAccessTokenFromContext(r.Context())

	q := newQuery(r)
	code := q.uuid(models.KeySharingInvitationUUID)
	cloudFolderName := q.values.Get(models.KeyCloudFolderName)
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	// a token this server issued earlier identifies the account directly
	if userID, ok := h.resolveUser(token); ok {
		token = h.state.accountToken(userID)
	}

	userID, sg, err := h.state.redeem(token, cloudFolderName, code)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	deviceUUID, _ := utils.GetDeviceUUIDFromContext(r.Context())
	accessToken, err := h.issueToken(userID, deviceUUID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("sharing_group_id", int64(sg)).Msg("sharing invitation redeemed")
	h.writeJSON(w, r, models.RedeemSharingInvitationResponse{SharingGroupID: &sg, AccessToken: accessToken})
}
