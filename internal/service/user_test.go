package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/mock"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/models"
)

// stubTokens records what the user service hands to the credentials.
type stubTokens struct {
	tokenType string
	token     string
	cleared   bool
}

func (s *stubTokens) SetAccessToken(tokenType, accessToken string) {
	s.tokenType, s.token = tokenType, accessToken
}

func (s *stubTokens) Clear() { s.cleared = true }

func newTestUserService(t *testing.T) (UserService, *mock.MockServerAPI, store.SyncStore, *stubTokens, *events.ChannelReporter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := mock.NewMockServerAPI(ctrl)
	s := newTestStore(t)
	tokens := &stubTokens{}
	reporter := events.NewChannelReporter(4)

	return NewUserService(api, s, tokens, reporter, events.DesiredAll, logger.Nop()), api, s, tokens, reporter
}

// ── CheckForExistingUser ─────────────────────────────────────────────────────

func TestUserService_CheckForExistingUser(t *testing.T) {
	svc, api, _, tokens, _ := newTestUserService(t)

	api.EXPECT().CheckCreds(gomock.Any()).Return(adapter.CheckCredsResult{
		User: models.User{UserID: 3, Permission: models.PermissionAdmin, AccessToken: "long-lived"},
	}, nil)

	res, err := svc.CheckForExistingUser(context.Background())
	require.NoError(t, err)
	assert.False(t, res.NoUser)
	assert.Equal(t, int64(3), res.User.UserID)
	assert.Equal(t, "long-lived", tokens.token)
}

func TestUserService_CheckForExistingUser_NoUser(t *testing.T) {
	svc, api, _, tokens, _ := newTestUserService(t)

	api.EXPECT().CheckCreds(gomock.Any()).Return(adapter.CheckCredsResult{NoUser: true}, nil)

	res, err := svc.CheckForExistingUser(context.Background())
	require.NoError(t, err)
	assert.True(t, res.NoUser)
	assert.Empty(t, tokens.token)
}

// ── Sharing groups ───────────────────────────────────────────────────────────

func TestUserService_SetupSharingGroups(t *testing.T) {
	svc, api, _, _, reporter := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.SharingGroups(ctx)
	require.ErrorIs(t, err, ErrNoSharingGroups)

	api.EXPECT().GetSharingGroups(gomock.Any()).Return([]models.SharingGroupID{1, 2}, nil)

	ids, err := svc.SetupSharingGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SharingGroupID{1, 2}, ids)

	ev := nextEvent(t, reporter)
	assert.Equal(t, events.KindHaveSharingGroupIDs, ev.Kind)
	assert.Equal(t, ids, ev.SharingGroupIDs)

	stored, err := svc.SharingGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids, stored)
}

func TestUserService_SetupSharingGroups_None(t *testing.T) {
	svc, api, _, _, _ := newTestUserService(t)

	api.EXPECT().GetSharingGroups(gomock.Any()).Return(nil, nil)

	_, err := svc.SetupSharingGroups(context.Background())
	assert.ErrorIs(t, err, ErrNoSharingGroups)
}

func TestUserService_SharingGroups_Corrupt(t *testing.T) {
	svc, _, s, _, _ := newTestUserService(t)
	ctx := context.Background()

	require.NoError(t, s.SetSetting(ctx, SettingSharingGroups, "not json"))

	_, err := svc.SharingGroups(ctx)
	assert.ErrorIs(t, err, ErrInternalInconsistency)
}

// ── AddUser / RemoveUser ─────────────────────────────────────────────────────

func TestUserService_AddUser_StoresSharingGroup(t *testing.T) {
	svc, api, _, _, _ := newTestUserService(t)
	ctx := context.Background()

	api.EXPECT().AddUser(gomock.Any(), "Sync").Return(adapter.AddUserResult{UserID: 9, SharingGroupID: 4}, nil)

	res, err := svc.AddUser(ctx, "Sync")
	require.NoError(t, err)
	assert.Equal(t, int64(9), res.UserID)

	ids, err := svc.SharingGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SharingGroupID{4}, ids)
}

func TestUserService_RemoveUser(t *testing.T) {
	svc, api, _, tokens, _ := newTestUserService(t)
	ctx := context.Background()

	api.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(adapter.AddUserResult{SharingGroupID: 4}, nil)
	api.EXPECT().RemoveUser(gomock.Any()).Return(nil)

	_, err := svc.AddUser(ctx, "")
	require.NoError(t, err)
	require.NoError(t, svc.RemoveUser(ctx))

	assert.True(t, tokens.cleared)
	_, err = svc.SharingGroups(ctx)
	assert.ErrorIs(t, err, ErrNoSharingGroups)
}

func TestUserService_RemoveUser_Error(t *testing.T) {
	svc, api, _, tokens, _ := newTestUserService(t)

	api.EXPECT().RemoveUser(gomock.Any()).Return(adapter.ErrUnauthorized)

	err := svc.RemoveUser(context.Background())
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, tokens.cleared)
}

// ── Invitations ──────────────────────────────────────────────────────────────

func TestUserService_CreateSharingInvitation(t *testing.T) {
	svc, api, _, _, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.CreateSharingInvitation(ctx, "owner", 1)
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	api.EXPECT().CreateSharingInvitation(gomock.Any(), models.PermissionRead, models.SharingGroupID(1)).Return("code", nil)

	code, err := svc.CreateSharingInvitation(ctx, models.PermissionRead, 1)
	require.NoError(t, err)
	assert.Equal(t, "code", code)
}

func TestUserService_RedeemSharingInvitation(t *testing.T) {
	svc, api, _, tokens, _ := newTestUserService(t)
	ctx := context.Background()

	api.EXPECT().GetSharingGroups(gomock.Any()).Return([]models.SharingGroupID{1}, nil)
	api.EXPECT().RedeemSharingInvitation(gomock.Any(), "invite", "Sync").
		Return(adapter.RedeemResult{SharingGroupID: 8, AccessToken: "tok"}, nil).
		Times(2)

	_, err := svc.SetupSharingGroups(ctx)
	require.NoError(t, err)

	res, err := svc.RedeemSharingInvitation(ctx, "invite", "Sync")
	require.NoError(t, err)
	assert.Equal(t, models.SharingGroupID(8), res.SharingGroupID)
	assert.Equal(t, "tok", tokens.token)

	// redeeming again does not duplicate the group
	_, err = svc.RedeemSharingInvitation(ctx, "invite", "Sync")
	require.NoError(t, err)

	ids, err := svc.SharingGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SharingGroupID{1, 8}, ids)
}

func TestUserService_RedeemSharingInvitation_Error(t *testing.T) {
	svc, api, _, _, _ := newTestUserService(t)
	boom := errors.New("boom")

	api.EXPECT().RedeemSharingInvitation(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.RedeemResult{}, boom)

	_, err := svc.RedeemSharingInvitation(context.Background(), "invite", "")
	assert.ErrorIs(t, err, boom)
}
