package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/mock"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

func newTestStore(t *testing.T) store.SyncStore {
	t.Helper()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "sync.db")}}
	s, err := store.NewClientSyncStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// ── Device UUID ──────────────────────────────────────────────────────────────

func TestNewCredentials_DeviceUUIDIsPersisted(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := NewCredentials(ctx, config.ClientAuth{}, s, logger.Nop())
	require.NoError(t, err)
	assert.True(t, utils.IsUUID(first.DeviceUUID()))

	second, err := NewCredentials(ctx, config.ClientAuth{}, s, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, first.DeviceUUID(), second.DeviceUUID())
}

func TestNewCredentials_ReplacesCorruptDeviceUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)

	settings.EXPECT().GetSetting(gomock.Any(), SettingDeviceUUID).Return("garbage", nil)
	settings.EXPECT().SetSetting(gomock.Any(), SettingDeviceUUID, gomock.Any()).Return(nil)

	c, err := NewCredentials(context.Background(), config.ClientAuth{}, settings, logger.Nop())
	require.NoError(t, err)
	assert.True(t, utils.IsUUID(c.DeviceUUID()))
}

func TestNewCredentials_StoreErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(settings *mock.MockSettingsRepository)
	}{
		{
			name: "read fails",
			setup: func(settings *mock.MockSettingsRepository) {
				settings.EXPECT().GetSetting(gomock.Any(), SettingDeviceUUID).Return("", errors.New("disk"))
			},
		},
		{
			name: "write fails",
			setup: func(settings *mock.MockSettingsRepository) {
				settings.EXPECT().GetSetting(gomock.Any(), SettingDeviceUUID).Return("", store.ErrNotFound)
				settings.EXPECT().SetSetting(gomock.Any(), SettingDeviceUUID, gomock.Any()).Return(errors.New("disk"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			settings := mock.NewMockSettingsRepository(ctrl)
			tt.setup(settings)

			_, err := NewCredentials(context.Background(), config.ClientAuth{}, settings, logger.Nop())
			assert.Error(t, err)
		})
	}
}

// ── Headers ──────────────────────────────────────────────────────────────────

func TestCredentials_Headers(t *testing.T) {
	c, err := NewCredentials(context.Background(), config.ClientAuth{TokenType: "Google", AccessToken: "tok"}, newTestStore(t), logger.Nop())
	require.NoError(t, err)

	headers := c.Headers()
	assert.Equal(t, c.DeviceUUID(), headers[models.HeaderDeviceUUID])
	assert.Equal(t, "tok", headers[models.HeaderAccessToken])
	assert.Equal(t, "Google", headers[models.HeaderTokenType])

	// the snapshot is not affected by rotation
	c.SetAccessToken("", "rotated")
	assert.Equal(t, "tok", headers[models.HeaderAccessToken])
	assert.Equal(t, "rotated", c.Headers()[models.HeaderAccessToken])
	assert.Equal(t, "Google", c.Headers()[models.HeaderTokenType])

	c.Clear()
	assert.False(t, c.SignedIn())
	signedOut := c.Headers()
	assert.Len(t, signedOut, 1)
	assert.Contains(t, signedOut, models.HeaderDeviceUUID)
}

// ── Expiry ───────────────────────────────────────────────────────────────────

func TestCredentials_ExpiresWithin(t *testing.T) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{Issuer: "sync-server", UserID: 3, Duration: time.Minute, SignKey: "secret"})
	require.NoError(t, err)

	c, err := NewCredentials(context.Background(), config.ClientAuth{AccessToken: token.SignedString}, newTestStore(t), logger.Nop())
	require.NoError(t, err)

	now := time.Now()
	assert.False(t, c.ExpiresWithin(now, time.Second))
	assert.True(t, c.ExpiresWithin(now, time.Hour))

	c.SetAccessToken("", "opaque-token")
	assert.False(t, c.ExpiresWithin(now, time.Hour))

	c.Clear()
	assert.False(t, c.ExpiresWithin(now, time.Hour))
}

// ── SignOutHandler ───────────────────────────────────────────────────────────

func TestSignOutHandler_ClearsCredentials(t *testing.T) {
	c, err := NewCredentials(context.Background(), config.ClientAuth{AccessToken: "tok"}, newTestStore(t), logger.Nop())
	require.NoError(t, err)

	var signedOut int
	h := NewSignOutHandler(c, func(context.Context) { signedOut++ }, logger.Nop())

	h.UserWasUnauthorized(context.Background())
	h.UserWasUnauthorized(context.Background())

	assert.False(t, c.SignedIn())
	assert.Equal(t, 2, signedOut)
	assert.Equal(t, int64(2), h.Count())
}

func TestSignOutHandler_NilCallback(t *testing.T) {
	c, err := NewCredentials(context.Background(), config.ClientAuth{AccessToken: "tok"}, newTestStore(t), logger.Nop())
	require.NoError(t, err)

	h := NewSignOutHandler(c, nil, logger.Nop())
	assert.NotPanics(t, func() { h.UserWasUnauthorized(context.Background()) })
}
