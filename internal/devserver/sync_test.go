package devserver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/auth"
	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/service"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/models"
)

// device is one sync client with its own database and download directory.
type device struct {
	store    store.SyncStore
	services *service.ClientServices
	dir      string
}

func newDevice(t *testing.T, baseURL, token string) *device {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()
	dir := t.TempDir()

	storageCfg := config.ClientStorage{
		DB:    config.ClientDB{DSN: filepath.Join(dir, "sync.db")},
		Files: config.ClientFiles{DownloadDir: filepath.Join(dir, "downloads")},
	}
	syncStore, err := store.NewClientSyncStore(ctx, storageCfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = syncStore.Close() })

	creds, err := auth.NewCredentials(ctx, config.ClientAuth{TokenType: "Google", AccessToken: token}, syncStore, log)
	require.NoError(t, err)

	api, err := adapter.NewHTTPServerAPI(config.ClientAdapter{
		HTTPAddress:    baseURL,
		RequestTimeout: 5 * time.Second,
	}, creds, auth.NewSignOutHandler(creds, nil, log), log)
	require.NoError(t, err)

	return &device{
		store:    syncStore,
		services: service.NewClientServices(syncStore, api, creds, events.Multi{}, events.DesiredNone, storageCfg, log),
		dir:      dir,
	}
}

func (d *device) queueText(t *testing.T, sg models.SharingGroupID, content string) string {
	t.Helper()
	path := filepath.Join(d.dir, uuid.NewString()+".txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fileUUID := uuid.NewString()
	_, err := d.services.Uploads.QueueFile(context.Background(), service.FileUpload{
		LocalPath:      path,
		FileUUID:       fileUUID,
		MimeType:       models.MimeTypeText,
		SharingGroupID: sg,
	})
	require.NoError(t, err)
	return fileUUID
}

func TestSync_TwoDevices(t *testing.T) {
	ctx := context.Background()
	url := startServer(t)

	alice := newDevice(t, url, "alice-token")
	added, err := alice.services.Users.AddUser(ctx, "")
	require.NoError(t, err)
	sg := added.SharingGroupID

	code, err := alice.services.Users.CreateSharingInvitation(ctx, models.PermissionWrite, sg)
	require.NoError(t, err)

	bob := newDevice(t, url, "bob-token")
	redeemed, err := bob.services.Users.RedeemSharingInvitation(ctx, code, "")
	require.NoError(t, err)
	require.Equal(t, sg, redeemed.SharingGroupID)

	// ── alice uploads ──
	fileUUID := alice.queueText(t, sg, "hello from alice")
	report, err := alice.services.Synchronizer.Sync(ctx, sg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Uploaded)

	mv, err := alice.store.GetMasterVersion(ctx, sg)
	require.NoError(t, err)
	assert.Equal(t, models.MasterVersion(1), mv)

	// ── bob downloads ──
	report, err = bob.services.Synchronizer.Sync(ctx, sg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Downloaded)

	entry, err := bob.store.GetDirectoryEntry(ctx, fileUUID)
	require.NoError(t, err)
	require.NotNil(t, entry.FileVersion)
	assert.Equal(t, models.FileVersion(0), *entry.FileVersion)
	content, err := os.ReadFile(entry.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, "hello from alice", string(content))

	// a second round has nothing to do
	report, err = bob.services.Synchronizer.Sync(ctx, sg)
	require.NoError(t, err)
	assert.Equal(t, service.SyncReport{}, report)

	// ── bob deletes, alice applies ──
	_, err = bob.services.Uploads.QueueDeletion(ctx, fileUUID)
	require.NoError(t, err)
	report, err = bob.services.Synchronizer.Sync(ctx, sg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Uploaded)

	report, err = alice.services.Synchronizer.Sync(ctx, sg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.DeletionsApplied)

	entry, err = alice.store.GetDirectoryEntry(ctx, fileUUID)
	require.NoError(t, err)
	assert.True(t, entry.DeletedOnServer)
}

func TestSync_SecondDeviceCatchesUp(t *testing.T) {
	ctx := context.Background()
	url := startServer(t)

	alice := newDevice(t, url, "alice-token")
	added, err := alice.services.Users.AddUser(ctx, "")
	require.NoError(t, err)
	sg := added.SharingGroupID

	// a second device of the same account
	laptop := newDevice(t, url, "alice-token")

	alice.queueText(t, sg, "from phone")
	_, err = alice.services.Synchronizer.Sync(ctx, sg)
	require.NoError(t, err)

	// the check of the round brings the laptop to master version 1 before
	// its upload goes out
	laptopFile := laptop.queueText(t, sg, "from laptop")
	report, err := laptop.services.Synchronizer.Sync(ctx, sg)
	require.NoError(t, err)
	assert.Zero(t, report.MasterVersionHits)
	assert.Equal(t, 1, report.Downloaded)
	assert.Equal(t, 1, report.Uploaded)

	report, err = alice.services.Synchronizer.Sync(ctx, sg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Downloaded)

	entry, err := alice.store.GetDirectoryEntry(ctx, laptopFile)
	require.NoError(t, err)
	content, err := os.ReadFile(entry.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, "from laptop", string(content))
}
