package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/models"
)

const testSharingGroup models.SharingGroupID = 1

func newTestStore(t *testing.T) store.SyncStore {
	t.Helper()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "sync.db")}}
	s, err := store.NewClientSyncStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newFile(fileGroupUUID string, version models.FileVersion) models.FileInfo {
	return models.FileInfo{
		FileUUID:       uuid.NewString(),
		FileGroupUUID:  fileGroupUUID,
		MimeType:       string(models.MimeTypeText),
		FileVersion:    version,
		SharingGroupID: testSharingGroup,
	}
}

// knownEntryOf stores f as already downloaded.
func knownEntryOf(t *testing.T, s store.SyncStore, f models.FileInfo, localPath string) {
	t.Helper()
	version := f.FileVersion
	require.NoError(t, s.UpsertDirectoryEntry(context.Background(), models.DirectoryEntry{
		FileUUID:           f.FileUUID,
		FileGroupUUID:      f.FileGroupUUID,
		SharingGroupID:     f.SharingGroupID,
		MimeType:           models.MimeType(f.MimeType),
		FileVersion:        &version,
		AppMetaDataVersion: f.AppMetaDataVersion,
		LocalPath:          localPath,
	}))
}

func mvPtr(v models.MasterVersion) *models.MasterVersion { return &v }

func metaVersion(v models.AppMetaDataVersion) *models.AppMetaDataVersion { return &v }

// nextEvent reads one event or fails after a second.
func nextEvent(t *testing.T, r *events.ChannelReporter) events.Event {
	t.Helper()
	select {
	case ev := <-r.Events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event reported")
		return events.Event{}
	}
}

func waitCompletion(t *testing.T, ch <-chan NextCompletion) NextCompletion {
	t.Helper()
	require.NotNil(t, ch)
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("download did not complete")
		return NextCompletion{}
	}
}

func waitUpload(t *testing.T, ch <-chan UploadCompletion) UploadCompletion {
	t.Helper()
	require.NotNil(t, ch)
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("upload did not complete")
		return UploadCompletion{}
	}
}
