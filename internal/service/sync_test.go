package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/mock"
	"github.com/MKhiriev/go-sync-client/models"
)

func newTestServices(t *testing.T) (*ClientServices, *mock.MockServerAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAPI(ctrl)

	cfg := config.ClientStorage{Files: config.ClientFiles{DownloadDir: filepath.Join(t.TempDir(), "files")}}
	services := NewClientServices(newTestStore(t), api, &stubTokens{}, events.Multi{}, events.DesiredNone, cfg, logger.Nop())

	return services, api
}

func TestSynchronizer_Sync_DownloadsThenUploads(t *testing.T) {
	services, api := newTestServices(t)
	ctx := context.Background()

	remote := newFile("", 0)
	api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).
		Return(adapter.FileIndexResult{Files: []models.FileInfo{remote}, MasterVersion: 2}, nil)
	api.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{Downloaded: &adapter.DownloadedFile{LocalPath: "remote.txt"}}, nil)

	_, err := services.Uploads.QueueFile(ctx, textUpload(t))
	require.NoError(t, err)

	api.EXPECT().UploadFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p adapter.UploadFileParams) (adapter.UploadFileResult, error) {
			assert.Equal(t, models.MasterVersion(2), p.MasterVersion)
			return adapter.UploadFileResult{Uploaded: &adapter.UploadedFile{}}, nil
		})
	one := int64(1)
	api.EXPECT().DoneUploads(gomock.Any(), gomock.Any()).
		Return(adapter.DoneUploadsResult{NumberUploadsTransferred: &one}, nil)

	report, err := services.Synchronizer.Sync(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.Equal(t, SyncReport{Downloaded: 1, Uploaded: 1}, report)
}

func TestSynchronizer_Sync_RestartsAfterMasterVersionUpdate(t *testing.T) {
	services, api := newTestServices(t)

	remote := newFile("", 0)
	gomock.InOrder(
		api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).
			Return(adapter.FileIndexResult{Files: []models.FileInfo{remote}, MasterVersion: 2}, nil),
		api.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).
			Return(adapter.DownloadFileResult{MasterVersionUpdate: mvPtr(3)}, nil),
		api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).
			Return(adapter.FileIndexResult{Files: []models.FileInfo{remote}, MasterVersion: 3}, nil),
		api.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).
			Return(adapter.DownloadFileResult{Downloaded: &adapter.DownloadedFile{LocalPath: "remote.txt"}}, nil),
	)

	report, err := services.Synchronizer.Sync(context.Background(), testSharingGroup)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Downloaded)
	assert.Equal(t, 1, report.MasterVersionHits)
}

func TestSynchronizer_Sync_TooManyRestarts(t *testing.T) {
	services, api := newTestServices(t)

	remote := newFile("", 0)
	api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).
		Return(adapter.FileIndexResult{Files: []models.FileInfo{remote}, MasterVersion: 2}, nil).
		Times(maxRestarts + 1)
	api.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{MasterVersionUpdate: mvPtr(3)}, nil).
		Times(maxRestarts + 1)

	report, err := services.Synchronizer.Sync(context.Background(), testSharingGroup)
	require.ErrorIs(t, err, ErrTooManyRestarts)
	assert.Equal(t, maxRestarts+1, report.MasterVersionHits)
}

func TestSynchronizer_Sync_AppliesDeletions(t *testing.T) {
	services, api := newTestServices(t)
	ctx := context.Background()

	// seed the directory through a first round
	remote := newFile("", 0)
	api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).
		Return(adapter.FileIndexResult{Files: []models.FileInfo{remote}, MasterVersion: 1}, nil)
	api.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{Downloaded: &adapter.DownloadedFile{LocalPath: "remote.txt"}}, nil)

	_, err := services.Synchronizer.Sync(ctx, testSharingGroup)
	require.NoError(t, err)

	remote.Deleted = true
	api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).
		Return(adapter.FileIndexResult{Files: []models.FileInfo{remote}, MasterVersion: 2}, nil)

	report, err := services.Synchronizer.Sync(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.Equal(t, SyncReport{DeletionsApplied: 1}, report)
}

func TestSynchronizer_Sync_DownloadErrorStopsRound(t *testing.T) {
	services, api := newTestServices(t)

	api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).
		Return(adapter.FileIndexResult{Files: []models.FileInfo{newFile("", 0)}, MasterVersion: 1}, nil)
	api.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{}, adapter.ErrNilResponse)

	_, err := services.Synchronizer.Sync(context.Background(), testSharingGroup)
	assert.ErrorIs(t, err, adapter.ErrNilResponse)
}

func TestSynchronizer_Sync_CheckError(t *testing.T) {
	services, api := newTestServices(t)

	api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).
		Return(adapter.FileIndexResult{}, adapter.ErrUnauthorized)

	_, err := services.Synchronizer.Sync(context.Background(), testSharingGroup)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
