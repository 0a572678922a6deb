package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/mock"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/models"
)

type downloadFixture struct {
	store    store.SyncStore
	api      *mock.MockServerAPI
	reporter *events.ChannelReporter
	coord    *downloadCoordinator
	dir      string
}

func newDownloadFixture(t *testing.T) *downloadFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &downloadFixture{
		store:    newTestStore(t),
		api:      mock.NewMockServerAPI(ctrl),
		reporter: events.NewChannelReporter(16),
		dir:      filepath.Join(t.TempDir(), "files"),
	}
	f.coord = NewDownloadCoordinator(f.store, f.api, f.reporter, events.DesiredAll, f.dir, logger.Nop()).(*downloadCoordinator)
	return f
}

func (f *downloadFixture) index(mv models.MasterVersion, files ...models.FileInfo) {
	f.api.EXPECT().
		FileIndex(gomock.Any(), testSharingGroup).
		Return(adapter.FileIndexResult{Files: files, MasterVersion: mv}, nil)
}

func (f *downloadFixture) trackers(t *testing.T) []models.DownloadTracker {
	t.Helper()
	list, err := f.store.ListDownloadTrackers(context.Background())
	require.NoError(t, err)
	return list
}

// ── Check ────────────────────────────────────────────────────────────────────

func TestDownloadCoordinator_Check_TwoFilesAndOneDeletion(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	g1, g2 := uuid.NewString(), uuid.NewString()
	a, b := newFile(g1, 0), newFile(g1, 0)
	gone := newFile(g2, 0)
	knownEntryOf(t, f.store, gone, "")
	gone.Deleted = true

	f.index(5, a, b, gone)

	outcome, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.Equal(t, CheckOutcome{DownloadsAvailable: true, NumberOfContentDownloads: 2, NumberOfDownloadDeletions: 1}, outcome)

	mv, err := f.store.GetMasterVersion(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.Equal(t, models.MasterVersion(5), mv)

	groups, err := f.store.ListContentGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	first, err := f.store.GetContentGroup(ctx, groups[0].ID)
	require.NoError(t, err)
	assert.Equal(t, g1, first.FileGroupUUID)
	require.Len(t, first.Trackers, 2)
	for _, tr := range first.Trackers {
		assert.Equal(t, models.OperationFile, tr.Operation)
	}

	second, err := f.store.GetContentGroup(ctx, groups[1].ID)
	require.NoError(t, err)
	assert.Equal(t, g2, second.FileGroupUUID)
	require.Len(t, second.Trackers, 1)
	assert.Equal(t, models.OperationDeletion, second.Trackers[0].Operation)
}

func TestDownloadCoordinator_Check_TrackersMatchDelta(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	stale := newFile("", 1)
	knownEntryOf(t, f.store, stale, "")
	stale.FileVersion = 2

	meta := newFile("", 3)
	knownEntryOf(t, f.store, meta, "")
	meta.AppMetaDataVersion = metaVersion(0)

	upToDate := newFile("", 4)
	knownEntryOf(t, f.store, upToDate, "")

	fresh := newFile("", 0)
	f.index(1, stale, meta, upToDate, fresh)

	result, err := f.coord.OnlyCheck(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.Len(t, result.Set.DownloadFiles, 2)
	assert.Len(t, result.Set.DownloadAppMetaData, 1)
	assert.Empty(t, result.Set.DownloadDeletions)
	assert.Empty(t, f.trackers(t), "OnlyCheck must not persist")

	f.index(1, stale, meta, upToDate, fresh)
	_, err = f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	ops := map[models.Operation]int{}
	for _, tr := range f.trackers(t) {
		ops[tr.Operation]++
	}
	assert.Equal(t, map[models.Operation]int{models.OperationFile: 2, models.OperationAppMetaData: 1}, ops)
}

func TestDownloadCoordinator_Check_TwiceYieldsEmptyDelta(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	a := newFile("", 0)
	f.index(3, a)
	f.index(3, a)

	outcome, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.True(t, outcome.DownloadsAvailable)

	outcome, err = f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.False(t, outcome.DownloadsAvailable)
	assert.Len(t, f.trackers(t), 1)
}

func TestDownloadCoordinator_Check_NewerVersionReplacesPendingTracker(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	a := newFile("", 0)
	f.index(1, a)
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	a.FileVersion = 1
	f.index(2, a)
	_, err = f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	list := f.trackers(t)
	require.Len(t, list, 1)
	assert.Equal(t, models.FileVersion(1), list[0].FileVersion)
}

func TestDownloadCoordinator_Check_BadMimeTypeFailsClosed(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	bad := newFile("", 0)
	bad.MimeType = "application/x-unknown"
	f.index(7, newFile("", 0), bad)

	_, err := f.coord.Check(ctx, testSharingGroup)
	require.ErrorIs(t, err, ErrBadMimeType)

	assert.Empty(t, f.trackers(t))
	_, err = f.store.GetMasterVersion(ctx, testSharingGroup)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDownloadCoordinator_Check_FileIndexError(t *testing.T) {
	f := newDownloadFixture(t)

	f.api.EXPECT().FileIndex(gomock.Any(), testSharingGroup).Return(adapter.FileIndexResult{}, adapter.ErrNilResponse)

	_, err := f.coord.Check(context.Background(), testSharingGroup)
	assert.ErrorIs(t, err, adapter.ErrNilResponse)
}

func TestDownloadCoordinator_Check_DeletedUnknownFileIsSkipped(t *testing.T) {
	f := newDownloadFixture(t)

	gone := newFile("", 0)
	gone.Deleted = true
	f.index(1, gone)

	outcome, err := f.coord.Check(context.Background(), testSharingGroup)
	require.NoError(t, err)
	assert.False(t, outcome.DownloadsAvailable)
	assert.Empty(t, f.trackers(t))
}

// ── Next ─────────────────────────────────────────────────────────────────────

func TestDownloadCoordinator_Next_Empty(t *testing.T) {
	f := newDownloadFixture(t)

	res, ch, err := f.coord.Next(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, NextNoDownloadsOrDeletions, res.Kind)
	assert.Nil(t, ch)
}

func TestDownloadCoordinator_Next_DownloadsFile(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	a := newFile("", 0)
	f.index(5, a)
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	local := filepath.Join(f.dir, a.FileUUID)
	f.api.EXPECT().
		DownloadFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p adapter.DownloadFileParams) (adapter.DownloadFileResult, error) {
			assert.Equal(t, a.FileUUID, p.FileUUID)
			assert.Equal(t, models.MasterVersion(5), p.MasterVersion)
			assert.Equal(t, f.dir, p.DestDir)
			return adapter.DownloadFileResult{Downloaded: &adapter.DownloadedFile{LocalPath: local, FileSizeBytes: 3}}, nil
		})

	res, ch, err := f.coord.Next(ctx, true)
	require.NoError(t, err)
	require.Equal(t, NextStarted, res.Kind)
	assert.Equal(t, models.TrackerStatusDownloading, res.Tracker.Status)

	ev := nextEvent(t, f.reporter)
	assert.Equal(t, events.KindWillStartDownloads, ev.Kind)
	assert.Equal(t, 1, ev.NumberContentDownloads)

	c := waitCompletion(t, ch)
	require.Equal(t, CompletionFileDownloaded, c.Kind)
	assert.Equal(t, local, c.Tracker.LocalPath)

	ev = nextEvent(t, f.reporter)
	assert.Equal(t, events.KindSingleFileDownloadComplete, ev.Kind)
	assert.Equal(t, a.FileUUID, ev.FileUUID)

	require.NoError(t, f.coord.Acknowledge(ctx, c.Tracker.ID))

	entry, err := f.store.GetDirectoryEntry(ctx, a.FileUUID)
	require.NoError(t, err)
	require.NotNil(t, entry.FileVersion)
	assert.Equal(t, models.FileVersion(0), *entry.FileVersion)
	assert.Equal(t, local, entry.LocalPath)
	assert.Empty(t, f.trackers(t))
}

func TestDownloadCoordinator_Next_AlreadyDownloading(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	f.index(1, newFile("", 0), newFile("", 0))
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	release := make(chan struct{})
	f.api.EXPECT().
		DownloadFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, adapter.DownloadFileParams) (adapter.DownloadFileResult, error) {
			<-release
			return adapter.DownloadFileResult{}, errors.New("network down")
		})

	_, ch, err := f.coord.Next(ctx, false)
	require.NoError(t, err)

	before := f.trackers(t)
	_, second, err := f.coord.Next(ctx, false)
	require.ErrorIs(t, err, ErrAlreadyDownloadingAFile)
	assert.Nil(t, second)
	assert.Equal(t, before, f.trackers(t), "a refused Next must not change state")

	downloading := 0
	for _, tr := range before {
		if tr.Status == models.TrackerStatusDownloading {
			downloading++
		}
	}
	assert.Equal(t, 1, downloading)

	close(release)
	c := waitCompletion(t, ch)
	assert.Equal(t, CompletionError, c.Kind)
}

func TestDownloadCoordinator_Next_ErrorRevertsTracker(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	f.index(1, newFile("", 0))
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	f.api.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).Return(adapter.DownloadFileResult{}, adapter.ErrNilResponse)

	_, ch, err := f.coord.Next(ctx, false)
	require.NoError(t, err)

	c := waitCompletion(t, ch)
	require.Equal(t, CompletionError, c.Kind)
	assert.ErrorIs(t, c.Err, adapter.ErrNilResponse)

	list := f.trackers(t)
	require.Len(t, list, 1)
	assert.Equal(t, models.TrackerStatusNotStarted, list[0].Status)
}

func TestDownloadCoordinator_Next_EmptyResultRevertsTracker(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	f.index(1, newFile("", 0))
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	f.api.EXPECT().DownloadFile(gomock.Any(), gomock.Any()).Return(adapter.DownloadFileResult{}, nil)

	_, ch, err := f.coord.Next(ctx, false)
	require.NoError(t, err)

	c := waitCompletion(t, ch)
	require.Equal(t, CompletionError, c.Kind)
	assert.ErrorIs(t, c.Err, adapter.ErrNoExpectedResultKey)

	list := f.trackers(t)
	require.Len(t, list, 1)
	assert.Equal(t, models.TrackerStatusNotStarted, list[0].Status)
}

func TestDownloadCoordinator_Next_MasterVersionUpdatePurges(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	f.index(5, newFile(uuid.NewString(), 0), newFile("", 0))
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	f.api.EXPECT().
		DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{MasterVersionUpdate: mvPtr(9)}, nil)

	_, ch, err := f.coord.Next(ctx, false)
	require.NoError(t, err)

	c := waitCompletion(t, ch)
	require.Equal(t, CompletionMasterVersionUpdate, c.Kind)
	assert.Equal(t, models.MasterVersion(9), c.MasterVersion)

	assert.Empty(t, f.trackers(t))
	groups, err := f.store.ListContentGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)

	mv, err := f.store.GetMasterVersion(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.Equal(t, models.MasterVersion(9), mv)

	ev := nextEvent(t, f.reporter)
	assert.Equal(t, events.KindMasterVersionChanged, ev.Kind)
	assert.Equal(t, models.MasterVersion(9), ev.MasterVersion)
}

func TestDownloadCoordinator_Next_AppMetaData(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	a := newFile("", 2)
	knownEntryOf(t, f.store, a, "")
	a.AppMetaDataVersion = metaVersion(1)
	f.index(1, a)
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	meta := `{"title":"x"}`
	f.api.EXPECT().
		DownloadAppMetaData(gomock.Any(), adapter.DownloadAppMetaDataParams{
			FileUUID:           a.FileUUID,
			AppMetaDataVersion: 1,
			MasterVersion:      1,
			SharingGroupID:     testSharingGroup,
		}).
		Return(adapter.DownloadAppMetaDataResult{AppMetaData: &meta}, nil)

	_, ch, err := f.coord.Next(ctx, false)
	require.NoError(t, err)

	c := waitCompletion(t, ch)
	require.Equal(t, CompletionAppMetaDataDownloaded, c.Kind)
	require.NotNil(t, c.Tracker.AppMetaData)
	assert.Equal(t, meta, *c.Tracker.AppMetaData)

	require.NoError(t, f.coord.Acknowledge(ctx, c.Tracker.ID))
	entry, err := f.store.GetDirectoryEntry(ctx, a.FileUUID)
	require.NoError(t, err)
	require.NotNil(t, entry.AppMetaDataVersion)
	assert.Equal(t, models.AppMetaDataVersion(1), *entry.AppMetaDataVersion)
	assert.Equal(t, models.FileVersion(2), *entry.FileVersion)
}

func TestDownloadCoordinator_Next_DeletionOnlyGroupCompletes(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	local := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(local, []byte("bye"), 0o600))

	gone := newFile("", 0)
	knownEntryOf(t, f.store, gone, local)
	gone.Deleted = true
	f.index(2, gone)
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	res, ch, err := f.coord.Next(ctx, true)
	require.NoError(t, err)
	require.Equal(t, NextCurrentGroupCompleted, res.Kind)
	assert.Nil(t, ch)
	require.NotNil(t, res.Group)
	require.Len(t, res.Group.Deletions(), 1)

	ev := nextEvent(t, f.reporter)
	assert.Equal(t, 1, ev.NumberDownloadDeletions)

	require.NoError(t, f.coord.FinishGroup(ctx, res.Group.ID))

	entry, err := f.store.GetDirectoryEntry(ctx, gone.FileUUID)
	require.NoError(t, err)
	assert.True(t, entry.DeletedOnServer)
	assert.Empty(t, entry.LocalPath)
	_, err = os.Stat(local)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	res, _, err = f.coord.Next(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, NextNoDownloadsOrDeletions, res.Kind)
}

func TestDownloadCoordinator_Next_DownloadedButNotAcknowledged(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	f.index(1, newFile("", 0))
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	f.api.EXPECT().
		DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{Downloaded: &adapter.DownloadedFile{LocalPath: "x"}}, nil)

	_, ch, err := f.coord.Next(ctx, false)
	require.NoError(t, err)
	c := waitCompletion(t, ch)
	require.Equal(t, CompletionFileDownloaded, c.Kind)

	// the group has nothing left to start
	res, _, err := f.coord.Next(ctx, false)
	require.NoError(t, err)
	require.Equal(t, NextCurrentGroupCompleted, res.Kind)

	err = f.coord.FinishGroup(ctx, res.Group.ID)
	require.ErrorIs(t, err, ErrGroupNotComplete)
	assert.Len(t, f.trackers(t), 1, "an unacknowledged download must survive FinishGroup")

	require.NoError(t, f.coord.Acknowledge(ctx, c.Tracker.ID))
	require.NoError(t, f.coord.FinishGroup(ctx, res.Group.ID))

	res, _, err = f.coord.Next(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, NextNoDownloadsOrDeletions, res.Kind)
}

func TestDownloadCoordinator_FinishGroup_CheckAgainYieldsEmptyDelta(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	a := newFile("", 1)
	f.index(2, a)
	f.index(2, a)

	outcome, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)
	require.Equal(t, 1, outcome.NumberOfContentDownloads)

	local := filepath.Join(f.dir, a.FileUUID)
	f.api.EXPECT().
		DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{Downloaded: &adapter.DownloadedFile{LocalPath: local}}, nil)

	_, ch, err := f.coord.Next(ctx, false)
	require.NoError(t, err)
	c := waitCompletion(t, ch)
	require.Equal(t, CompletionFileDownloaded, c.Kind)
	require.NoError(t, f.coord.Acknowledge(ctx, c.Tracker.ID))

	res, _, err := f.coord.Next(ctx, false)
	require.NoError(t, err)
	require.Equal(t, NextCurrentGroupCompleted, res.Kind)
	require.NoError(t, f.coord.FinishGroup(ctx, res.Group.ID))

	outcome, err = f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)
	assert.Equal(t, CheckOutcome{}, outcome)
	assert.Empty(t, f.trackers(t))
}

// ── Acknowledge / FinishGroup / Reset ────────────────────────────────────────

func TestDownloadCoordinator_Acknowledge_Errors(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	err := f.coord.Acknowledge(ctx, 42)
	assert.ErrorIs(t, err, ErrTrackerNotFound)

	f.index(1, newFile("", 0))
	_, err = f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	list := f.trackers(t)
	require.Len(t, list, 1)
	err = f.coord.Acknowledge(ctx, list[0].ID)
	assert.ErrorIs(t, err, ErrTrackerNotDownloaded)
}

func TestDownloadCoordinator_FinishGroup_NotComplete(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	f.index(1, newFile("", 0))
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	groups, err := f.store.ListContentGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	err = f.coord.FinishGroup(ctx, groups[0].ID)
	assert.ErrorIs(t, err, ErrGroupNotComplete)
	assert.Len(t, f.trackers(t), 1)
}

func TestDownloadCoordinator_Reset(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	f.index(1, newFile("", 0), newFile(uuid.NewString(), 0))
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	require.NoError(t, f.coord.Reset(ctx))

	assert.Empty(t, f.trackers(t))
	groups, err := f.store.ListContentGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

// ── Recover ──────────────────────────────────────────────────────────────────

func TestDownloadCoordinator_Recover_InterruptedDownloadRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "sync.db")}}

	// a previous process marked the tracker downloading and died
	previous, err := store.NewClientSyncStore(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	a := newFile("", 0)
	group, err := previous.FindOrCreateContentGroup(ctx, a.GroupKey(), a.FileGroupUUID, a.SharingGroupID)
	require.NoError(t, err)
	stale := models.NewDownloadTracker(a, models.MimeTypeText, models.OperationFile)
	stale.GroupID = group.ID
	stale.Status = models.TrackerStatusDownloading
	require.NoError(t, previous.CreateDownloadTracker(ctx, &stale))
	require.NoError(t, previous.SetMasterVersion(ctx, testSharingGroup, 3))
	require.NoError(t, previous.Close())

	reopened, err := store.NewClientSyncStore(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	api := mock.NewMockServerAPI(gomock.NewController(t))
	coord := NewDownloadCoordinator(reopened, api, events.NewChannelReporter(16), events.DesiredAll, t.TempDir(), logger.Nop())

	_, _, err = coord.Next(ctx, false)
	require.ErrorIs(t, err, ErrAlreadyDownloadingAFile)

	require.NoError(t, coord.Recover(ctx))

	api.EXPECT().
		DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{Downloaded: &adapter.DownloadedFile{LocalPath: "x"}}, nil)

	res, ch, err := coord.Next(ctx, false)
	require.NoError(t, err)
	require.Equal(t, NextStarted, res.Kind)
	assert.Equal(t, stale.ID, res.Tracker.ID)

	c := waitCompletion(t, ch)
	assert.Equal(t, CompletionFileDownloaded, c.Kind)
}

func TestDownloadCoordinator_Recover_KeepsDownloaded(t *testing.T) {
	f := newDownloadFixture(t)
	ctx := context.Background()

	f.index(1, newFile("", 0))
	_, err := f.coord.Check(ctx, testSharingGroup)
	require.NoError(t, err)

	f.api.EXPECT().
		DownloadFile(gomock.Any(), gomock.Any()).
		Return(adapter.DownloadFileResult{Downloaded: &adapter.DownloadedFile{LocalPath: "x"}}, nil)
	_, ch, err := f.coord.Next(ctx, false)
	require.NoError(t, err)
	waitCompletion(t, ch)

	require.NoError(t, f.coord.Recover(ctx))

	list := f.trackers(t)
	require.Len(t, list, 1)
	assert.Equal(t, models.TrackerStatusDownloaded, list[0].Status)
}
