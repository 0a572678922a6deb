package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

// uploadCoordinator is the concrete UploadCoordinator. It follows the
// locking rules of downloadCoordinator.
type uploadCoordinator struct {
	store    store.SyncStore
	api      adapter.ServerAPI
	reporter events.Reporter
	desired  events.Desired
	uuids    *utils.UUIDGenerator
	logger   *logger.Logger

	mu sync.Mutex
}

func NewUploadCoordinator(
	syncStore store.SyncStore,
	api adapter.ServerAPI,
	reporter events.Reporter,
	desired events.Desired,
	logger *logger.Logger,
) UploadCoordinator {
	return &uploadCoordinator{
		store:    syncStore,
		api:      api,
		reporter: reporter,
		desired:  desired,
		uuids:    utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// QueueFile implements UploadCoordinator. The file version follows the
// version last known in the directory; a file deleted on the server is
// uploaded as an undeletion.
func (u *uploadCoordinator) QueueFile(ctx context.Context, upload FileUpload) (models.UploadTracker, error) {
	if upload.FileUUID == "" {
		upload.FileUUID = u.uuids.Generate()
	}
	if err := validateFileUpload(upload); err != nil {
		return models.UploadTracker{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	tracker := models.UploadTracker{
		FileUUID:       upload.FileUUID,
		FileGroupUUID:  upload.FileGroupUUID,
		SharingGroupID: upload.SharingGroupID,
		MimeType:       upload.MimeType,
		Operation:      models.OperationFile,
		LocalPath:      upload.LocalPath,
		AppMetaData:    upload.AppMetaData,
	}

	err := u.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		entry, found, err := lookupEntry(ctx, state, upload.FileUUID)
		if err != nil {
			return err
		}

		if found {
			if entry.DeletedLocally {
				return fmt.Errorf("%w: %s", ErrFileDeleted, upload.FileUUID)
			}
			if entry.FileVersion != nil {
				tracker.FileVersion = *entry.FileVersion + 1
			}
			tracker.Undelete = entry.DeletedOnServer
			if tracker.FileGroupUUID == "" {
				tracker.FileGroupUUID = entry.FileGroupUUID
			}
		}
		if upload.AppMetaData != nil {
			version := nextMetaDataVersion(entry.AppMetaDataVersion, found)
			tracker.AppMetaDataVersion = &version
		}

		return state.CreateUploadTracker(ctx, &tracker)
	})
	if err != nil {
		return models.UploadTracker{}, err
	}

	return tracker, nil
}

func validateFileUpload(upload FileUpload) error {
	if !utils.IsUUID(upload.FileUUID) {
		return fmt.Errorf("%w: file uuid %q", ErrInvalidDataProvided, upload.FileUUID)
	}
	if upload.FileGroupUUID != "" && !utils.IsUUID(upload.FileGroupUUID) {
		return fmt.Errorf("%w: file group uuid %q", ErrInvalidDataProvided, upload.FileGroupUUID)
	}
	if _, ok := models.ParseMimeType(string(upload.MimeType)); !ok {
		return fmt.Errorf("%w: %q", ErrBadMimeType, upload.MimeType)
	}
	if upload.SharingGroupID <= 0 {
		return fmt.Errorf("%w: sharing group id %d", ErrInvalidDataProvided, upload.SharingGroupID)
	}
	if info, err := os.Stat(upload.LocalPath); err != nil || info.IsDir() {
		return fmt.Errorf("%w: local file %q", ErrInvalidDataProvided, upload.LocalPath)
	}
	return nil
}

// QueueDeletion implements UploadCoordinator. The directory entry is marked
// deleted locally right away so later checks leave the file alone.
func (u *uploadCoordinator) QueueDeletion(ctx context.Context, fileUUID string) (models.UploadTracker, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var tracker models.UploadTracker

	err := u.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		entry, err := knownEntry(ctx, state, fileUUID)
		if err != nil {
			return err
		}
		if entry.DeletedLocally || entry.DeletedOnServer {
			return fmt.Errorf("%w: %s", ErrFileDeleted, fileUUID)
		}

		tracker = models.UploadTracker{
			FileUUID:       entry.FileUUID,
			FileGroupUUID:  entry.FileGroupUUID,
			SharingGroupID: entry.SharingGroupID,
			FileVersion:    *entry.FileVersion,
			MimeType:       entry.MimeType,
			Operation:      models.OperationDeletion,
		}
		if err = state.CreateUploadTracker(ctx, &tracker); err != nil {
			return err
		}

		entry.DeletedLocally = true
		return state.UpsertDirectoryEntry(ctx, entry)
	})
	if err != nil {
		return models.UploadTracker{}, err
	}

	return tracker, nil
}

// QueueAppMetaData implements UploadCoordinator.
func (u *uploadCoordinator) QueueAppMetaData(ctx context.Context, fileUUID, appMetaData string) (models.UploadTracker, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var tracker models.UploadTracker

	err := u.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		entry, err := knownEntry(ctx, state, fileUUID)
		if err != nil {
			return err
		}
		if entry.DeletedLocally || entry.DeletedOnServer {
			return fmt.Errorf("%w: %s", ErrFileDeleted, fileUUID)
		}

		version := nextMetaDataVersion(entry.AppMetaDataVersion, true)
		tracker = models.UploadTracker{
			FileUUID:           entry.FileUUID,
			FileGroupUUID:      entry.FileGroupUUID,
			SharingGroupID:     entry.SharingGroupID,
			FileVersion:        *entry.FileVersion,
			MimeType:           entry.MimeType,
			Operation:          models.OperationAppMetaData,
			AppMetaData:        &appMetaData,
			AppMetaDataVersion: &version,
		}
		return state.CreateUploadTracker(ctx, &tracker)
	})
	if err != nil {
		return models.UploadTracker{}, err
	}

	return tracker, nil
}

func nextMetaDataVersion(current *models.AppMetaDataVersion, found bool) models.AppMetaDataVersion {
	if !found || current == nil {
		return 0
	}
	return *current + 1
}

func lookupEntry(ctx context.Context, state store.DirectoryRepository, fileUUID string) (models.DirectoryEntry, bool, error) {
	entry, err := state.GetDirectoryEntry(ctx, fileUUID)
	if errors.Is(err, store.ErrNotFound) {
		return models.DirectoryEntry{}, false, nil
	}
	if err != nil {
		return models.DirectoryEntry{}, false, err
	}
	return entry, true, nil
}

// knownEntry returns the entry of a file whose content is known locally.
func knownEntry(ctx context.Context, state store.DirectoryRepository, fileUUID string) (models.DirectoryEntry, error) {
	entry, found, err := lookupEntry(ctx, state, fileUUID)
	if err != nil {
		return models.DirectoryEntry{}, err
	}
	if !found || entry.FileVersion == nil {
		return models.DirectoryEntry{}, fmt.Errorf("%w: %s", ErrUnknownFile, fileUUID)
	}
	return entry, nil
}

// Next implements UploadCoordinator.
func (u *uploadCoordinator) Next(ctx context.Context, first bool) (UploadNextResult, <-chan UploadCompletion, error) {
	var (
		result        UploadNextResult
		tracker       models.UploadTracker
		masterVersion models.MasterVersion
		notStarted    int
	)

	u.mu.Lock()
	err := u.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		trackers, err := state.ListUploadTrackers(ctx)
		if err != nil {
			return err
		}
		if len(trackers) == 0 {
			result.Kind = UploadNextNoUploads
			return nil
		}

		var next *models.UploadTracker
		for i, t := range trackers {
			switch t.Status {
			case models.TrackerStatusUploading:
				return fmt.Errorf("%w: tracker %d of file %s", ErrAlreadyUploadingAFile, t.ID, t.FileUUID)
			case models.TrackerStatusNotStarted:
				notStarted++
				if next == nil {
					next = &trackers[i]
				}
			}
		}

		if next == nil {
			result.Kind = UploadNextAllUploadsCompleted
			return nil
		}

		// Without a stored version the server answers with an update.
		masterVersion, err = state.GetMasterVersion(ctx, next.SharingGroupID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err = state.UpdateUploadTrackerStatus(ctx, next.ID, models.TrackerStatusUploading); err != nil {
			return err
		}

		next.Status = models.TrackerStatusUploading
		tracker = *next
		result = UploadNextResult{Kind: UploadNextStarted, Tracker: &tracker}
		return nil
	})
	u.mu.Unlock()

	if err != nil {
		u.logger.Err(err).Str("func", "uploadCoordinator.Next").Msg("could not select next upload")
		return UploadNextResult{}, nil, err
	}

	if first && notStarted > 0 {
		events.Report(events.WillStartUploads(notStarted), u.desired, u.reporter)
	}

	if result.Kind != UploadNextStarted {
		return result, nil, nil
	}

	completion := make(chan UploadCompletion, 1)
	go u.upload(context.WithoutCancel(ctx), ctx, tracker, masterVersion, completion)

	return result, completion, nil
}

func (u *uploadCoordinator) upload(persistCtx, ctx context.Context, tracker models.UploadTracker, mv models.MasterVersion, completion chan<- UploadCompletion) {
	var (
		update *models.MasterVersion
		err    error
	)

	switch tracker.Operation {
	case models.OperationFile:
		var res adapter.UploadFileResult
		res, err = u.api.UploadFile(ctx, adapter.UploadFileParams{
			LocalPath:          tracker.LocalPath,
			FileUUID:           tracker.FileUUID,
			FileGroupUUID:      tracker.FileGroupUUID,
			MimeType:           tracker.MimeType,
			FileVersion:        tracker.FileVersion,
			MasterVersion:      mv,
			SharingGroupID:     tracker.SharingGroupID,
			AppMetaData:        tracker.AppMetaData,
			AppMetaDataVersion: tracker.AppMetaDataVersion,
			Undelete:           tracker.Undelete,
		})
		update = res.MasterVersionUpdate

	case models.OperationDeletion:
		var res adapter.UploadDeletionResult
		res, err = u.api.UploadDeletion(ctx, adapter.UploadDeletionParams{
			FileUUID:       tracker.FileUUID,
			FileVersion:    tracker.FileVersion,
			MasterVersion:  mv,
			SharingGroupID: tracker.SharingGroupID,
		})
		update = res.MasterVersionUpdate

	case models.OperationAppMetaData:
		if tracker.AppMetaData == nil || tracker.AppMetaDataVersion == nil {
			err = fmt.Errorf("%w: appMetaData upload %d without data", ErrInternalInconsistency, tracker.ID)
			break
		}
		var res adapter.UploadAppMetaDataResult
		res, err = u.api.UploadAppMetaData(ctx, adapter.UploadAppMetaDataParams{
			FileUUID:           tracker.FileUUID,
			AppMetaData:        *tracker.AppMetaData,
			AppMetaDataVersion: *tracker.AppMetaDataVersion,
			MasterVersion:      mv,
			SharingGroupID:     tracker.SharingGroupID,
		})
		update = res.MasterVersionUpdate

	default:
		err = fmt.Errorf("%w: cannot upload %q", ErrInternalInconsistency, tracker.Operation)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	switch {
	case err != nil:
		completion <- u.revert(persistCtx, tracker, err)
	case update != nil:
		if err = u.masterVersionUpdate(persistCtx, tracker.SharingGroupID, *update); err != nil {
			completion <- u.revert(persistCtx, tracker, err)
			return
		}
		tracker.Status = models.TrackerStatusNotStarted
		completion <- UploadCompletion{Kind: UploadCompletionMasterVersionUpdate, Tracker: tracker, MasterVersion: *update}
	default:
		if err = u.store.UpdateUploadTrackerStatus(persistCtx, tracker.ID, models.TrackerStatusUploaded); err != nil {
			completion <- u.revert(persistCtx, tracker, err)
			return
		}
		tracker.Status = models.TrackerStatusUploaded
		completion <- UploadCompletion{Kind: UploadCompletionUploaded, Tracker: tracker}
	}
}

// masterVersionUpdate must be called with mu held. Client operations are
// never discarded: every tracker goes back to notStarted.
func (u *uploadCoordinator) masterVersionUpdate(ctx context.Context, sg models.SharingGroupID, v models.MasterVersion) error {
	err := u.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		if err := state.ResetUploadTrackers(ctx); err != nil {
			return err
		}
		return state.SetMasterVersion(ctx, sg, v)
	})
	if err != nil {
		return err
	}

	u.logger.Info().
		Str("func", "uploadCoordinator.masterVersionUpdate").
		Int64("sharing_group_id", int64(sg)).
		Int64("master_version", int64(v)).
		Msg("master version changed, uploads will be sent again")
	events.Report(events.MasterVersionChanged(sg, v), u.desired, u.reporter)

	return nil
}

// revert must be called with mu held.
func (u *uploadCoordinator) revert(ctx context.Context, tracker models.UploadTracker, cause error) UploadCompletion {
	u.logger.Err(cause).
		Str("func", "uploadCoordinator.revert").
		Int64("tracker_id", tracker.ID).
		Str("file_uuid", tracker.FileUUID).
		Msg("upload failed")

	if err := u.store.UpdateUploadTrackerStatus(ctx, tracker.ID, models.TrackerStatusNotStarted); err != nil {
		u.logger.Err(err).Str("func", "uploadCoordinator.revert").Int64("tracker_id", tracker.ID).Msg("could not revert tracker")
	}
	tracker.Status = models.TrackerStatusNotStarted

	return UploadCompletion{Kind: UploadCompletionError, Tracker: tracker, Err: cause}
}

// DoneUploads implements UploadCoordinator. On success the stored master
// version is incremented: the commit itself advanced it on the server.
func (u *uploadCoordinator) DoneUploads(ctx context.Context, sharingGroupID models.SharingGroupID) (DoneUploadsOutcome, error) {
	u.mu.Lock()
	uploaded, mv, err := u.uploadedTrackers(ctx, sharingGroupID)
	u.mu.Unlock()
	if err != nil || len(uploaded) == 0 {
		return DoneUploadsOutcome{}, err
	}

	var deletions uint
	for _, t := range uploaded {
		if t.Operation == models.OperationDeletion {
			deletions++
		}
	}

	res, err := u.api.DoneUploads(ctx, adapter.DoneUploadsParams{
		MasterVersion:     mv,
		SharingGroupID:    sharingGroupID,
		NumberOfDeletions: deletions,
	})
	if err != nil {
		return DoneUploadsOutcome{}, fmt.Errorf("done uploads: %w", err)
	}

	persistCtx := context.WithoutCancel(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()

	if res.MasterVersionUpdate != nil {
		if err = u.masterVersionUpdate(persistCtx, sharingGroupID, *res.MasterVersionUpdate); err != nil {
			return DoneUploadsOutcome{}, err
		}
		return DoneUploadsOutcome{MasterVersionUpdate: res.MasterVersionUpdate}, nil
	}

	err = u.store.PerformAndSave(persistCtx, func(ctx context.Context, state store.SyncState) error {
		ids := make([]int64, 0, len(uploaded))
		for _, t := range uploaded {
			if err := commitToDirectory(ctx, state, t); err != nil {
				return err
			}
			ids = append(ids, t.ID)
		}
		if err := state.DeleteUploadTrackers(ctx, ids...); err != nil {
			return err
		}
		return state.SetMasterVersion(ctx, sharingGroupID, mv+1)
	})
	if err != nil {
		return DoneUploadsOutcome{}, err
	}

	outcome := DoneUploadsOutcome{NumberUploadsTransferred: int64(len(uploaded))}
	if res.NumberUploadsTransferred != nil {
		outcome.NumberUploadsTransferred = *res.NumberUploadsTransferred
	}

	return outcome, nil
}

// uploadedTrackers must be called with mu held.
func (u *uploadCoordinator) uploadedTrackers(ctx context.Context, sg models.SharingGroupID) ([]models.UploadTracker, models.MasterVersion, error) {
	trackers, err := u.store.ListUploadTrackers(ctx)
	if err != nil {
		return nil, 0, err
	}

	var uploaded []models.UploadTracker
	for _, t := range trackers {
		if t.SharingGroupID != sg {
			continue
		}
		if t.Status == models.TrackerStatusUploading {
			return nil, 0, fmt.Errorf("%w: tracker %d", ErrAlreadyUploadingAFile, t.ID)
		}
		if t.Status == models.TrackerStatusUploaded {
			uploaded = append(uploaded, t)
		}
	}
	if len(uploaded) == 0 {
		return nil, 0, nil
	}

	mv, err := u.store.GetMasterVersion(ctx, sg)
	if err != nil {
		return nil, 0, err
	}

	return uploaded, mv, nil
}

func commitToDirectory(ctx context.Context, state store.SyncState, t models.UploadTracker) error {
	existing, found, err := lookupEntry(ctx, state, t.FileUUID)
	if err != nil {
		return err
	}

	entry := directoryEntryFor(existing, found, t.FileUUID, t.FileGroupUUID, t.SharingGroupID, t.MimeType)
	if t.AppMetaDataVersion != nil {
		entry.AppMetaDataVersion = t.AppMetaDataVersion
	}

	switch t.Operation {
	case models.OperationFile:
		version := t.FileVersion
		entry.FileVersion = &version
		entry.LocalPath = t.LocalPath
		entry.MimeType = t.MimeType
		entry.DeletedLocally = false
		entry.DeletedOnServer = false
	case models.OperationDeletion:
		entry.DeletedLocally = true
		entry.DeletedOnServer = true
	}

	return state.UpsertDirectoryEntry(ctx, entry)
}

// Reset implements UploadCoordinator.
func (u *uploadCoordinator) Reset(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.store.ResetUploadTrackers(ctx)
}

// Recover implements UploadCoordinator.
func (u *uploadCoordinator) Recover(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	n, err := u.store.RevertUploadingTrackers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		u.logger.Info().Str("func", "uploadCoordinator.Recover").Int64("trackers", n).Msg("reverted interrupted uploads")
	}
	return nil
}
