// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	"github.com/MKhiriev/go-sync-client/models"
)

// downloadCoordinator is the concrete DownloadCoordinator.
//
// mu guards every state transition; it is never held during a network
// call. checkMu serializes Check so that two plans computed from the same
// state cannot both be materialized.
type downloadCoordinator struct {
	store       store.SyncStore
	api         adapter.ServerAPI
	reporter    events.Reporter
	desired     events.Desired
	downloadDir string
	logger      *logger.Logger

	mu      sync.Mutex
	checkMu sync.Mutex
}

// NewDownloadCoordinator constructs a DownloadCoordinator. File content is
// written into downloadDir, created on first use. reporter may be nil.
func NewDownloadCoordinator(
	syncStore store.SyncStore,
	api adapter.ServerAPI,
	reporter events.Reporter,
	desired events.Desired,
	downloadDir string,
	logger *logger.Logger,
) DownloadCoordinator {
	return &downloadCoordinator{
		store:       syncStore,
		api:         api,
		reporter:    reporter,
		desired:     desired,
		downloadDir: downloadDir,
		logger:      logger,
	}
}

// OnlyCheck implements DownloadCoordinator.
func (c *downloadCoordinator) OnlyCheck(ctx context.Context, sharingGroupID models.SharingGroupID) (CheckResult, error) {
	index, err := c.api.FileIndex(ctx, sharingGroupID)
	if err != nil {
		return CheckResult{}, fmt.Errorf("file index: %w", err)
	}

	if err = validateMimeTypes(index.Files); err != nil {
		c.logger.Err(err).Str("func", "downloadCoordinator.OnlyCheck").Msg("server file index rejected")
		return CheckResult{}, err
	}

	directory, err := c.store.ListDirectoryEntries(ctx, sharingGroupID)
	if err != nil {
		return CheckResult{}, fmt.Errorf("list directory: %w", err)
	}

	pending, err := c.store.ListDownloadTrackers(ctx)
	if err != nil {
		return CheckResult{}, fmt.Errorf("list download trackers: %w", err)
	}

	set, err := planDownloads(ctx, index.Files, directory, pending)
	if err != nil {
		return CheckResult{}, err
	}

	return CheckResult{SharingGroupID: sharingGroupID, MasterVersion: index.MasterVersion, Set: set}, nil
}

// Check implements DownloadCoordinator.
func (c *downloadCoordinator) Check(ctx context.Context, sharingGroupID models.SharingGroupID) (CheckOutcome, error) {
	c.checkMu.Lock()
	defer c.checkMu.Unlock()

	result, err := c.OnlyCheck(ctx, sharingGroupID)
	if err != nil {
		return CheckOutcome{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		if err := state.SetMasterVersion(ctx, sharingGroupID, result.MasterVersion); err != nil {
			return err
		}
		return materialize(ctx, state, result.Set)
	})
	if err != nil {
		return CheckOutcome{}, err
	}

	if result.Set.IsEmpty() {
		return CheckOutcome{}, nil
	}

	outcome := CheckOutcome{
		DownloadsAvailable:        true,
		NumberOfContentDownloads:  result.Set.NumberContentDownloads(),
		NumberOfDownloadDeletions: len(result.Set.DownloadDeletions),
	}

	c.logger.Info().
		Str("func", "downloadCoordinator.Check").
		Int64("sharing_group_id", int64(sharingGroupID)).
		Int64("master_version", int64(result.MasterVersion)).
		Int("content_downloads", outcome.NumberOfContentDownloads).
		Int("download_deletions", outcome.NumberOfDownloadDeletions).
		Msg("downloads available")

	return outcome, nil
}

// materialize files one tracker per entry of set into its content group.
// Not started trackers of an older version of the same file are replaced.
func materialize(ctx context.Context, state store.SyncState, set models.DownloadSet) error {
	existing, err := state.ListDownloadTrackers(ctx, models.TrackerStatusNotStarted)
	if err != nil {
		return err
	}

	for _, file := range set.All() {
		op, ok := set.OperationFor(file)
		if !ok {
			return fmt.Errorf("%w: file %s matches no operation", ErrInternalInconsistency, file.FileUUID)
		}

		mimeType, ok := models.ParseMimeType(file.MimeType)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadMimeType, file.MimeType)
		}

		var superseded []int64
		for _, t := range existing {
			if t.FileUUID == file.FileUUID {
				superseded = append(superseded, t.ID)
			}
		}
		if err = state.DeleteDownloadTrackers(ctx, superseded...); err != nil {
			return err
		}

		group, err := state.FindOrCreateContentGroup(ctx, file.GroupKey(), file.FileGroupUUID, file.SharingGroupID)
		if err != nil {
			return err
		}

		tracker := models.NewDownloadTracker(file, mimeType, op)
		tracker.GroupID = group.ID
		if err = state.CreateDownloadTracker(ctx, &tracker); err != nil {
			return err
		}
	}

	return nil
}

// Next implements DownloadCoordinator.
func (c *downloadCoordinator) Next(ctx context.Context, first bool) (NextResult, <-chan NextCompletion, error) {
	var (
		result          NextResult
		tracker         models.DownloadTracker
		masterVersion   models.MasterVersion
		contentCount    int
		deletionCount   int
		anyTrackersLeft bool
	)

	c.mu.Lock()
	err := c.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		trackers, err := state.ListDownloadTrackers(ctx)
		if err != nil {
			return err
		}
		groups, err := state.ListContentGroups(ctx, models.GroupStatusNotStarted, models.GroupStatusDownloading)
		if err != nil {
			return err
		}

		if len(trackers) == 0 && len(groups) == 0 {
			result.Kind = NextNoDownloadsOrDeletions
			return nil
		}

		for _, t := range trackers {
			if t.Status == models.TrackerStatusDownloading {
				return fmt.Errorf("%w: tracker %d of file %s", ErrAlreadyDownloadingAFile, t.ID, t.FileUUID)
			}
			if t.Operation == models.OperationDeletion {
				deletionCount++
			} else {
				contentCount++
			}
		}
		anyTrackersLeft = true

		if len(groups) == 0 {
			result.Kind = NextAllDownloadsCompleted
			return nil
		}

		current := groups[0]
		for _, g := range groups {
			if g.Status == models.GroupStatusDownloading {
				current = g
				break
			}
		}

		if err = state.UpdateContentGroupStatus(ctx, current.ID, models.GroupStatusDownloading); err != nil {
			return err
		}
		if current, err = state.GetContentGroup(ctx, current.ID); err != nil {
			return err
		}

		next, ok := current.NextNotStarted()
		if !ok {
			result = NextResult{Kind: NextCurrentGroupCompleted, Group: &current}
			return nil
		}

		if masterVersion, err = state.GetMasterVersion(ctx, current.SharingGroupID); err != nil {
			return err
		}

		next.Status = models.TrackerStatusDownloading
		if err = state.UpdateDownloadTracker(ctx, next); err != nil {
			return err
		}

		tracker = next
		result = NextResult{Kind: NextStarted, Tracker: &next}
		return nil
	})
	c.mu.Unlock()

	if err != nil {
		c.logger.Err(err).Str("func", "downloadCoordinator.Next").Msg("could not select next download")
		return NextResult{}, nil, err
	}

	if first && anyTrackersLeft {
		events.Report(events.WillStartDownloads(contentCount, deletionCount), c.desired, c.reporter)
	}

	if result.Kind != NextStarted {
		return result, nil, nil
	}

	completion := make(chan NextCompletion, 1)
	go c.download(context.WithoutCancel(ctx), ctx, tracker, masterVersion, completion)

	return result, completion, nil
}

// download performs the single network call of a started tracker. ctx
// bounds the call; persistCtx outlives a cancelled caller so the tracker
// can always be reverted.
func (c *downloadCoordinator) download(persistCtx, ctx context.Context, tracker models.DownloadTracker, mv models.MasterVersion, completion chan<- NextCompletion) {
	switch tracker.Operation {
	case models.OperationFile:
		if err := os.MkdirAll(c.downloadDir, 0o700); err != nil {
			completion <- c.doError(persistCtx, tracker, fmt.Errorf("create download dir: %w", err))
			return
		}

		res, err := c.api.DownloadFile(ctx, adapter.DownloadFileParams{
			FileUUID:           tracker.FileUUID,
			FileVersion:        tracker.FileVersion,
			AppMetaDataVersion: tracker.AppMetaDataVersion,
			MasterVersion:      mv,
			SharingGroupID:     tracker.SharingGroupID,
			DestDir:            c.downloadDir,
		})
		switch {
		case err != nil:
			completion <- c.doError(persistCtx, tracker, err)
		case res.MasterVersionUpdate != nil:
			completion <- c.masterVersionUpdate(persistCtx, tracker, *res.MasterVersionUpdate)
		case res.Downloaded == nil:
			completion <- c.doError(persistCtx, tracker, fmt.Errorf("%w: download of file %s", adapter.ErrNoExpectedResultKey, tracker.FileUUID))
		default:
			tracker.LocalPath = res.Downloaded.LocalPath
			tracker.AppMetaData = res.Downloaded.AppMetaData
			completion <- c.downloaded(persistCtx, tracker, CompletionFileDownloaded)
		}

	case models.OperationAppMetaData:
		if tracker.AppMetaDataVersion == nil {
			completion <- c.doError(persistCtx, tracker, fmt.Errorf("%w: appMetaData tracker %d without version", ErrInternalInconsistency, tracker.ID))
			return
		}

		res, err := c.api.DownloadAppMetaData(ctx, adapter.DownloadAppMetaDataParams{
			FileUUID:           tracker.FileUUID,
			AppMetaDataVersion: *tracker.AppMetaDataVersion,
			MasterVersion:      mv,
			SharingGroupID:     tracker.SharingGroupID,
		})
		switch {
		case err != nil:
			completion <- c.doError(persistCtx, tracker, err)
		case res.MasterVersionUpdate != nil:
			completion <- c.masterVersionUpdate(persistCtx, tracker, *res.MasterVersionUpdate)
		default:
			tracker.AppMetaData = res.AppMetaData
			completion <- c.downloaded(persistCtx, tracker, CompletionAppMetaDataDownloaded)
		}

	default:
		completion <- c.doError(persistCtx, tracker, fmt.Errorf("%w: cannot download %q", ErrInternalInconsistency, tracker.Operation))
	}
}

func (c *downloadCoordinator) downloaded(ctx context.Context, tracker models.DownloadTracker, kind CompletionKind) NextCompletion {
	c.mu.Lock()
	defer c.mu.Unlock()

	tracker.Status = models.TrackerStatusDownloaded
	if err := c.store.UpdateDownloadTracker(ctx, tracker); err != nil {
		return c.revert(ctx, tracker, err)
	}

	events.Report(events.SingleFileDownloadComplete(tracker), c.desired, c.reporter)
	return NextCompletion{Kind: kind, Tracker: tracker}
}

// masterVersionUpdate discards the whole plan: it was computed against a
// file index that no longer exists.
func (c *downloadCoordinator) masterVersionUpdate(ctx context.Context, tracker models.DownloadTracker, v models.MasterVersion) NextCompletion {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		if err := state.DeleteAllDownloadTrackers(ctx); err != nil {
			return err
		}
		if err := state.DeleteAllContentGroups(ctx); err != nil {
			return err
		}
		return state.SetMasterVersion(ctx, tracker.SharingGroupID, v)
	})
	if err != nil {
		return c.revert(ctx, tracker, err)
	}

	c.logger.Info().
		Str("func", "downloadCoordinator.masterVersionUpdate").
		Int64("sharing_group_id", int64(tracker.SharingGroupID)).
		Int64("master_version", int64(v)).
		Msg("master version changed, pending downloads discarded")
	events.Report(events.MasterVersionChanged(tracker.SharingGroupID, v), c.desired, c.reporter)

	return NextCompletion{Kind: CompletionMasterVersionUpdate, Tracker: tracker, MasterVersion: v}
}

// doError reverts the tracker so a later Next retries it and surfaces err.
func (c *downloadCoordinator) doError(ctx context.Context, tracker models.DownloadTracker, err error) NextCompletion {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.revert(ctx, tracker, err)
}

// revert must be called with mu held.
func (c *downloadCoordinator) revert(ctx context.Context, tracker models.DownloadTracker, cause error) NextCompletion {
	c.logger.Err(cause).
		Str("func", "downloadCoordinator.revert").
		Int64("tracker_id", tracker.ID).
		Str("file_uuid", tracker.FileUUID).
		Msg("download failed")

	tracker.Status = models.TrackerStatusNotStarted
	if err := c.store.UpdateDownloadTracker(ctx, tracker); err != nil {
		c.logger.Err(err).Str("func", "downloadCoordinator.revert").Int64("tracker_id", tracker.ID).Msg("could not revert tracker")
	}

	return NextCompletion{Kind: CompletionError, Tracker: tracker, Err: cause}
}

// Acknowledge implements DownloadCoordinator.
func (c *downloadCoordinator) Acknowledge(ctx context.Context, trackerID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		tracker, err := state.GetDownloadTracker(ctx, trackerID)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %d", ErrTrackerNotFound, trackerID)
		}
		if err != nil {
			return err
		}
		if tracker.Status != models.TrackerStatusDownloaded {
			return fmt.Errorf("%w: tracker %d is %s", ErrTrackerNotDownloaded, trackerID, tracker.Status)
		}

		existing, err := state.GetDirectoryEntry(ctx, tracker.FileUUID)
		found := err == nil
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}

		entry := directoryEntryFor(existing, found, tracker.FileUUID, tracker.FileGroupUUID, tracker.SharingGroupID, tracker.MimeType)
		if tracker.AppMetaDataVersion != nil {
			entry.AppMetaDataVersion = tracker.AppMetaDataVersion
		}
		if tracker.Operation == models.OperationFile {
			version := tracker.FileVersion
			entry.FileVersion = &version
			entry.LocalPath = tracker.LocalPath
			entry.MimeType = tracker.MimeType
			entry.DeletedOnServer = false
		}

		if err = state.UpsertDirectoryEntry(ctx, entry); err != nil {
			return err
		}
		return state.DeleteDownloadTrackers(ctx, trackerID)
	})
}

// FinishGroup implements DownloadCoordinator.
func (c *downloadCoordinator) FinishGroup(ctx context.Context, groupID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []string

	err := c.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		group, err := state.GetContentGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if !group.ContentAcknowledged() {
			return fmt.Errorf("%w: group %d", ErrGroupNotComplete, groupID)
		}

		for _, d := range group.Deletions() {
			existing, err := state.GetDirectoryEntry(ctx, d.FileUUID)
			found := err == nil
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}

			entry := directoryEntryFor(existing, found, d.FileUUID, d.FileGroupUUID, d.SharingGroupID, d.MimeType)
			if entry.LocalPath != "" {
				removed = append(removed, entry.LocalPath)
			}
			version := d.FileVersion
			entry.FileVersion = &version
			entry.DeletedOnServer = true
			entry.LocalPath = ""

			if err = state.UpsertDirectoryEntry(ctx, entry); err != nil {
				return err
			}
		}

		if err = state.UpdateContentGroupStatus(ctx, groupID, models.GroupStatusCompleted); err != nil {
			return err
		}
		return state.DeleteContentGroup(ctx, groupID)
	})
	if err != nil {
		return err
	}

	for _, path := range removed {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			c.logger.Warn().Err(rmErr).Str("func", "downloadCoordinator.FinishGroup").Str("path", path).Msg("could not remove deleted file")
		}
	}

	return nil
}

// Reset implements DownloadCoordinator.
func (c *downloadCoordinator) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.PerformAndSave(ctx, func(ctx context.Context, state store.SyncState) error {
		if err := state.DeleteAllDownloadTrackers(ctx); err != nil {
			return err
		}
		return state.DeleteAllContentGroups(ctx)
	})
}

// Recover implements DownloadCoordinator.
func (c *downloadCoordinator) Recover(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, err := c.store.RevertDownloadingTrackers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		c.logger.Info().Str("func", "downloadCoordinator.Recover").Int64("trackers", n).Msg("reverted interrupted downloads")
	}
	return nil
}
