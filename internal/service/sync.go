package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/models"
)

// maxRestarts bounds how often one round starts over after the server
// reported a newer master version.
const maxRestarts = 3

// errRestart makes a round start over from the download check.
var errRestart = errors.New("master version changed")

type synchronizer struct {
	downloads DownloadCoordinator
	uploads   UploadCoordinator
	logger    *logger.Logger
}

func NewSynchronizer(downloads DownloadCoordinator, uploads UploadCoordinator, logger *logger.Logger) Synchronizer {
	return &synchronizer{
		downloads: downloads,
		uploads:   uploads,
		logger:    logger,
	}
}

// Sync implements Synchronizer. Downloads are drained before uploads: an
// upload against a stale master version is refused by the server anyway.
func (s *synchronizer) Sync(ctx context.Context, sharingGroupID models.SharingGroupID) (SyncReport, error) {
	var report SyncReport

	for restarts := 0; ; restarts++ {
		if restarts > maxRestarts {
			return report, fmt.Errorf("%w: %d master version changes", ErrTooManyRestarts, report.MasterVersionHits)
		}

		err := s.round(ctx, sharingGroupID, &report)
		if errors.Is(err, errRestart) {
			report.MasterVersionHits++
			s.logger.Info().
				Str("func", "synchronizer.Sync").
				Int64("sharing_group_id", int64(sharingGroupID)).
				Int("restart", restarts+1).
				Msg("master version changed, starting over")
			continue
		}
		if err != nil {
			return report, err
		}

		s.logger.Info().
			Str("func", "synchronizer.Sync").
			Int64("sharing_group_id", int64(sharingGroupID)).
			Int("downloaded", report.Downloaded).
			Int("deletions_applied", report.DeletionsApplied).
			Int("uploaded", report.Uploaded).
			Msg("sync round finished")

		return report, nil
	}
}

func (s *synchronizer) round(ctx context.Context, sg models.SharingGroupID, report *SyncReport) error {
	if _, err := s.downloads.Check(ctx, sg); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	if err := s.drainDownloads(ctx, report); err != nil {
		return err
	}
	if err := s.drainUploads(ctx, report); err != nil {
		return err
	}

	done, err := s.uploads.DoneUploads(ctx, sg)
	if err != nil {
		return err
	}
	if done.MasterVersionUpdate != nil {
		return errRestart
	}

	return nil
}

func (s *synchronizer) drainDownloads(ctx context.Context, report *SyncReport) error {
	for first := true; ; first = false {
		res, completion, err := s.downloads.Next(ctx, first)
		if err != nil {
			return fmt.Errorf("next download: %w", err)
		}

		switch res.Kind {
		case NextNoDownloadsOrDeletions, NextAllDownloadsCompleted:
			return nil

		case NextCurrentGroupCompleted:
			if err = s.downloads.FinishGroup(ctx, res.Group.ID); err != nil {
				return fmt.Errorf("finish group %d: %w", res.Group.ID, err)
			}
			report.DeletionsApplied += len(res.Group.Deletions())

		case NextStarted:
			var c NextCompletion
			select {
			case c = <-completion:
			case <-ctx.Done():
				return ctx.Err()
			}

			switch c.Kind {
			case CompletionFileDownloaded, CompletionAppMetaDataDownloaded:
				if err = s.downloads.Acknowledge(ctx, c.Tracker.ID); err != nil {
					return fmt.Errorf("acknowledge tracker %d: %w", c.Tracker.ID, err)
				}
				report.Downloaded++
			case CompletionMasterVersionUpdate:
				return errRestart
			default:
				return fmt.Errorf("download of file %s: %w", c.Tracker.FileUUID, c.Err)
			}
		}
	}
}

func (s *synchronizer) drainUploads(ctx context.Context, report *SyncReport) error {
	for first := true; ; first = false {
		res, completion, err := s.uploads.Next(ctx, first)
		if err != nil {
			return fmt.Errorf("next upload: %w", err)
		}
		if res.Kind != UploadNextStarted {
			return nil
		}

		var c UploadCompletion
		select {
		case c = <-completion:
		case <-ctx.Done():
			return ctx.Err()
		}

		switch c.Kind {
		case UploadCompletionUploaded:
			report.Uploaded++
		case UploadCompletionMasterVersionUpdate:
			return errRestart
		default:
			return fmt.Errorf("upload of file %s: %w", c.Tracker.FileUUID, c.Err)
		}
	}
}
