package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/store"
)

// ClientServices groups every service of the sync client.
type ClientServices struct {
	Downloads    DownloadCoordinator
	Uploads      UploadCoordinator
	Users        UserService
	Synchronizer Synchronizer
}

func NewClientServices(
	syncStore store.SyncStore,
	api adapter.ServerAPI,
	tokens AccessTokenHolder,
	reporter events.Reporter,
	desired events.Desired,
	cfg config.ClientStorage,
	logger *logger.Logger,
) *ClientServices {
	downloads := NewDownloadCoordinator(syncStore, api, reporter, desired, cfg.Files.DownloadDir, logger)
	uploads := NewUploadCoordinator(syncStore, api, reporter, desired, logger)

	return &ClientServices{
		Downloads:    downloads,
		Uploads:      uploads,
		Users:        NewUserService(api, syncStore, tokens, reporter, desired, logger),
		Synchronizer: NewSynchronizer(downloads, uploads, logger),
	}
}

// Recover returns both queues to a state the coordinators can resume from
// after the previous process stopped mid-transfer.
func (s *ClientServices) Recover(ctx context.Context) error {
	if err := s.Downloads.Recover(ctx); err != nil {
		return fmt.Errorf("recover downloads: %w", err)
	}
	if err := s.Uploads.Recover(ctx); err != nil {
		return fmt.Errorf("recover uploads: %w", err)
	}
	return nil
}
