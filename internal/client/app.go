package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/auth"
	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/service"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/internal/tui"
	"github.com/MKhiriev/go-sync-client/internal/workers"
	"github.com/MKhiriev/go-sync-client/models"
)

const eventBufferSize = 64

type App struct {
	ctx       context.Context
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	store       store.SyncStore
	credentials *auth.Credentials
	services    *service.ClientServices
	syncWorker  *workers.SyncWorker
	progress    *events.ChannelReporter

	logger *logger.Logger
}

// NewApp opens the sync state and wires the engine. Nothing talks to the
// server before Run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	desired, err := events.ParseDesired(cfg.App.Events)
	if err != nil {
		return nil, fmt.Errorf("parse desired events: %w", err)
	}

	syncStore, err := store.NewClientSyncStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create sync store: %w", err)
	}

	credentials, err := auth.NewCredentials(ctx, cfg.Auth, syncStore, logger)
	if err != nil {
		syncStore.Close()
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	a := &App{
		ctx:         ctx,
		cfg:         cfg,
		buildInfo:   buildInfo,
		store:       syncStore,
		credentials: credentials,
		logger:      logger,
	}

	reporter := events.Multi{events.NewLogReporter(logger)}
	if !cfg.App.Headless {
		a.progress = events.NewChannelReporter(eventBufferSize)
		reporter = append(reporter, a.progress)
	}

	api, err := adapter.NewHTTPServerAPI(cfg.Adapter, credentials, auth.NewSignOutHandler(credentials, a.signedOut, logger), logger)
	if err != nil {
		syncStore.Close()
		return nil, fmt.Errorf("create server api: %w", err)
	}

	a.services = service.NewClientServices(syncStore, api, credentials, reporter, desired, cfg.Storage, logger)
	a.syncWorker = workers.NewSyncWorker(ctx, a.services.Synchronizer, a.services.Users,
		models.SharingGroupID(cfg.App.SharingGroupID), cfg.Workers, logger)

	return a, nil
}

// Run signs in, then syncs in the background until ctx is done or the user
// leaves the progress view.
func (a *App) Run() error {
	defer a.store.Close()

	if err := a.services.Recover(a.ctx); err != nil {
		return err
	}

	if err := a.signIn(a.ctx); err != nil {
		return err
	}

	background := workers.NewWorkers(a.syncWorker)
	background.Run()
	defer background.Stop()

	if a.cfg.App.Headless {
		a.logResults()
		return nil
	}

	ui := tui.New(a.ctx, a.syncWorker, a.services.Users, tui.Sources{
		Events:  a.progress.Events(),
		Results: a.syncWorker.Results(),
	}, models.SharingGroupID(a.cfg.App.SharingGroupID), a.buildInfo, a.logger)

	if err := ui.Run(a.ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("progress view: %w", err)
	}
	return nil
}

// signIn creates the account on first start and refreshes the sharing
// groups.
func (a *App) signIn(ctx context.Context) error {
	if !a.credentials.SignedIn() {
		return ErrNotSignedIn
	}

	creds, err := a.services.Users.CheckForExistingUser(ctx)
	if err != nil {
		return fmt.Errorf("check credentials: %w", err)
	}

	if creds.NoUser {
		added, addErr := a.services.Users.AddUser(ctx, a.cfg.Auth.CloudFolderName)
		if addErr != nil {
			return fmt.Errorf("add user: %w", addErr)
		}
		a.logger.Info().
			Str("func", "App.signIn").
			Int64("user_id", added.UserID).
			Int64("sharing_group_id", int64(added.SharingGroupID)).
			Msg("account created")
	} else {
		a.logger.Info().
			Str("func", "App.signIn").
			Int64("user_id", creds.User.UserID).
			Str("permission", string(creds.User.Permission)).
			Msg("signed in")
	}

	if _, err = a.services.Users.SetupSharingGroups(ctx); err != nil {
		return fmt.Errorf("sharing groups: %w", err)
	}

	return nil
}

// logResults blocks until ctx is done. Events are logged by the log
// reporter; only round outcomes are logged here.
func (a *App) logResults() {
	for {
		select {
		case <-a.ctx.Done():
			return
		case r := <-a.syncWorker.Results():
			if r.Err != nil {
				continue
			}
			a.logger.Info().
				Str("func", "App.logResults").
				Int64("sharing_group_id", int64(r.SharingGroupID)).
				Int("downloaded", r.Report.Downloaded).
				Int("deletions_applied", r.Report.DeletionsApplied).
				Int("uploaded", r.Report.Uploaded).
				Int("master_version_hits", r.Report.MasterVersionHits).
				Msg("sync round done")
		}
	}
}

// signedOut forgets the work in progress: it was planned for a session the
// server no longer accepts.
func (a *App) signedOut(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	if err := a.services.Downloads.Reset(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.signedOut").Msg("failed to reset downloads")
	}
	if err := a.services.Uploads.Reset(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.signedOut").Msg("failed to reset uploads")
	}
}
