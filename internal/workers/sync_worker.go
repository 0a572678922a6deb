// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/service"
	"github.com/MKhiriev/go-sync-client/models"
)

const defaultSyncInterval = 5 * time.Minute

// SharingGroupSource lists the sharing groups the worker synchronizes.
type SharingGroupSource interface {
	SharingGroups(ctx context.Context) ([]models.SharingGroupID, error)
}

// SyncResult is the outcome of one round for one sharing group.
type SyncResult struct {
	SharingGroupID models.SharingGroupID
	Report         service.SyncReport
	Err            error
	FinishedAt     time.Time
}

// SyncWorker runs a sync round right away and then on every tick. Rounds
// never overlap: a tick arriving during a round is dropped by the ticker.
type SyncWorker struct {
	ctx      context.Context
	syncer   service.Synchronizer
	groups   SharingGroupSource
	only     models.SharingGroupID
	interval time.Duration
	results  chan SyncResult
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncWorker creates a SyncWorker bound to ctx. A non-zero only restricts
// the worker to that sharing group. The worker is idle until Run is called.
func NewSyncWorker(
	ctx context.Context,
	syncer service.Synchronizer,
	groups SharingGroupSource,
	only models.SharingGroupID,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) *SyncWorker {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &SyncWorker{
		ctx:      ctx,
		syncer:   syncer,
		groups:   groups,
		only:     only,
		interval: interval,
		results:  make(chan SyncResult, 16),
		logger:   logger,
	}
}

// Results yields the outcome of every round. Results nobody reads are
// dropped.
func (w *SyncWorker) Results() <-chan SyncResult {
	return w.results
}

// Run implements Worker. It stops any previously running loop, then launches
// a goroutine that exits when the worker context is cancelled or Stop is
// called.
func (w *SyncWorker) Run() {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(w.ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.runOnce(jobCtx)
			}
		}
	}()
}

// Stop implements Stopper. Safe to call when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *SyncWorker) runOnce(ctx context.Context) {
	ids := []models.SharingGroupID{w.only}
	if w.only == 0 {
		var err error
		if ids, err = w.groups.SharingGroups(ctx); err != nil {
			w.logger.Err(err).Str("func", "SyncWorker.runOnce").Msg("no sharing groups to sync")
			w.publish(SyncResult{Err: err, FinishedAt: time.Now()})
			return
		}
	}

	for _, sg := range ids {
		if ctx.Err() != nil {
			return
		}

		report, err := w.syncer.Sync(ctx, sg)
		if err != nil {
			w.logger.Err(err).
				Str("func", "SyncWorker.runOnce").
				Int64("sharing_group_id", int64(sg)).
				Msg("sync round failed")
		}
		w.publish(SyncResult{SharingGroupID: sg, Report: report, Err: err, FinishedAt: time.Now()})
	}
}

func (w *SyncWorker) publish(r SyncResult) {
	select {
	case w.results <- r:
	default:
	}
}
