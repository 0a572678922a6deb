// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/service"
	"github.com/MKhiriev/go-sync-client/models"
)

// spySynchronizer counts Sync calls per sharing group.
type spySynchronizer struct {
	calls atomic.Int64
	err   error

	mu     sync.Mutex
	groups []models.SharingGroupID
}

func (s *spySynchronizer) Sync(_ context.Context, sg models.SharingGroupID) (service.SyncReport, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.groups = append(s.groups, sg)
	s.mu.Unlock()
	return service.SyncReport{Downloaded: 1}, s.err
}

func (s *spySynchronizer) synced() []models.SharingGroupID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SharingGroupID(nil), s.groups...)
}

type staticGroups struct {
	ids []models.SharingGroupID
	err error
}

func (g staticGroups) SharingGroups(context.Context) ([]models.SharingGroupID, error) {
	return g.ids, g.err
}

func newTestWorker(syncer service.Synchronizer, groups SharingGroupSource, only models.SharingGroupID, interval time.Duration) *SyncWorker {
	return NewSyncWorker(context.Background(), syncer, groups, only,
		config.ClientWorkers{SyncInterval: interval}, logger.Nop())
}

// ── Run / Stop ───────────────────────────────────────────────────────────────

func TestSyncWorker_Run_SyncsImmediatelyAndOnTicks(t *testing.T) {
	spy := &spySynchronizer{}
	w := newTestWorker(spy, staticGroups{}, 7, 10*time.Millisecond)

	w.Run()
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync should run several times, ran: %d", got)
	for _, sg := range spy.synced() {
		assert.Equal(t, models.SharingGroupID(7), sg)
	}
}

func TestSyncWorker_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySynchronizer{}
	w := newTestWorker(spy, staticGroups{}, 1, 10*time.Millisecond)

	w.Run()
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls expected after Stop")
}

func TestSyncWorker_Stop_BeforeRun_NoPanic(t *testing.T) {
	w := newTestWorker(&spySynchronizer{}, staticGroups{}, 1, time.Minute)
	assert.NotPanics(t, func() { w.Stop() })
}

func TestSyncWorker_Run_Twice_RestartsLoop(t *testing.T) {
	spy := &spySynchronizer{}
	w := newTestWorker(spy, staticGroups{}, 1, time.Hour)

	w.Run()
	w.Run()
	w.Stop()

	// at most one immediate round per Run
	assert.LessOrEqual(t, spy.calls.Load(), int64(2))
}

func TestSyncWorker_ParentContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	spy := &spySynchronizer{}
	w := NewSyncWorker(ctx, spy, staticGroups{}, 1, config.ClientWorkers{SyncInterval: 10 * time.Millisecond}, logger.Nop())

	w.Run()
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after parent cancel")
	}
}

func TestNewSyncWorker_DefaultInterval(t *testing.T) {
	w := newTestWorker(&spySynchronizer{}, staticGroups{}, 1, 0)
	assert.Equal(t, defaultSyncInterval, w.interval)
}

// ── Sharing groups ───────────────────────────────────────────────────────────

func TestSyncWorker_SyncsEveryStoredGroup(t *testing.T) {
	spy := &spySynchronizer{}
	w := newTestWorker(spy, staticGroups{ids: []models.SharingGroupID{3, 4}}, 0, time.Hour)

	w.Run()
	defer w.Stop()

	for _, want := range []models.SharingGroupID{3, 4} {
		select {
		case r := <-w.Results():
			require.NoError(t, r.Err)
			assert.Equal(t, want, r.SharingGroupID)
			assert.Equal(t, 1, r.Report.Downloaded)
		case <-time.After(time.Second):
			t.Fatalf("no result for sharing group %d", want)
		}
	}
}

func TestSyncWorker_NoSharingGroups_PublishesError(t *testing.T) {
	spy := &spySynchronizer{}
	w := newTestWorker(spy, staticGroups{err: service.ErrNoSharingGroups}, 0, time.Hour)

	w.Run()
	defer w.Stop()

	select {
	case r := <-w.Results():
		assert.ErrorIs(t, r.Err, service.ErrNoSharingGroups)
	case <-time.After(time.Second):
		t.Fatal("no result published")
	}
	assert.Zero(t, spy.calls.Load())
}

func TestSyncWorker_SyncError_IsPublished(t *testing.T) {
	boom := errors.New("boom")
	w := newTestWorker(&spySynchronizer{err: boom}, staticGroups{}, 5, time.Hour)

	w.Run()
	defer w.Stop()

	select {
	case r := <-w.Results():
		assert.ErrorIs(t, r.Err, boom)
		assert.Equal(t, models.SharingGroupID(5), r.SharingGroupID)
	case <-time.After(time.Second):
		t.Fatal("no result published")
	}
}
