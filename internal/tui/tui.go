// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal progress view of the sync client. It shows
// the events of the sync engine as they arrive and the outcome of every
// round of the sync worker.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/workers"
	"github.com/MKhiriev/go-sync-client/models"
)

var ErrUserQuit = errors.New("user quit the progress view")

// SyncTrigger starts a sync round right away.
type SyncTrigger interface {
	Run()
}

// Inviter creates sharing invitations for the current sharing group.
type Inviter interface {
	CreateSharingInvitation(ctx context.Context, permission models.Permission, sharingGroupID models.SharingGroupID) (string, error)
}

// Sources are the streams the view listens to. Either may be nil.
type Sources struct {
	Events  <-chan events.Event
	Results <-chan workers.SyncResult
}

type TUI struct {
	model  progressModel
	logger *logger.Logger
}

// New creates the view. sharingGroupID may be zero: the view then follows
// the first sharing group it hears about.
func New(ctx context.Context, trigger SyncTrigger, inviter Inviter, sources Sources, sharingGroupID models.SharingGroupID, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		model:  newProgressModel(ctx, trigger, inviter, sources, sharingGroupID, buildInfo),
		logger: logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(t.model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(progressModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	t.logger.Debug().
		Str("func", "TUI.Run").
		Int("rounds", result.rounds).
		Int("downloaded", result.downloaded).
		Msg("progress view closed")

	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
