package tui

import (
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/workers"
)

type eventMsg struct {
	event events.Event
}

type syncResultMsg struct {
	result workers.SyncResult
}

type invitationMsg struct {
	code string
	err  error
}

// sourceClosedMsg ends listening on a stream.
type sourceClosedMsg struct{}
