package events

import (
	"sync/atomic"

	"github.com/MKhiriev/go-sync-client/internal/logger"
)

// ChannelReporter forwards events on a buffered channel. When the buffer is
// full the event is dropped and counted.
type ChannelReporter struct {
	ch      chan Event
	dropped atomic.Int64
}

func NewChannelReporter(size int) *ChannelReporter {
	if size <= 0 {
		size = 1
	}
	return &ChannelReporter{ch: make(chan Event, size)}
}

func (r *ChannelReporter) Report(ev Event) {
	select {
	case r.ch <- ev:
	default:
		r.dropped.Add(1)
	}
}

// Events is the receiving side of the reporter.
func (r *ChannelReporter) Events() <-chan Event {
	return r.ch
}

// Dropped returns how many events did not fit into the buffer.
func (r *ChannelReporter) Dropped() int64 {
	return r.dropped.Load()
}

// LogReporter writes every event to the log.
type LogReporter struct {
	logger *logger.Logger
}

func NewLogReporter(logger *logger.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Report(ev Event) {
	entry := r.logger.Info().Str("event", ev.Kind.String())

	switch ev.Kind {
	case KindWillStartDownloads:
		entry = entry.Int("content_downloads", ev.NumberContentDownloads).Int("download_deletions", ev.NumberDownloadDeletions)
	case KindWillStartUploads:
		entry = entry.Int("uploads", ev.NumberUploads)
	case KindHaveSharingGroupIDs:
		entry = entry.Int("sharing_groups", len(ev.SharingGroupIDs))
	case KindSingleFileDownloadComplete:
		entry = entry.Str("file_uuid", ev.FileUUID).Str("operation", string(ev.Operation))
	case KindMasterVersionChanged:
		entry = entry.Int64("sharing_group_id", int64(ev.SharingGroupID)).Int64("master_version", int64(ev.MasterVersion))
	}

	entry.Msg("sync event")
}

// Multi fans an event out to several reporters.
type Multi []Reporter

func (m Multi) Report(ev Event) {
	for _, r := range m {
		if r != nil {
			r.Report(ev)
		}
	}
}
