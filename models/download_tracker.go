// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DownloadTracker is the durable record of one pending download, metadata
// download or deletion. At most one tracker is in
// [TrackerStatusDownloading] at any time.
type DownloadTracker struct {
	ID                 int64
	GroupID            int64
	FileUUID           string
	FileGroupUUID      string
	SharingGroupID     SharingGroupID
	FileVersion        FileVersion
	AppMetaDataVersion *AppMetaDataVersion
	MimeType           MimeType
	Operation          Operation
	Status             TrackerStatus

	// AppMetaData is filled once an appMetaData download finished.
	AppMetaData *string
	// LocalPath is filled once a file download finished.
	LocalPath string

	CreationDate *time.Time
	UpdateDate   *time.Time
	CreatedAt    time.Time
}

// NewDownloadTracker builds a not-started tracker for a file index entry.
func NewDownloadTracker(file FileInfo, mimeType MimeType, op Operation) DownloadTracker {
	return DownloadTracker{
		FileUUID:           file.FileUUID,
		FileGroupUUID:      file.FileGroupUUID,
		SharingGroupID:     file.SharingGroupID,
		FileVersion:        file.FileVersion,
		AppMetaDataVersion: file.AppMetaDataVersion,
		MimeType:           mimeType,
		Operation:          op,
		Status:             TrackerStatusNotStarted,
		CreationDate:       file.CreationDate,
		UpdateDate:         file.UpdateDate,
	}
}

// ContentGroup batches the trackers of one file group so they are delivered
// to the caller together.
type ContentGroup struct {
	ID             int64
	GroupKey       string
	FileGroupUUID  string
	SharingGroupID SharingGroupID
	Status         GroupStatus
	CreatedAt      time.Time

	Trackers []DownloadTracker
}

// Deletions returns the deletion trackers of the group.
func (g ContentGroup) Deletions() []DownloadTracker {
	var out []DownloadTracker
	for _, t := range g.Trackers {
		if t.Operation == OperationDeletion {
			out = append(out, t)
		}
	}
	return out
}

// NextNotStarted returns the first content tracker that has not been
// started yet.
func (g ContentGroup) NextNotStarted() (DownloadTracker, bool) {
	for _, t := range g.Trackers {
		if t.Operation.IsContents() && t.Status == TrackerStatusNotStarted {
			return t, true
		}
	}
	return DownloadTracker{}, false
}

// ContentAcknowledged reports whether every content tracker of the group
// was acknowledged. Acknowledged trackers are removed, so only deletion
// trackers may remain.
func (g ContentGroup) ContentAcknowledged() bool {
	for _, t := range g.Trackers {
		if t.Operation.IsContents() {
			return false
		}
	}
	return true
}
