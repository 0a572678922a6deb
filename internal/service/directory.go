// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-client/models"
)

// validateMimeTypes fails closed: one unknown type rejects the whole index.
func validateMimeTypes(files []models.FileInfo) error {
	for _, f := range files {
		if _, ok := models.ParseMimeType(f.MimeType); !ok {
			return fmt.Errorf("%w: %q of file %s", ErrBadMimeType, f.MimeType, f.FileUUID)
		}
	}
	return nil
}

// planDownloads compares the server file index with the local directory
// and sorts every file needing work into exactly one list of the set.
//
// Files that already have a not finished tracker for the same operation
// and version are left out, so planning twice against an unchanged index
// yields an empty second delta.
//
// ctx cancellation is checked on every iteration.
func planDownloads(
	ctx context.Context,
	files []models.FileInfo,
	directory []models.DirectoryEntry,
	pending []models.DownloadTracker,
) (models.DownloadSet, error) {
	var set models.DownloadSet

	local := make(map[string]models.DirectoryEntry, len(directory))
	for _, e := range directory {
		local[e.FileUUID] = e
	}

	queued := make(map[string][]models.DownloadTracker, len(pending))
	for _, t := range pending {
		queued[t.FileUUID] = append(queued[t.FileUUID], t)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return models.DownloadSet{}, err
		}

		op, ok := classify(f, local)
		if !ok || alreadyQueued(queued[f.FileUUID], f, op) {
			continue
		}

		switch op {
		case models.OperationFile:
			set.DownloadFiles = append(set.DownloadFiles, f)
		case models.OperationDeletion:
			set.DownloadDeletions = append(set.DownloadDeletions, f)
		case models.OperationAppMetaData:
			set.DownloadAppMetaData = append(set.DownloadAppMetaData, f)
		}
	}

	return set, nil
}

// classify returns the operation file f needs. The second result is false
// when the local state is up to date.
func classify(f models.FileInfo, local map[string]models.DirectoryEntry) (models.Operation, bool) {
	entry, known := local[f.FileUUID]

	if !known {
		// Created and deleted on the server before this client saw it.
		if f.Deleted {
			return "", false
		}
		return models.OperationFile, true
	}

	// A local deletion is pending upload; the upload side resolves it.
	if entry.DeletedLocally {
		return "", false
	}

	if f.Deleted {
		if entry.DeletedOnServer {
			return "", false
		}
		return models.OperationDeletion, true
	}

	if entry.FileVersion == nil || f.FileVersion > *entry.FileVersion || entry.DeletedOnServer {
		return models.OperationFile, true
	}

	if f.AppMetaDataVersion != nil &&
		(entry.AppMetaDataVersion == nil || *f.AppMetaDataVersion > *entry.AppMetaDataVersion) {
		return models.OperationAppMetaData, true
	}

	return "", false
}

func alreadyQueued(trackers []models.DownloadTracker, f models.FileInfo, op models.Operation) bool {
	for _, t := range trackers {
		if t.Operation != op || t.FileVersion != f.FileVersion {
			continue
		}
		if op == models.OperationAppMetaData && !sameMetaDataVersion(t.AppMetaDataVersion, f.AppMetaDataVersion) {
			continue
		}
		return true
	}
	return false
}

func sameMetaDataVersion(a, b *models.AppMetaDataVersion) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// directoryEntryFor returns the stored entry of a file or a fresh one built
// from fallback when the file is unknown.
func directoryEntryFor(existing models.DirectoryEntry, found bool, fileUUID, fileGroupUUID string, sg models.SharingGroupID, mimeType models.MimeType) models.DirectoryEntry {
	if found {
		return existing
	}
	return models.DirectoryEntry{
		FileUUID:       fileUUID,
		FileGroupUUID:  fileGroupUUID,
		SharingGroupID: sg,
		MimeType:       mimeType,
	}
}
