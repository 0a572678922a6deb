package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-client/models"
)

func fileVersion(v models.FileVersion) *models.FileVersion { return &v }

func TestClassify(t *testing.T) {
	const id = "7f1d2c55-6a7b-4c3e-9f1a-2b3c4d5e6f70"

	tests := []struct {
		name   string
		file   models.FileInfo
		entry  *models.DirectoryEntry
		wantOp models.Operation
		wantOK bool
	}{
		{
			name:   "unknown file",
			file:   models.FileInfo{FileUUID: id},
			wantOp: models.OperationFile,
			wantOK: true,
		},
		{
			name: "unknown file already deleted",
			file: models.FileInfo{FileUUID: id, Deleted: true},
		},
		{
			name:  "pending local deletion",
			file:  models.FileInfo{FileUUID: id, FileVersion: 3},
			entry: &models.DirectoryEntry{FileUUID: id, FileVersion: fileVersion(1), DeletedLocally: true},
		},
		{
			name:   "deleted on server",
			file:   models.FileInfo{FileUUID: id, Deleted: true},
			entry:  &models.DirectoryEntry{FileUUID: id, FileVersion: fileVersion(0)},
			wantOp: models.OperationDeletion,
			wantOK: true,
		},
		{
			name:  "deletion already applied",
			file:  models.FileInfo{FileUUID: id, Deleted: true},
			entry: &models.DirectoryEntry{FileUUID: id, FileVersion: fileVersion(0), DeletedOnServer: true},
		},
		{
			name:   "content never downloaded",
			file:   models.FileInfo{FileUUID: id},
			entry:  &models.DirectoryEntry{FileUUID: id},
			wantOp: models.OperationFile,
			wantOK: true,
		},
		{
			name:   "newer version",
			file:   models.FileInfo{FileUUID: id, FileVersion: 2},
			entry:  &models.DirectoryEntry{FileUUID: id, FileVersion: fileVersion(1)},
			wantOp: models.OperationFile,
			wantOK: true,
		},
		{
			name:   "undeleted on server",
			file:   models.FileInfo{FileUUID: id, FileVersion: 1},
			entry:  &models.DirectoryEntry{FileUUID: id, FileVersion: fileVersion(1), DeletedOnServer: true},
			wantOp: models.OperationFile,
			wantOK: true,
		},
		{
			name:   "newer appMetaData",
			file:   models.FileInfo{FileUUID: id, FileVersion: 1, AppMetaDataVersion: metaVersion(2)},
			entry:  &models.DirectoryEntry{FileUUID: id, FileVersion: fileVersion(1), AppMetaDataVersion: metaVersion(1)},
			wantOp: models.OperationAppMetaData,
			wantOK: true,
		},
		{
			name:   "first appMetaData",
			file:   models.FileInfo{FileUUID: id, FileVersion: 1, AppMetaDataVersion: metaVersion(0)},
			entry:  &models.DirectoryEntry{FileUUID: id, FileVersion: fileVersion(1)},
			wantOp: models.OperationAppMetaData,
			wantOK: true,
		},
		{
			name:  "up to date",
			file:  models.FileInfo{FileUUID: id, FileVersion: 1, AppMetaDataVersion: metaVersion(1)},
			entry: &models.DirectoryEntry{FileUUID: id, FileVersion: fileVersion(1), AppMetaDataVersion: metaVersion(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := map[string]models.DirectoryEntry{}
			if tt.entry != nil {
				local[tt.entry.FileUUID] = *tt.entry
			}

			op, ok := classify(tt.file, local)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOp, op)
		})
	}
}

func TestPlanDownloads_SkipsQueued(t *testing.T) {
	a := newFile("", 1)
	b := newFile("", 0)
	c := newFile("", 0)

	pending := []models.DownloadTracker{
		{FileUUID: a.FileUUID, FileVersion: 1, Operation: models.OperationFile},
		// an older version does not count as queued
		{FileUUID: b.FileUUID, FileVersion: 0, Operation: models.OperationAppMetaData},
	}

	set, err := planDownloads(context.Background(), []models.FileInfo{a, b, c}, nil, pending)
	require.NoError(t, err)
	require.Len(t, set.DownloadFiles, 2)
	assert.Equal(t, b.FileUUID, set.DownloadFiles[0].FileUUID)
	assert.Equal(t, c.FileUUID, set.DownloadFiles[1].FileUUID)
}

func TestPlanDownloads_EachFileInOneList(t *testing.T) {
	known := newFile("", 1)
	gone := newFile("", 0)
	meta := newFile("", 0)
	fresh := newFile("", 0)

	directory := []models.DirectoryEntry{
		{FileUUID: known.FileUUID, FileVersion: fileVersion(0)},
		{FileUUID: gone.FileUUID, FileVersion: fileVersion(0)},
		{FileUUID: meta.FileUUID, FileVersion: fileVersion(0)},
	}
	gone.Deleted = true
	meta.AppMetaDataVersion = metaVersion(0)

	set, err := planDownloads(context.Background(), []models.FileInfo{known, gone, meta, fresh}, directory, nil)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, f := range set.All() {
		seen[f.FileUUID]++
		_, ok := set.OperationFor(f)
		assert.True(t, ok)
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "file %s listed %d times", id, n)
	}
	assert.Len(t, set.DownloadFiles, 2)
	assert.Len(t, set.DownloadDeletions, 1)
	assert.Len(t, set.DownloadAppMetaData, 1)
}

func TestPlanDownloads_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := planDownloads(ctx, []models.FileInfo{newFile("", 0)}, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValidateMimeTypes(t *testing.T) {
	ok := newFile("", 0)
	require.NoError(t, validateMimeTypes([]models.FileInfo{ok}))

	bad := newFile("", 0)
	bad.MimeType = "video/mp4"
	assert.ErrorIs(t, validateMimeTypes([]models.FileInfo{ok, bad}), ErrBadMimeType)
}
