package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── DownloadSet ──────────────────────────────────────────────────────────────

func TestDownloadSet_OperationFor(t *testing.T) {
	file := FileInfo{FileUUID: "f"}
	deletion := FileInfo{FileUUID: "d"}
	meta := FileInfo{FileUUID: "m"}
	set := DownloadSet{
		DownloadFiles:       []FileInfo{file},
		DownloadDeletions:   []FileInfo{deletion},
		DownloadAppMetaData: []FileInfo{meta},
	}

	tests := []struct {
		name   string
		file   FileInfo
		wantOp Operation
		wantOk bool
	}{
		{name: "file", file: file, wantOp: OperationFile, wantOk: true},
		{name: "deletion", file: deletion, wantOp: OperationDeletion, wantOk: true},
		{name: "appMetaData", file: meta, wantOp: OperationAppMetaData, wantOk: true},
		{name: "outside the set", file: FileInfo{FileUUID: "x"}, wantOp: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := set.OperationFor(tt.file)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantOp, op)
		})
	}
}

func TestDownloadSet_AllCoversEveryList(t *testing.T) {
	set := DownloadSet{
		DownloadFiles:       []FileInfo{{FileUUID: "f"}},
		DownloadDeletions:   []FileInfo{{FileUUID: "d"}},
		DownloadAppMetaData: []FileInfo{{FileUUID: "m"}},
	}

	for _, f := range set.All() {
		_, ok := set.OperationFor(f)
		assert.True(t, ok, f.FileUUID)
	}
	assert.Equal(t, 2, set.NumberContentDownloads())
	assert.False(t, set.IsEmpty())
	assert.True(t, DownloadSet{}.IsEmpty())
}

// ── ContentGroup ─────────────────────────────────────────────────────────────

func TestContentGroup_ContentAcknowledged(t *testing.T) {
	tests := []struct {
		name     string
		trackers []DownloadTracker
		want     bool
	}{
		{name: "empty", want: true},
		{
			name:     "deletions only",
			trackers: []DownloadTracker{{Operation: OperationDeletion, Status: TrackerStatusNotStarted}},
			want:     true,
		},
		{
			name:     "downloaded but still present",
			trackers: []DownloadTracker{{Operation: OperationFile, Status: TrackerStatusDownloaded}},
			want:     false,
		},
		{
			name:     "appMetaData pending",
			trackers: []DownloadTracker{{Operation: OperationAppMetaData, Status: TrackerStatusNotStarted}},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentGroup{Trackers: tt.trackers}.ContentAcknowledged())
		})
	}
}
