// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events reports progress of the sync engine to whoever listens:
// the progress view, the log or a test.
//
// The set of events is closed. A [Desired] mask selects which kinds a
// listener wants; [Report] drops everything else before it reaches the
// [Reporter].
package events

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sync-client/models"
)

// Kind identifies one event of the closed set.
type Kind uint8

const (
	KindWillStartDownloads Kind = iota + 1
	KindWillStartUploads
	KindHaveSharingGroupIDs
	KindSingleFileDownloadComplete
	KindMasterVersionChanged
)

var kindNames = map[Kind]string{
	KindWillStartDownloads:         "willStartDownloads",
	KindWillStartUploads:           "willStartUploads",
	KindHaveSharingGroupIDs:        "haveSharingGroupIds",
	KindSingleFileDownloadComplete: "singleFileDownloadComplete",
	KindMasterVersionChanged:       "masterVersionChanged",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event is a single notification. Only the fields of its Kind are set.
type Event struct {
	Kind Kind

	// KindWillStartDownloads, KindWillStartUploads
	NumberContentDownloads  int
	NumberDownloadDeletions int
	NumberUploads           int

	// KindHaveSharingGroupIDs
	SharingGroupIDs []models.SharingGroupID

	// KindSingleFileDownloadComplete
	FileUUID  string
	LocalPath string
	Operation models.Operation

	// KindMasterVersionChanged
	SharingGroupID models.SharingGroupID
	MasterVersion  models.MasterVersion
}

func WillStartDownloads(contentDownloads, downloadDeletions int) Event {
	return Event{Kind: KindWillStartDownloads, NumberContentDownloads: contentDownloads, NumberDownloadDeletions: downloadDeletions}
}

func WillStartUploads(uploads int) Event {
	return Event{Kind: KindWillStartUploads, NumberUploads: uploads}
}

func HaveSharingGroupIDs(ids []models.SharingGroupID) Event {
	return Event{Kind: KindHaveSharingGroupIDs, SharingGroupIDs: ids}
}

func SingleFileDownloadComplete(t models.DownloadTracker) Event {
	return Event{Kind: KindSingleFileDownloadComplete, FileUUID: t.FileUUID, LocalPath: t.LocalPath, Operation: t.Operation}
}

func MasterVersionChanged(sharingGroupID models.SharingGroupID, v models.MasterVersion) Event {
	return Event{Kind: KindMasterVersionChanged, SharingGroupID: sharingGroupID, MasterVersion: v}
}

// Desired is a bit mask of the kinds a listener wants.
type Desired uint32

const DesiredNone Desired = 0

// DesiredAll selects every kind.
const DesiredAll Desired = 1<<KindWillStartDownloads |
	1<<KindWillStartUploads |
	1<<KindHaveSharingGroupIDs |
	1<<KindSingleFileDownloadComplete |
	1<<KindMasterVersionChanged

// DesiredOf builds a mask from kinds.
func DesiredOf(kinds ...Kind) Desired {
	var d Desired
	for _, k := range kinds {
		d |= 1 << k
	}
	return d
}

// Has reports whether k is selected.
func (d Desired) Has(k Kind) bool {
	return d&(1<<k) != 0
}

// ParseDesired builds a mask from event names such as "willStartDownloads".
// "all" selects every kind. An unknown name is an error.
func ParseDesired(names []string) (Desired, error) {
	var d Desired
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if strings.EqualFold(name, "all") {
			return DesiredAll, nil
		}

		kind, ok := kindByName(name)
		if !ok {
			return DesiredNone, fmt.Errorf("unknown event %q", name)
		}
		d |= 1 << kind
	}
	return d, nil
}

func kindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}

// Reporter receives events. Implementations must not block.
type Reporter interface {
	Report(ev Event)
}

// Report hands ev to reporter when desired selects its kind. A nil reporter
// is allowed.
func Report(ev Event, desired Desired, reporter Reporter) {
	if reporter == nil || !desired.Has(ev.Kind) {
		return
	}
	reporter.Report(ev)
}
