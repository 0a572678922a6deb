// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FileInfo is a single entry of the server file index.
//
// MimeType is kept as the raw server string: the client validates it
// separately, see [ParseMimeType].
type FileInfo struct {
	FileUUID           string              `json:"fileUUID"`
	FileGroupUUID      string              `json:"fileGroupUUID,omitempty"`
	DeviceUUID         string              `json:"deviceUUID,omitempty"`
	MimeType           string              `json:"mimeType"`
	FileVersion        FileVersion         `json:"fileVersion"`
	AppMetaDataVersion *AppMetaDataVersion `json:"appMetaDataVersion,omitempty"`
	SharingGroupID     SharingGroupID      `json:"sharingGroupId"`
	Deleted            bool                `json:"deleted"`
	CreationDate       *time.Time          `json:"creationDate,omitempty"`
	UpdateDate         *time.Time          `json:"updateDate,omitempty"`
}

// GroupKey returns the key used to file the entry into a content group.
// Files without a file group each get a group of their own.
func (f FileInfo) GroupKey() string {
	if f.FileGroupUUID != "" {
		return f.FileGroupUUID
	}
	return "file:" + f.FileUUID
}
