// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MasterVersion is the server-authoritative counter of a sharing group.
// It increases on every committed batch of uploads or deletions. A request
// that carries a stale master version is answered with a master version
// update instead of its payload.
type MasterVersion int64

// SharingGroupID identifies a set of users sharing one file collection.
type SharingGroupID int64

// FileVersion is the content version of a single file. Version 0 is the
// first upload.
type FileVersion int32

// AppMetaDataVersion is the version of the opaque application metadata
// attached to a file.
type AppMetaDataVersion int32
