// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the protocol client of the sync server.
//
// [ServerAPI] exposes one typed method per entry of the endpoint catalog
// (see endpoints.go). Every method validates its parameters before any
// network I/O, attaches the headers of the injected [HeaderProvider] and
// classifies the response the same way:
//
//   - no response                    -> [ErrNilResponse]
//   - 401                            -> [UnauthorizedHandler] notified, [ErrUnauthorized]
//   - 410 on uploadFile              -> [ErrInvitingUserRemoved]
//   - 200                            -> typed result or a decode error
//   - anything else                  -> [*StatusError]
//
// Results of endpoints guarded by the master version are sum types: either
// the payload or MasterVersionUpdate is set, never both. A master version
// update is not an error; callers must handle it explicitly.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_api_mock.go -package=mock

// ServerAPI is the typed contract of the sync server.
type ServerAPI interface {
	HealthCheck(ctx context.Context) (models.HealthCheckResponse, error)

	// AddUser creates the account described by the current credentials.
	// cloudFolderName is required by some account types and may be empty.
	AddUser(ctx context.Context, cloudFolderName string) (AddUserResult, error)

	// CheckCreds looks up the account of the current credentials. A 401 is
	// the "no such user" answer and yields NoUser; it is never retried.
	CheckCreds(ctx context.Context) (CheckCredsResult, error)

	RemoveUser(ctx context.Context) error

	// GetSharingGroups lists the sharing groups of the account. Not retried.
	GetSharingGroups(ctx context.Context) ([]models.SharingGroupID, error)

	// FileIndex returns the server file index and current master version.
	FileIndex(ctx context.Context, sharingGroupID models.SharingGroupID) (FileIndexResult, error)

	UploadFile(ctx context.Context, params UploadFileParams) (UploadFileResult, error)

	// DoneUploads commits the uploads of the device. Its timeout grows with
	// params.NumberOfDeletions.
	DoneUploads(ctx context.Context, params DoneUploadsParams) (DoneUploadsResult, error)

	// DownloadFile streams file content into params.DestDir.
	DownloadFile(ctx context.Context, params DownloadFileParams) (DownloadFileResult, error)

	// GetUploads lists uploads of the device not yet committed.
	GetUploads(ctx context.Context, sharingGroupID models.SharingGroupID) ([]models.FileInfo, error)

	UploadDeletion(ctx context.Context, params UploadDeletionParams) (UploadDeletionResult, error)
	UploadAppMetaData(ctx context.Context, params UploadAppMetaDataParams) (UploadAppMetaDataResult, error)
	DownloadAppMetaData(ctx context.Context, params DownloadAppMetaDataParams) (DownloadAppMetaDataResult, error)

	// CreateSharingInvitation returns the invitation code.
	CreateSharingInvitation(ctx context.Context, permission models.Permission, sharingGroupID models.SharingGroupID) (string, error)
	RedeemSharingInvitation(ctx context.Context, invitationUUID, cloudFolderName string) (RedeemResult, error)
}

// HeaderProvider supplies credential and device headers. Headers is called
// once per request and its result is used as an immutable snapshot.
type HeaderProvider interface {
	Headers() map[string]string
}

// UnauthorizedHandler is notified whenever the server answers 401.
type UnauthorizedHandler interface {
	UserWasUnauthorized(ctx context.Context)
}
