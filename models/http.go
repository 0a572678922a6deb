package models

// Headers exchanged with the sync server.
const (
	// HeaderDeviceUUID identifies the calling device on every request.
	HeaderDeviceUUID = "SyncServer-Device-UUID"
	// HeaderMessageParams carries the JSON response of endpoints whose body
	// is file content.
	HeaderMessageParams = "syncserver-message-params"
	HeaderTokenType     = "X-token-type"
	HeaderAccessToken   = "access_token"
)

// URL query keys understood by the sync server.
const (
	KeyFileUUID              = "fileUUID"
	KeyFileGroupUUID         = "fileGroupUUID"
	KeyMimeType              = "mimeType"
	KeyFileVersion           = "fileVersion"
	KeyMasterVersion         = "masterVersion"
	KeySharingGroupID        = "sharingGroupId"
	KeyAppMetaData           = "appMetaData"
	KeyAppMetaDataVersion    = "appMetaDataVersion"
	KeyUndeleteServerFile    = "undeleteServerFile"
	KeyActualDeletion        = "actualDeletion"
	KeyNumberOfDeletions     = "numberOfDeletions"
	KeyPermission            = "permission"
	KeySharingInvitationUUID = "sharingInvitationUUID"
	KeyCloudFolderName       = "cloudFolderName"
)
