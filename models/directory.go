package models

// DirectoryEntry is the client's record of the last known state of a file.
// FileVersion is nil when the file is known but its content was never
// downloaded.
type DirectoryEntry struct {
	FileUUID           string
	FileGroupUUID      string
	SharingGroupID     SharingGroupID
	MimeType           MimeType
	FileVersion        *FileVersion
	AppMetaDataVersion *AppMetaDataVersion
	DeletedLocally     bool
	DeletedOnServer    bool
	LocalPath          string
}
