package adapter

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

// UploadFileParams describe one file content upload. Undelete uploads a new
// version of a file already deleted on the server.
type UploadFileParams struct {
	LocalPath          string
	FileUUID           string
	FileGroupUUID      string
	MimeType           models.MimeType
	FileVersion        models.FileVersion
	MasterVersion      models.MasterVersion
	SharingGroupID     models.SharingGroupID
	AppMetaData        *string
	AppMetaDataVersion *models.AppMetaDataVersion
	Undelete           bool
}

type DoneUploadsParams struct {
	MasterVersion     models.MasterVersion
	SharingGroupID    models.SharingGroupID
	NumberOfDeletions uint
}

// DownloadFileParams describe one file content download. The content is
// written into DestDir.
type DownloadFileParams struct {
	FileUUID           string
	FileVersion        models.FileVersion
	AppMetaDataVersion *models.AppMetaDataVersion
	MasterVersion      models.MasterVersion
	SharingGroupID     models.SharingGroupID
	DestDir            string
}

type UploadDeletionParams struct {
	FileUUID       string
	FileVersion    models.FileVersion
	MasterVersion  models.MasterVersion
	SharingGroupID models.SharingGroupID
	// ActualDeletion asks the server to remove the file instead of marking
	// it deleted.
	ActualDeletion bool
}

type UploadAppMetaDataParams struct {
	FileUUID           string
	AppMetaData        string
	AppMetaDataVersion models.AppMetaDataVersion
	MasterVersion      models.MasterVersion
	SharingGroupID     models.SharingGroupID
}

type DownloadAppMetaDataParams struct {
	FileUUID           string
	AppMetaDataVersion models.AppMetaDataVersion
	MasterVersion      models.MasterVersion
	SharingGroupID     models.SharingGroupID
}

func (p UploadFileParams) validate() error {
	if p.LocalPath == "" {
		return invalidParam("local path", p.LocalPath)
	}
	if err := validateFile(p.FileUUID, p.FileVersion, p.MasterVersion, p.SharingGroupID); err != nil {
		return err
	}
	if p.FileGroupUUID != "" && !utils.IsUUID(p.FileGroupUUID) {
		return invalidParam("file group UUID", p.FileGroupUUID)
	}
	if _, ok := models.ParseMimeType(string(p.MimeType)); !ok {
		return invalidParam("mime type", string(p.MimeType))
	}
	if (p.AppMetaData == nil) != (p.AppMetaDataVersion == nil) {
		return fmt.Errorf("%w: app meta data and its version must be given together", ErrCouldNotCreateRequest)
	}
	return nil
}

func (p UploadFileParams) values() url.Values {
	v := url.Values{}
	v.Set(models.KeyFileUUID, p.FileUUID)
	v.Set(models.KeyMimeType, string(p.MimeType))
	v.Set(models.KeyFileVersion, strconv.Itoa(int(p.FileVersion)))
	v.Set(models.KeyMasterVersion, strconv.FormatInt(int64(p.MasterVersion), 10))
	v.Set(models.KeySharingGroupID, strconv.FormatInt(int64(p.SharingGroupID), 10))
	if p.FileGroupUUID != "" {
		v.Set(models.KeyFileGroupUUID, p.FileGroupUUID)
	}
	if p.AppMetaData != nil {
		v.Set(models.KeyAppMetaData, *p.AppMetaData)
		v.Set(models.KeyAppMetaDataVersion, strconv.Itoa(int(*p.AppMetaDataVersion)))
	}
	if p.Undelete {
		v.Set(models.KeyUndeleteServerFile, "1")
	}
	return v
}

func (p DoneUploadsParams) validate() error {
	return validateVersions(p.MasterVersion, p.SharingGroupID)
}

func (p DoneUploadsParams) values() url.Values {
	v := url.Values{}
	v.Set(models.KeyMasterVersion, strconv.FormatInt(int64(p.MasterVersion), 10))
	v.Set(models.KeySharingGroupID, strconv.FormatInt(int64(p.SharingGroupID), 10))
	if p.NumberOfDeletions > 0 {
		v.Set(models.KeyNumberOfDeletions, strconv.FormatUint(uint64(p.NumberOfDeletions), 10))
	}
	return v
}

func (p DownloadFileParams) validate() error {
	if p.DestDir == "" {
		return invalidParam("destination directory", p.DestDir)
	}
	if p.AppMetaDataVersion != nil && *p.AppMetaDataVersion < 0 {
		return invalidParam("app meta data version", strconv.Itoa(int(*p.AppMetaDataVersion)))
	}
	return validateFile(p.FileUUID, p.FileVersion, p.MasterVersion, p.SharingGroupID)
}

func (p DownloadFileParams) values() url.Values {
	v := fileValues(p.FileUUID, p.MasterVersion, p.SharingGroupID)
	v.Set(models.KeyFileVersion, strconv.Itoa(int(p.FileVersion)))
	if p.AppMetaDataVersion != nil {
		v.Set(models.KeyAppMetaDataVersion, strconv.Itoa(int(*p.AppMetaDataVersion)))
	}
	return v
}

func (p UploadDeletionParams) validate() error {
	return validateFile(p.FileUUID, p.FileVersion, p.MasterVersion, p.SharingGroupID)
}

func (p UploadDeletionParams) values() url.Values {
	v := fileValues(p.FileUUID, p.MasterVersion, p.SharingGroupID)
	v.Set(models.KeyFileVersion, strconv.Itoa(int(p.FileVersion)))
	if p.ActualDeletion {
		v.Set(models.KeyActualDeletion, "1")
	}
	return v
}

func (p UploadAppMetaDataParams) validate() error {
	if p.AppMetaDataVersion < 0 {
		return invalidParam("app meta data version", strconv.Itoa(int(p.AppMetaDataVersion)))
	}
	return validateFile(p.FileUUID, 0, p.MasterVersion, p.SharingGroupID)
}

func (p UploadAppMetaDataParams) values() url.Values {
	v := fileValues(p.FileUUID, p.MasterVersion, p.SharingGroupID)
	v.Set(models.KeyAppMetaData, p.AppMetaData)
	v.Set(models.KeyAppMetaDataVersion, strconv.Itoa(int(p.AppMetaDataVersion)))
	return v
}

func (p DownloadAppMetaDataParams) validate() error {
	if p.AppMetaDataVersion < 0 {
		return invalidParam("app meta data version", strconv.Itoa(int(p.AppMetaDataVersion)))
	}
	return validateFile(p.FileUUID, 0, p.MasterVersion, p.SharingGroupID)
}

func (p DownloadAppMetaDataParams) values() url.Values {
	v := fileValues(p.FileUUID, p.MasterVersion, p.SharingGroupID)
	v.Set(models.KeyAppMetaDataVersion, strconv.Itoa(int(p.AppMetaDataVersion)))
	return v
}

func fileValues(fileUUID string, mv models.MasterVersion, sg models.SharingGroupID) url.Values {
	v := url.Values{}
	v.Set(models.KeyFileUUID, fileUUID)
	v.Set(models.KeyMasterVersion, strconv.FormatInt(int64(mv), 10))
	v.Set(models.KeySharingGroupID, strconv.FormatInt(int64(sg), 10))
	return v
}

func sharingGroupValues(sg models.SharingGroupID) url.Values {
	v := url.Values{}
	v.Set(models.KeySharingGroupID, strconv.FormatInt(int64(sg), 10))
	return v
}

func validateFile(fileUUID string, fv models.FileVersion, mv models.MasterVersion, sg models.SharingGroupID) error {
	if !utils.IsUUID(fileUUID) {
		return invalidParam("file UUID", fileUUID)
	}
	if fv < 0 {
		return invalidParam("file version", strconv.Itoa(int(fv)))
	}
	return validateVersions(mv, sg)
}

func validateVersions(mv models.MasterVersion, sg models.SharingGroupID) error {
	if mv < 0 {
		return invalidParam("master version", strconv.FormatInt(int64(mv), 10))
	}
	return validateSharingGroup(sg)
}

func validateSharingGroup(sg models.SharingGroupID) error {
	if sg <= 0 {
		return invalidParam("sharing group id", strconv.FormatInt(int64(sg), 10))
	}
	return nil
}

func invalidParam(name, value string) error {
	return fmt.Errorf("%w: invalid %s %q", ErrCouldNotCreateRequest, name, value)
}
