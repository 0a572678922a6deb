package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-client/models"
)

func TestUploadFileParams_Values(t *testing.T) {
	meta := "m"
	version := models.AppMetaDataVersion(2)

	v := UploadFileParams{
		LocalPath:          "/tmp/x",
		FileUUID:           testFileUUID,
		MimeType:           models.MimeTypePNG,
		FileVersion:        1,
		MasterVersion:      4,
		SharingGroupID:     9,
		AppMetaData:        &meta,
		AppMetaDataVersion: &version,
		Undelete:           true,
	}.values()

	assert.Equal(t, testFileUUID, v.Get(models.KeyFileUUID))
	assert.Equal(t, "image/png", v.Get(models.KeyMimeType))
	assert.Equal(t, "1", v.Get(models.KeyFileVersion))
	assert.Equal(t, "4", v.Get(models.KeyMasterVersion))
	assert.Equal(t, "9", v.Get(models.KeySharingGroupID))
	assert.Equal(t, "m", v.Get(models.KeyAppMetaData))
	assert.Equal(t, "2", v.Get(models.KeyAppMetaDataVersion))
	assert.Equal(t, "1", v.Get(models.KeyUndeleteServerFile))
	assert.False(t, v.Has(models.KeyFileGroupUUID))
}

func TestDoneUploadsParams_OmitsZeroDeletions(t *testing.T) {
	v := DoneUploadsParams{MasterVersion: 0, SharingGroupID: 1}.values()

	assert.Equal(t, "0", v.Get(models.KeyMasterVersion))
	assert.False(t, v.Has(models.KeyNumberOfDeletions))
}

func TestParams_Validate(t *testing.T) {
	negative := models.AppMetaDataVersion(-1)

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "download ok", err: DownloadFileParams{FileUUID: testFileUUID, SharingGroupID: 1, DestDir: "d"}.validate()},
		{name: "download no dir", err: DownloadFileParams{FileUUID: testFileUUID, SharingGroupID: 1}.validate(), wantErr: true},
		{name: "download negative meta version", err: DownloadFileParams{FileUUID: testFileUUID, SharingGroupID: 1, DestDir: "d", AppMetaDataVersion: &negative}.validate(), wantErr: true},
		{name: "deletion negative file version", err: UploadDeletionParams{FileUUID: testFileUUID, FileVersion: -1, SharingGroupID: 1}.validate(), wantErr: true},
		{name: "done uploads negative master version", err: DoneUploadsParams{MasterVersion: -1, SharingGroupID: 1}.validate(), wantErr: true},
		{name: "meta upload ok", err: UploadAppMetaDataParams{FileUUID: testFileUUID, SharingGroupID: 1}.validate()},
		{name: "meta download bad uuid", err: DownloadAppMetaDataParams{FileUUID: "x", SharingGroupID: 1}.validate(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				require.ErrorIs(t, tt.err, ErrCouldNotCreateRequest)
				return
			}
			require.NoError(t, tt.err)
		})
	}
}
