package devserver

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

// caller returns the account and device of an authorized request.
func caller(r *http.Request) (int64, string) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	deviceUUID, _ := utils.GetDeviceUUIDFromContext(r.Context())
	return userID, deviceUUID
}

func (h *Handler) fileIndex(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)

	q := newQuery(r)
	sg := q.sharingGroupID()
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	index, mv, err := h.state.fileIndex(userID, sg)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.FileIndexResponse{FileIndex: index, MasterVersion: &mv})
}

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	userID, deviceUUID := caller(r)

	q := newQuery(r)
	upload := stagedUpload{
		operation: models.OperationFile,
		info: models.FileInfo{
			FileUUID:           q.uuid(models.KeyFileUUID),
			FileGroupUUID:      q.optionalUUID(models.KeyFileGroupUUID),
			MimeType:           string(q.mimeType()),
			FileVersion:        q.fileVersion(),
			SharingGroupID:     q.sharingGroupID(),
			AppMetaDataVersion: q.optionalAppMetaDataVersion(),
		},
		appMetaData: q.optional(models.KeyAppMetaData),
		undelete:    q.flag(models.KeyUndeleteServerFile),
	}
	mv := q.masterVersion()
	if (upload.appMetaData == nil) != (upload.info.AppMetaDataVersion == nil) {
		q.fail(ErrInvalidQueryParam, models.KeyAppMetaData)
	}
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: body: %w", ErrInvalidQueryParam, err))
		return
	}
	upload.content = content

	mvu, err := h.state.stage(userID, deviceUUID, mv, upload)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := models.UploadFileResponse{MasterVersionUpdate: mvu}
	if mvu == nil {
		size := int64(len(content))
		now := time.Now().UTC()
		resp.Size, resp.CreationDate, resp.UpdateDate = &size, &now, &now

		logger.FromRequest(r).Debug().
			Str("file_uuid", upload.info.FileUUID).
			Int32("file_version", int32(upload.info.FileVersion)).
			Int64("size", size).
			Msg("upload staged")
	}

	h.writeHeaderParams(w, r, resp, nil)
}

func (h *Handler) doneUploads(w http.ResponseWriter, r *http.Request) {
	userID, deviceUUID := caller(r)

	q := newQuery(r)
	sg := q.sharingGroupID()
	mv := q.masterVersion()
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	transferred, mvu, err := h.state.doneUploads(userID, deviceUUID, sg, mv)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if mvu != nil {
		h.writeJSON(w, r, models.DoneUploadsResponse{MasterVersionUpdate: mvu})
		return
	}

	logger.FromRequest(r).Info().
		Int64("sharing_group_id", int64(sg)).
		Int64("transferred", transferred).
		Str("deletions", q.values.Get(models.KeyNumberOfDeletions)).
		Msg("uploads committed")
	h.writeJSON(w, r, models.DoneUploadsResponse{NumberUploadsTransferred: &transferred})
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)

	q := newQuery(r)
	fileUUID := q.uuid(models.KeyFileUUID)
	fv := q.fileVersion()
	sg := q.sharingGroupID()
	mv := q.masterVersion()
	metaVersion := q.optionalAppMetaDataVersion()
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	f, mvu, err := h.state.file(userID, sg, mv, fileUUID, fv)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if mvu != nil {
		h.writeHeaderParams(w, r, models.DownloadFileResponse{MasterVersionUpdate: mvu}, nil)
		return
	}

	size := int64(len(f.content))
	resp := models.DownloadFileResponse{FileSizeBytes: &size}
	if metaVersion != nil && f.info.AppMetaDataVersion != nil && *metaVersion == *f.info.AppMetaDataVersion {
		resp.AppMetaData = f.appMetaData
	}

	h.writeHeaderParams(w, r, resp, f.content)
}

func (h *Handler) getUploads(w http.ResponseWriter, r *http.Request) {
	userID, deviceUUID := caller(r)

	q := newQuery(r)
	sg := q.sharingGroupID()
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	uploads, err := h.state.uploads(userID, deviceUUID, sg)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.GetUploadsResponse{Uploads: uploads})
}

func (h *Handler) uploadDeletion(w http.ResponseWriter, r *http.Request) {
	userID, deviceUUID := caller(r)

	q := newQuery(r)
	deletion := stagedUpload{
		operation: models.OperationDeletion,
		info: models.FileInfo{
			FileUUID:       q.uuid(models.KeyFileUUID),
			FileVersion:    q.fileVersion(),
			SharingGroupID: q.sharingGroupID(),
		},
		actualDeletion: q.flag(models.KeyActualDeletion),
	}
	mv := q.masterVersion()
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	mvu, err := h.state.stage(userID, deviceUUID, mv, deletion)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.UploadDeletionResponse{MasterVersionUpdate: mvu})
}

func (h *Handler) uploadAppMetaData(w http.ResponseWriter, r *http.Request) {
	userID, deviceUUID := caller(r)

	q := newQuery(r)
	metaVersion := q.appMetaDataVersion()
	meta := q.str(models.KeyAppMetaData)
	change := stagedUpload{
		operation: models.OperationAppMetaData,
		info: models.FileInfo{
			FileUUID:           q.uuid(models.KeyFileUUID),
			SharingGroupID:     q.sharingGroupID(),
			AppMetaDataVersion: &metaVersion,
		},
		appMetaData: &meta,
	}
	mv := q.masterVersion()
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	mvu, err := h.state.stage(userID, deviceUUID, mv, change)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.UploadAppMetaDataResponse{MasterVersionUpdate: mvu})
}

func (h *Handler) downloadAppMetaData(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)

	q := newQuery(r)
	fileUUID := q.uuid(models.KeyFileUUID)
	metaVersion := q.appMetaDataVersion()
	sg := q.sharingGroupID()
	mv := q.masterVersion()
	if q.err != nil {
		h.fail(w, r, q.err)
		return
	}

	meta, mvu, err := h.state.appMetaData(userID, sg, mv, fileUUID, metaVersion)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.writeJSON(w, r, models.DownloadAppMetaDataResponse{AppMetaData: meta, MasterVersionUpdate: mvu})
}
