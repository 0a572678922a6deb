package devserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

// query reads URL parameters and remembers every problem it meets, so a
// handler checks err once after reading all of them.
type query struct {
	values url.Values
	err    error
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) fail(err error, key string) {
	q.err = errors.Join(q.err, fmt.Errorf("%w: %s", err, key))
}

func (q *query) has(key string) bool {
	return q.values.Get(key) != ""
}

func (q *query) str(key string) string {
	v := q.values.Get(key)
	if v == "" {
		q.fail(ErrMissingQueryParam, key)
	}
	return v
}

func (q *query) optional(key string) *string {
	if !q.values.Has(key) {
		return nil
	}
	v := q.values.Get(key)
	return &v
}

func (q *query) uuid(key string) string {
	v := q.str(key)
	if v != "" && !utils.IsUUID(v) {
		q.fail(ErrInvalidQueryParam, key)
	}
	return v
}

func (q *query) optionalUUID(key string) string {
	if !q.has(key) {
		return ""
	}
	return q.uuid(key)
}

func (q *query) int64(key string) int64 {
	raw := q.str(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		q.fail(ErrInvalidQueryParam, key)
	}
	return v
}

func (q *query) flag(key string) bool {
	v, _ := strconv.ParseBool(q.values.Get(key))
	return v
}

func (q *query) masterVersion() models.MasterVersion {
	return models.MasterVersion(q.int64(models.KeyMasterVersion))
}

func (q *query) sharingGroupID() models.SharingGroupID {
	sg := q.int64(models.KeySharingGroupID)
	if sg == 0 && q.has(models.KeySharingGroupID) {
		q.fail(ErrInvalidQueryParam, models.KeySharingGroupID)
	}
	return models.SharingGroupID(sg)
}

func (q *query) fileVersion() models.FileVersion {
	return models.FileVersion(q.int64(models.KeyFileVersion))
}

func (q *query) appMetaDataVersion() models.AppMetaDataVersion {
	return models.AppMetaDataVersion(q.int64(models.KeyAppMetaDataVersion))
}

func (q *query) optionalAppMetaDataVersion() *models.AppMetaDataVersion {
	if !q.has(models.KeyAppMetaDataVersion) {
		return nil
	}
	v := q.appMetaDataVersion()
	return &v
}

func (q *query) mimeType() models.MimeType {
	raw := q.str(models.KeyMimeType)
	mt, ok := models.ParseMimeType(raw)
	if raw != "" && !ok {
		q.fail(ErrInvalidQueryParam, models.KeyMimeType)
	}
	return mt
}

func (q *query) permission() models.Permission {
	p := models.Permission(q.str(models.KeyPermission))
	if p != "" && !p.Valid() {
		q.fail(ErrInvalidQueryParam, models.KeyPermission)
	}
	return p
}
