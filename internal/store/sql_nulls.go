package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-sync-client/models"
)

func nullAppMetaDataVersion(v *models.AppMetaDataVersion) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func appMetaDataVersionPtr(v sql.NullInt32) *models.AppMetaDataVersion {
	if !v.Valid {
		return nil
	}
	out := models.AppMetaDataVersion(v.Int32)
	return &out
}

func nullFileVersion(v *models.FileVersion) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func fileVersionPtr(v sql.NullInt32) *models.FileVersion {
	if !v.Valid {
		return nil
	}
	out := models.FileVersion(v.Int32)
	return &out
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	out := s.String
	return &out
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	out := t.Time
	return &out
}
