package models

// MimeType is the content type of a synced file. Only the closed set
// declared below is understood by the client; anything else coming from the
// server is rejected.
type MimeType string

const (
	MimeTypeText        MimeType = "text/plain"
	MimeTypeJPEG        MimeType = "image/jpeg"
	MimeTypePNG         MimeType = "image/png"
	MimeTypeURL         MimeType = "application/x-url"
	MimeTypeOctetStream MimeType = "application/octet-stream"
)

var knownMimeTypes = map[MimeType]struct{}{
	MimeTypeText:        {},
	MimeTypeJPEG:        {},
	MimeTypePNG:         {},
	MimeTypeURL:         {},
	MimeTypeOctetStream: {},
}

// ParseMimeType returns the MimeType for raw and reports whether it is one
// the client understands.
func ParseMimeType(raw string) (MimeType, bool) {
	mt := MimeType(raw)
	_, ok := knownMimeTypes[mt]
	return mt, ok
}

// String implements fmt.Stringer.
func (m MimeType) String() string {
	return string(m)
}
