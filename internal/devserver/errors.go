package devserver

import "errors"

var (
	// ErrEmptyAccessToken is returned by the auth middleware when the
	// access token header is missing.
	ErrEmptyAccessToken = errors.New("empty `access_token` header")

	// ErrUnknownUser means the access token belongs to no account.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidDeviceUUID is returned when the device header is missing or
	// is not a UUID.
	ErrInvalidDeviceUUID = errors.New("invalid device UUID header")

	ErrUserExists          = errors.New("user already exists")
	ErrNotAMember          = errors.New("user is not a member of the sharing group")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNoOwningUser        = errors.New("sharing group has no owning user")
	ErrFileNotFound        = errors.New("file not found")
	ErrFileDeleted         = errors.New("file is deleted")
	ErrVersionConflict     = errors.New("version conflict")
	ErrInvitationNotFound  = errors.New("sharing invitation not found")
	ErrInvalidQueryParam   = errors.New("invalid query parameter")
	ErrMissingQueryParam   = errors.New("missing query parameter")
	ErrSharingGroupUnknown = errors.New("unknown sharing group")
)
