package devserver

import (
	"errors"
	"net/http"
)

var errorStatusMap = map[error]int{
	ErrEmptyAccessToken:    http.StatusUnauthorized,
	ErrUnknownUser:         http.StatusUnauthorized,
	ErrInvalidDeviceUUID:   http.StatusBadRequest,
	ErrInvalidQueryParam:   http.StatusBadRequest,
	ErrMissingQueryParam:   http.StatusBadRequest,
	ErrUserExists:          http.StatusConflict,
	ErrNotAMember:          http.StatusForbidden,
	ErrPermissionDenied:    http.StatusForbidden,
	ErrNoOwningUser:        http.StatusGone,
	ErrFileNotFound:        http.StatusNotFound,
	ErrFileDeleted:         http.StatusConflict,
	ErrVersionConflict:     http.StatusConflict,
	ErrInvitationNotFound:  http.StatusNotFound,
	ErrSharingGroupUnknown: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
