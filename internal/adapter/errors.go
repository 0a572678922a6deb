package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	ErrCouldNotCreateRequest          = errors.New("could not create request")
	ErrNilResponse                    = errors.New("no response from server")
	ErrUnauthorized                   = errors.New("client unauthorized")
	ErrInvitingUserRemoved            = errors.New("inviting user was removed")
	ErrCouldNotCreateResponse         = errors.New("could not create response")
	ErrCouldNotObtainHeaderParameters = errors.New("could not obtain header parameters")
	ErrNoExpectedResultKey            = errors.New("no expected result key in response")
	ErrBadCheckCreds                  = errors.New("bad check creds response")
	ErrBadAddUser                     = errors.New("bad add user response")
	ErrUnknownServerError             = errors.New("unknown server error")
)

// StatusError is returned for any status the client has no specific
// meaning for.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-200 status code(%d)", e.Code)
}

// IsTransient reports whether err is worth retrying later: no response,
// a timeout or a 5xx status. Unauthorized, gone, decode and business
// errors are definitive.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNilResponse) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= http.StatusInternalServerError
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
