package client

import "errors"

var ErrNotSignedIn = errors.New("no access token configured")
