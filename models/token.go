package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims of an access token issued by the sync server.
// The subject is the user id; DeviceUUID names the device the token was
// issued to.
type AccessClaims struct {
	jwt.RegisteredClaims

	DeviceUUID string `json:"device_uuid,omitempty"`
}

// Token wraps a JWT access token issued by the sync server.
//
// SignedString is the compact form sent in the [HeaderAccessToken] header.
// UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	AccessClaims

	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// ExpiresWithin reports whether the token expires before now+d. Tokens
// without an "exp" claim never expire.
func (t *Token) ExpiresWithin(now time.Time, d time.Duration) bool {
	if t.ExpiresAt == nil {
		return false
	}
	return t.ExpiresAt.Time.Before(now.Add(d))
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
