package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-sync-client/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams = errors.New("invalid access token params")
	ErrTokenSubject       = errors.New("access token has no usable subject")
)

// TokenParams describes an access token to sign.
type TokenParams struct {
	Issuer string
	UserID int64
	// DeviceUUID is optional. Tokens handed out before a device header was
	// seen carry none.
	DeviceUUID string
	Duration   time.Duration
	SignKey    string
}

// GenerateJWTToken signs an HS256 access token for p.UserID. Issuer,
// Duration and SignKey are required.
func GenerateJWTToken(p TokenParams) (models.Token, error) {
	if p.Issuer == "" || p.Duration == 0 || p.SignKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		DeviceUUID: p.DeviceUUID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign access token: %w", err)
	}

	return models.Token{Token: token, AccessClaims: *claims, SignedString: signed, UserID: p.UserID}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and returns its claims with the subject parsed as UserID.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Token, error) {
	claims := &models.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("validate access token: %w", err)
	}

	return tokenWithUser(token, claims, tokenString)
}

// ParseUnverifiedToken decodes tokenString without checking its signature.
// The client uses it to read the expiry of a token it was handed by the
// server, never to authorize anything. A missing subject is allowed.
func ParseUnverifiedToken(tokenString string) (models.Token, error) {
	claims := &models.AccessClaims{}
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse access token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{Token: token, AccessClaims: *claims, SignedString: tokenString}, nil
	}
	return tokenWithUser(token, claims, tokenString)
}

func tokenWithUser(token *jwt.Token, claims *models.AccessClaims, signed string) (models.Token, error) {
	if claims.Subject == "" {
		return models.Token{}, ErrTokenSubject
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenSubject, err)
	}

	return models.Token{Token: token, AccessClaims: *claims, SignedString: signed, UserID: userID}, nil
}
