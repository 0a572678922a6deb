// Package utils provides general-purpose helper utilities shared by the
// sync client and the development sync server: type-safe context keys,
// HTTP response writing, HTTP client initialization, JWT handling and UUID
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the user identifier in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true: value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// DeviceUUIDCtxKey stores the UUID of the calling device, taken from the
// device header of an incoming request.
var DeviceUUIDCtxKey = contextKey("deviceUUID")

// GetDeviceUUIDFromContext retrieves the calling device UUID from the context.
func GetDeviceUUIDFromContext(ctx context.Context) (string, bool) {
	deviceUUID, ok := ctx.Value(DeviceUUIDCtxKey).(string)
	return deviceUUID, ok && deviceUUID != ""
}

// AccessTokenCtxKey stores the raw access token of an incoming request.
var AccessTokenCtxKey = contextKey("accessToken")

// GetAccessTokenFromContext retrieves the raw access token from the context.
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	return token, ok && token != ""
}

// noRetryCtxKey marks outbound requests that must not be retried.
var noRetryCtxKey = contextKey("noRetry")

// WithoutRetry returns a copy of ctx that disables automatic retries of the
// request it is attached to.
func WithoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryCtxKey, true)
}

// RetryDisabled reports whether [WithoutRetry] was applied to ctx.
func RetryDisabled(ctx context.Context) bool {
	disabled, _ := ctx.Value(noRetryCtxKey).(bool)
	return disabled
}
