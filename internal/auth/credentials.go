// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth holds the credentials of the signed-in account and the
// persistent identity of this device. [Credentials] is the header provider
// of the protocol client; [SignOutHandler] is notified on every 401.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

// SettingDeviceUUID is the settings key of the device UUID.
const SettingDeviceUUID = "device_uuid"

// Credentials is safe for concurrent use. Token rotation applies to the next
// request; requests in flight keep the headers they were built with.
type Credentials struct {
	mu          sync.RWMutex
	tokenType   string
	accessToken string

	deviceUUID string
	logger     *logger.Logger
}

// NewCredentials loads the device UUID from settings, generating and storing
// one on first start, and seeds the token from authCfg.
func NewCredentials(ctx context.Context, authCfg config.ClientAuth, settings store.SettingsRepository, logger *logger.Logger) (*Credentials, error) {
	deviceUUID, err := loadDeviceUUID(ctx, settings, utils.NewUUIDGenerator())
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("func", "NewCredentials").Str("device_uuid", deviceUUID).Msg("device identity loaded")

	return &Credentials{
		tokenType:   authCfg.TokenType,
		accessToken: authCfg.AccessToken,
		deviceUUID:  deviceUUID,
		logger:      logger,
	}, nil
}

func loadDeviceUUID(ctx context.Context, settings store.SettingsRepository, uuids *utils.UUIDGenerator) (string, error) {
	deviceUUID, err := settings.GetSetting(ctx, SettingDeviceUUID)
	switch {
	case err == nil && utils.IsUUID(deviceUUID):
		return deviceUUID, nil
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return "", fmt.Errorf("read device uuid: %w", err)
	}

	deviceUUID = uuids.Generate()
	if err = settings.SetSetting(ctx, SettingDeviceUUID, deviceUUID); err != nil {
		return "", fmt.Errorf("store device uuid: %w", err)
	}

	return deviceUUID, nil
}

// Headers implements adapter.HeaderProvider. The token headers are omitted
// while signed out.
func (c *Credentials) Headers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	headers := map[string]string{models.HeaderDeviceUUID: c.deviceUUID}
	if c.accessToken != "" {
		headers[models.HeaderAccessToken] = c.accessToken
		if c.tokenType != "" {
			headers[models.HeaderTokenType] = c.tokenType
		}
	}

	return headers
}

// DeviceUUID returns the persistent identifier of this device.
func (c *Credentials) DeviceUUID() string {
	return c.deviceUUID
}

// SetAccessToken replaces the token sent with every following request. An
// empty tokenType keeps the current one.
func (c *Credentials) SetAccessToken(tokenType, accessToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tokenType != "" {
		c.tokenType = tokenType
	}
	c.accessToken = accessToken
}

// Clear drops the access token.
func (c *Credentials) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.accessToken = ""
}

// SignedIn reports whether an access token is held.
func (c *Credentials) SignedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.accessToken != ""
}

// ExpiresWithin reports whether the access token is a JWT that expires before
// now+d. Opaque tokens are handled by the server alone and never report
// expiry.
func (c *Credentials) ExpiresWithin(now time.Time, d time.Duration) bool {
	c.mu.RLock()
	accessToken := c.accessToken
	c.mu.RUnlock()

	if accessToken == "" {
		return false
	}

	token, err := utils.ParseUnverifiedToken(accessToken)
	if err != nil {
		return false
	}

	return token.ExpiresWithin(now, d)
}
