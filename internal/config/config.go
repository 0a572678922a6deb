// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// client and the development sync server. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and built-in
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the sharing group to sync,
	// the desired events and where logs go.
	App App `envPrefix:"APP_"`

	// Auth holds the credentials sent with every request to the sync server.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the local sync state database and the
	// directory downloaded files are written to.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen settings of the development sync server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the sync server address, timeouts and retry policy used
	// by the protocol client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SharingGroupID is the sharing group to synchronize. Zero means "the
	// first group returned by the server".
	// Env: APP_SHARING_GROUP_ID
	SharingGroupID int64 `env:"SHARING_GROUP_ID"`

	// Events lists the names of the sync events the user wants reported
	// (e.g. "willStartDownloads,haveSharingGroupIds"). Empty means all.
	// Env: APP_EVENTS
	Events []string `env:"EVENTS" envSeparator:","`

	// LogPath is the file client logs are appended to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Headless disables the terminal progress view.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`
}

// Auth holds the credentials of the signed-in account.
type Auth struct {
	// TokenType names the account provider (e.g. "Google", "Dropbox").
	// Env: AUTH_TOKEN_TYPE
	TokenType string `env:"TOKEN_TYPE"`

	// AccessToken is the provider access token. When it is a JWT its expiry
	// is checked before each request.
	// Env: AUTH_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// CloudFolderName is sent when a new owning user is added.
	// Env: AUTH_CLOUD_FOLDER_NAME
	CloudFolderName string `env:"CLOUD_FOLDER_NAME"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite sync state database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the directory used for downloaded file contents.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "sync.db" or "file:sync.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for downloaded content.
type Files struct {
	// DownloadDir is where downloaded files are written.
	// Env: STORAGE_FILES_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Server holds network settings of the development sync server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey signs the access tokens handed out by the server. A
	// random key is used when empty, so tokens do not survive a restart.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is the lifetime of issued access tokens.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds the outbound settings of the protocol client.
type Adapter struct {
	// HTTPAddress is the sync server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout of a single request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a transient failure is retried.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWaitTime is the initial back-off between retries.
	// Env: ADAPTER_RETRY_WAIT_TIME
	RetryWaitTime time.Duration `env:"RETRY_WAIT_TIME"`

	// RetryMaxWaitTime caps the back-off between retries.
	// Env: ADAPTER_RETRY_MAX_WAIT_TIME
	RetryMaxWaitTime time.Duration `env:"RETRY_MAX_WAIT_TIME"`

	// DeletionTimeoutStep is added to the done-uploads timeout for every
	// deletion being committed.
	// Env: ADAPTER_DELETION_TIMEOUT_STEP
	DeletionTimeoutStep time.Duration `env:"DELETION_TIMEOUT_STEP"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the sync worker checks the server.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first source that sets it
// wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
