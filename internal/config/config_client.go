package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SharingGroupID is the sharing group to sync, zero for "first known".
	SharingGroupID int64
	// Events are the names of the events the user wants reported.
	Events []string
	// LogPath is where client logs are written.
	LogPath string
	// Headless disables the progress view.
	Headless bool
}

// ClientAuth holds the credentials of the signed-in account.
type ClientAuth struct {
	TokenType       string
	AccessToken     string
	CloudFolderName string
}

// ClientAdapter holds network settings used by the protocol client.
type ClientAdapter struct {
	// HTTPAddress is the sync server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// RetryCount bounds retries of transient failures.
	RetryCount int
	// RetryWaitTime and RetryMaxWaitTime shape the retry back-off.
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	// DeletionTimeoutStep extends the done-uploads timeout per deletion.
	DeletionTimeoutStep time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientFiles contains the download directory.
type ClientFiles struct {
	DownloadDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Files holds the download directory.
	Files ClientFiles
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync worker runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Auth    ClientAuth
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			SharingGroupID: cfg.App.SharingGroupID,
			Events:         cfg.App.Events,
			LogPath:        cfg.App.LogPath,
			Headless:       cfg.App.Headless,
		},
		Auth: ClientAuth{
			TokenType:       cfg.Auth.TokenType,
			AccessToken:     cfg.Auth.AccessToken,
			CloudFolderName: cfg.Auth.CloudFolderName,
		},
		Adapter: ClientAdapter{
			HTTPAddress:         cfg.Adapter.HTTPAddress,
			RequestTimeout:      cfg.Adapter.RequestTimeout,
			RetryCount:          cfg.Adapter.RetryCount,
			RetryWaitTime:       cfg.Adapter.RetryWaitTime,
			RetryMaxWaitTime:    cfg.Adapter.RetryMaxWaitTime,
			DeletionTimeoutStep: cfg.Adapter.DeletionTimeoutStep,
		},
		Storage: ClientStorage{
			DB:    ClientDB{DSN: cfg.Storage.DB.DSN},
			Files: ClientFiles{DownloadDir: cfg.Storage.Files.DownloadDir},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
	}
}

// ServerConfig is the configuration view of the development sync server.
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	TokenSignKey   string
	TokenDuration  time.Duration
}

// GetServerConfig builds the development server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenDuration:  cfg.Server.TokenDuration,
	}

	return serverCfg, serverCfg.validate()
}
