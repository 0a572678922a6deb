package config

import "time"

// Defaults used when no source sets a value.
const (
	DefaultRequestTimeout      = 60 * time.Second
	DefaultRetryCount          = 3
	DefaultRetryWaitTime       = 500 * time.Millisecond
	DefaultRetryMaxWaitTime    = 5 * time.Second
	DefaultDeletionTimeoutStep = 5 * time.Second
	DefaultSyncInterval        = 5 * time.Minute
	DefaultDownloadDir         = "downloads"
	DefaultServerAddress       = "localhost:8080"
	DefaultTokenDuration       = time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Files: Files{DownloadDir: DefaultDownloadDir},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			TokenDuration:  DefaultTokenDuration,
		},
		Adapter: Adapter{
			HTTPAddress:         DefaultServerAddress,
			RequestTimeout:      DefaultRequestTimeout,
			RetryCount:          DefaultRetryCount,
			RetryWaitTime:       DefaultRetryWaitTime,
			RetryMaxWaitTime:    DefaultRetryMaxWaitTime,
			DeletionTimeoutStep: DefaultDeletionTimeoutStep,
		},
		Workers: Workers{SyncInterval: DefaultSyncInterval},
	}
}
