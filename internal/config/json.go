package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		SharingGroupID int64    `json:"sharing_group_id"`
		Events         []string `json:"events"`
		LogPath        string   `json:"log_path"`
		Headless       bool     `json:"headless"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenType       string `json:"token_type"`
		AccessToken     string `json:"access_token"`
		CloudFolderName string `json:"cloud_folder_name"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			DownloadDir string `json:"download_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenDuration  Duration `json:"token_duration"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress         string   `json:"http_address"`
		RequestTimeout      Duration `json:"request_timeout"`
		RetryCount          int      `json:"retry_count"`
		RetryWaitTime       Duration `json:"retry_wait_time"`
		RetryMaxWaitTime    Duration `json:"retry_max_wait_time"`
		DeletionTimeoutStep Duration `json:"deletion_timeout_step"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SharingGroupID: jsonCfg.App.SharingGroupID,
			Events:         jsonCfg.App.Events,
			LogPath:        jsonCfg.App.LogPath,
			Headless:       jsonCfg.App.Headless,
		},
		Auth: Auth{
			TokenType:       jsonCfg.Auth.TokenType,
			AccessToken:     jsonCfg.Auth.AccessToken,
			CloudFolderName: jsonCfg.Auth.CloudFolderName,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{DownloadDir: jsonCfg.Storage.Files.DownloadDir},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TokenSignKey:   jsonCfg.Server.TokenSignKey,
			TokenDuration:  time.Duration(jsonCfg.Server.TokenDuration),
		},
		Adapter: Adapter{
			HTTPAddress:         jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:      time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:          jsonCfg.Adapter.RetryCount,
			RetryWaitTime:       time.Duration(jsonCfg.Adapter.RetryWaitTime),
			RetryMaxWaitTime:    time.Duration(jsonCfg.Adapter.RetryMaxWaitTime),
			DeletionTimeoutStep: time.Duration(jsonCfg.Adapter.DeletionTimeoutStep),
		},
		Workers:      Workers{SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval)},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
