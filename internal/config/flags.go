package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags reads the command line of the client and the dev server.
// Both binaries share one flag set; each reads the fields of its own view.
// Unset flags stay zero so lower priority sources can fill them.
//
//	-a                      sync server address host:port
//	-d                      sqlite database DSN
//	-download-dir           directory for downloaded file contents
//	-c, -config             JSON config file
//	-request-timeout        per request timeout
//	-retry-count            retries of transient adapter failures
//	-retry-wait             first retry back-off
//	-retry-max-wait         back-off ceiling
//	-deletion-timeout-step  extra timeout per deletion in DoneUploads
//	-sync-interval          pause between sync rounds
//	-sharing-group          sharing group to sync, 0 picks the first
//	-token-type, -token     account provider credentials
//	-cloud-folder           cloud folder for a new owning user
//	-events                 comma separated events to report
//	-log-path               client log file
//	-headless               log instead of showing the progress view
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var (
		cfg           StructuredConfig
		serverAddress NetAddress
		events        string
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Sync server net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite database DSN")
	fs.StringVar(&cfg.Storage.Files.DownloadDir, "download-dir", "", "Directory for downloaded files")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Adapter.RetryCount, "retry-count", 0, "Retries of transient failures")
	fs.DurationVar(&cfg.Adapter.RetryWaitTime, "retry-wait", 0, "Initial retry back-off (e.g., 500ms)")
	fs.DurationVar(&cfg.Adapter.RetryMaxWaitTime, "retry-max-wait", 0, "Retry back-off ceiling (e.g., 10s)")
	fs.DurationVar(&cfg.Adapter.DeletionTimeoutStep, "deletion-timeout-step", 0, "Extra DoneUploads timeout per deletion")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Sync worker interval (e.g., 5m)")
	fs.Int64Var(&cfg.App.SharingGroupID, "sharing-group", 0, "Sharing group id to sync")
	fs.StringVar(&cfg.Auth.TokenType, "token-type", "", "Account provider name")
	fs.StringVar(&cfg.Auth.AccessToken, "token", "", "Access token")
	fs.StringVar(&cfg.Auth.CloudFolderName, "cloud-folder", "", "Cloud folder name for new owning users")
	fs.StringVar(&events, "events", "", "Comma separated event names to report")
	fs.StringVar(&cfg.App.LogPath, "log-path", "", "Client log file")
	fs.BoolVar(&cfg.App.Headless, "headless", false, "Disable the progress view")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.App.Events = splitList(events)
	cfg.Adapter.HTTPAddress = serverAddress.String()
	cfg.Server.HTTPAddress = cfg.Adapter.HTTPAddress
	cfg.Server.RequestTimeout = cfg.Adapter.RequestTimeout

	return &cfg, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
