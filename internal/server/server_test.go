package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
)

func TestNewServer(t *testing.T) {
	handler := http.NotFoundHandler()

	tests := []struct {
		name    string
		handler http.Handler
		cfg     config.ServerConfig
		wantErr bool
	}{
		{name: "address and handler", handler: handler, cfg: config.ServerConfig{HTTPAddress: "localhost:0"}},
		{name: "no address", handler: handler, cfg: config.ServerConfig{}, wantErr: true},
		{name: "no handler", cfg: config.ServerConfig{HTTPAddress: "localhost:0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handler, tt.cfg, logger.Nop())
			if tt.wantErr {
				require.ErrorIs(t, err, errNoServersAreCreated)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestServer_ShutdownStopsRun(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.ServerConfig{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	require.Eventually(t, func() bool {
		srv.Shutdown()
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, 5*time.Second, 20*time.Millisecond)
}
