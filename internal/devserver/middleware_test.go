package devserver

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

// ── withTraceID ──

func TestWithTraceID(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name           string
		requestTraceID string
	}{
		{name: "trace id from request is reused", requestTraceID: "my-trace-id"},
		{name: "trace id generated when missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()

			h.withTraceID(okHandler()).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.requestTraceID != "" {
				assert.Equal(t, tt.requestTraceID, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

// ── responseWriter ──

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ── withGZip ──

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(append([]byte("echo:"), body...))
	})

	tests := []struct {
		name           string
		acceptEncoding string
		gzipRequest    bool
		wantGzipped    bool
	}{
		{name: "plain request and response"},
		{name: "compressed response", acceptEncoding: "gzip", wantGzipped: true},
		{name: "compressed request", gzipRequest: true},
		{name: "both compressed", acceptEncoding: "deflate, gzip", gzipRequest: true, wantGzipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte("content")
			if tt.gzipRequest {
				var buf bytes.Buffer
				gz := gzip.NewWriter(&buf)
				_, _ = gz.Write(body)
				require.NoError(t, gz.Close())
				body = buf.Bytes()
			}

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			rr := httptest.NewRecorder()

			withGZip(echo).ServeHTTP(rr, req)

			var got []byte
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				gz, err := gzip.NewReader(rr.Body)
				require.NoError(t, err)
				got, err = io.ReadAll(gz)
				require.NoError(t, err)
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				got = rr.Body.Bytes()
			}
			assert.Equal(t, "echo:content", string(got))
		})
	}
}

func TestWithGZip_EmptyBodyIsStillEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	gz, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ── CheckHTTPMethod ──

func TestCheckHTTPMethod(t *testing.T) {
	h := newTestHandler()

	rr := call(h, http.MethodDelete, "/HealthCheck/", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = call(h, http.MethodGet, "/HealthCheck/", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

// ── withDevice / withAccessToken / auth ──

func TestAuthChain(t *testing.T) {
	h := newTestHandler()
	device := newDeviceUUID()

	userID, _, err := h.state.addUser("provider-token", "")
	require.NoError(t, err)
	jwt, err := h.issueToken(userID, device)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken(utils.TokenParams{Issuer: TokenIssuer, UserID: userID, DeviceUUID: device, Duration: time.Hour, SignKey: "other-key"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		token      string
		deviceUUID string
		wantStatus int
	}{
		{name: "provider token", token: "provider-token", deviceUUID: device, wantStatus: http.StatusOK},
		{name: "issued token", token: jwt, deviceUUID: device, wantStatus: http.StatusOK},
		{name: "token signed by someone else", token: foreign.SignedString, deviceUUID: device, wantStatus: http.StatusUnauthorized},
		{name: "unknown token", token: "nobody", deviceUUID: device, wantStatus: http.StatusUnauthorized},
		{name: "no token", deviceUUID: device, wantStatus: http.StatusUnauthorized},
		{name: "no device", token: "provider-token", wantStatus: http.StatusBadRequest},
		{name: "bad device", token: "provider-token", deviceUUID: "phone", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := call(h, http.MethodGet, "/CheckCreds/", tt.token, tt.deviceUUID)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestIssuedTokenNamesDevice(t *testing.T) {
	h := newTestHandler()
	device := newDeviceUUID()

	userID, _, err := h.state.addUser("provider-token", "")
	require.NoError(t, err)

	rr := call(h, http.MethodGet, "/CheckCreds/", "provider-token", device)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.CheckCredsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	parsed, err := utils.ValidateAndParseJWTToken(resp.AccessToken, testSignKey, TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
	assert.Equal(t, device, parsed.DeviceUUID)
}

func TestAuth_StoresUserAndDevice(t *testing.T) {
	h := newTestHandler()
	userID, _, err := h.state.addUser("provider-token", "")
	require.NoError(t, err)
	device := newDeviceUUID()

	var (
		gotUser   int64
		gotDevice string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotDevice = caller(r)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
	req.Header.Set(models.HeaderAccessToken, "provider-token")
	req.Header.Set(models.HeaderDeviceUUID, device)

	h.withDevice(h.withAccessToken(h.auth(next))).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, userID, gotUser)
	assert.Equal(t, device, gotDevice)
}
