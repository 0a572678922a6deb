package devserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

// TokenIssuer is the "iss" claim of access tokens handed out by the server.
const TokenIssuer = "go-sync-devserver"

type Handler struct {
	state *state

	signKey        string
	tokenDuration  time.Duration
	requestTimeout time.Duration

	buildInfo models.AppBuildInfo
	started   time.Time

	logger *logger.Logger
}

// NewHandler creates a server with no users. A random sign key is generated
// when cfg.TokenSignKey is empty.
func NewHandler(cfg config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	signKey := cfg.TokenSignKey
	if signKey == "" {
		signKey = utils.NewUUIDGenerator().Generate()
	}
	tokenDuration := cfg.TokenDuration
	if tokenDuration <= 0 {
		tokenDuration = config.DefaultTokenDuration
	}

	logger.Info().Msg("dev server handler created")
	return &Handler{
		state:          newState(),
		signKey:        signKey,
		tokenDuration:  tokenDuration,
		requestTimeout: cfg.RequestTimeout,
		buildInfo:      buildInfo,
		started:        time.Now(),
		logger:         logger,
	}
}

// issueToken signs an access token for userID bound to the requesting
// device.
func (h *Handler) issueToken(userID int64, deviceUUID string) (string, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:     TokenIssuer,
		UserID:     userID,
		DeviceUUID: deviceUUID,
		Duration:   h.tokenDuration,
		SignKey:    h.signKey,
	})
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return token.SignedString, nil
}

// fail logs err and answers with the status mapped from it.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, err.Error(), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeHeaderParams answers endpoints whose body is file content: the JSON
// result goes into the message params header.
func (h *Handler) writeHeaderParams(w http.ResponseWriter, r *http.Request, data any, content []byte) {
	if err := utils.SetJSONHeader(w, models.HeaderMessageParams, data); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if len(content) > 0 {
		if _, err := w.Write(content); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing file content")
		}
	}
}
