package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

type httpServerAPI struct {
	client *utils.HTTPClient

	headers      HeaderProvider
	unauthorized UnauthorizedHandler

	requestTimeout      time.Duration
	deletionTimeoutStep time.Duration

	uuids  *utils.UUIDGenerator
	logger *logger.Logger
}

// NewHTTPServerAPI constructs the resty based [ServerAPI]. Transport
// failures and 5xx answers are retried up to adapterCfg.RetryCount times
// unless the request context carries [utils.WithoutRetry]. unauthorized may
// be nil.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a URL.
func NewHTTPServerAPI(adapterCfg config.ClientAdapter, headers HeaderProvider, unauthorized UnauthorizedHandler, logger *logger.Logger) (ServerAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.RetryOptions{
		RetryCount:       adapterCfg.RetryCount,
		RetryWaitTime:    adapterCfg.RetryWaitTime,
		RetryMaxWaitTime: adapterCfg.RetryMaxWaitTime,
	})
	client.SetBaseURL(baseURL).AddRetryCondition(shouldRetry)

	requestTimeout := adapterCfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultRequestTimeout
	}
	deletionTimeoutStep := adapterCfg.DeletionTimeoutStep
	if deletionTimeoutStep <= 0 {
		deletionTimeoutStep = config.DefaultDeletionTimeoutStep
	}

	return &httpServerAPI{
		client:              client,
		headers:             headers,
		unauthorized:        unauthorized,
		requestTimeout:      requestTimeout,
		deletionTimeoutStep: deletionTimeoutStep,
		uuids:               utils.NewUUIDGenerator(),
		logger:              logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func shouldRetry(resp *resty.Response, err error) bool {
	if resp != nil && resp.Request != nil && utils.RetryDisabled(resp.Request.Context()) {
		return false
	}
	if err != nil {
		return true
	}
	return resp != nil && resp.StatusCode() >= http.StatusInternalServerError
}

// HealthCheck implements [ServerAPI].
func (h *httpServerAPI) HealthCheck(ctx context.Context) (models.HealthCheckResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	var out models.HealthCheckResponse
	resp, err := h.request(ctx, nil).Execute(EndpointHealthCheck.Method, EndpointHealthCheck.Path)
	if err = h.classify(ctx, EndpointHealthCheck, resp, err); err != nil {
		return out, err
	}

	return out, decodeBody(EndpointHealthCheck, resp, &out)
}

// AddUser implements [ServerAPI].
func (h *httpServerAPI) AddUser(ctx context.Context, cloudFolderName string) (AddUserResult, error) {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	values := url.Values{}
	if cloudFolderName != "" {
		values.Set(models.KeyCloudFolderName, cloudFolderName)
	}

	resp, err := h.request(ctx, values).Execute(EndpointAddUser.Method, EndpointAddUser.Path)
	if err = h.classify(ctx, EndpointAddUser, resp, err); err != nil {
		return AddUserResult{}, err
	}

	var out models.AddUserResponse
	if err = decodeBody(EndpointAddUser, resp, &out); err != nil || out.UserID == nil || out.SharingGroupID == nil {
		return AddUserResult{}, fmt.Errorf("%s: %w", EndpointAddUser.Name, ErrBadAddUser)
	}

	return AddUserResult{UserID: *out.UserID, SharingGroupID: *out.SharingGroupID}, nil
}

// CheckCreds implements [ServerAPI].
func (h *httpServerAPI) CheckCreds(ctx context.Context) (CheckCredsResult, error) {
	ctx, cancel := context.WithTimeout(utils.WithoutRetry(ctx), h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, nil).Execute(EndpointCheckCreds.Method, EndpointCheckCreds.Path)
	if err == nil && resp.StatusCode() == http.StatusUnauthorized {
		return CheckCredsResult{NoUser: true}, nil
	}
	if err = h.classify(ctx, EndpointCheckCreds, resp, err); err != nil {
		return CheckCredsResult{}, err
	}

	var out models.CheckCredsResponse
	if err = decodeBody(EndpointCheckCreds, resp, &out); err != nil || out.UserID == nil || out.Permission == nil || !out.Permission.Valid() {
		return CheckCredsResult{}, fmt.Errorf("%s: %w", EndpointCheckCreds.Name, ErrBadCheckCreds)
	}

	return CheckCredsResult{User: models.User{
		UserID:      *out.UserID,
		Permission:  *out.Permission,
		AccessToken: out.AccessToken,
	}}, nil
}

// RemoveUser implements [ServerAPI].
func (h *httpServerAPI) RemoveUser(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, nil).Execute(EndpointRemoveUser.Method, EndpointRemoveUser.Path)
	return h.classify(ctx, EndpointRemoveUser, resp, err)
}

// GetSharingGroups implements [ServerAPI].
func (h *httpServerAPI) GetSharingGroups(ctx context.Context) ([]models.SharingGroupID, error) {
	ctx, cancel := context.WithTimeout(utils.WithoutRetry(ctx), h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, nil).Execute(EndpointGetSharingGroups.Method, EndpointGetSharingGroups.Path)
	if err = h.classify(ctx, EndpointGetSharingGroups, resp, err); err != nil {
		return nil, err
	}

	var out models.GetSharingGroupsResponse
	if err = decodeBody(EndpointGetSharingGroups, resp, &out); err != nil || out.SharingGroupIDs == nil {
		return nil, fmt.Errorf("%s: %w", EndpointGetSharingGroups.Name, ErrUnknownServerError)
	}

	return out.SharingGroupIDs, nil
}

// FileIndex implements [ServerAPI].
func (h *httpServerAPI) FileIndex(ctx context.Context, sharingGroupID models.SharingGroupID) (FileIndexResult, error) {
	if err := validateSharingGroup(sharingGroupID); err != nil {
		return FileIndexResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, sharingGroupValues(sharingGroupID)).Execute(EndpointFileIndex.Method, EndpointFileIndex.Path)
	if err = h.classify(ctx, EndpointFileIndex, resp, err); err != nil {
		return FileIndexResult{}, err
	}

	var out models.FileIndexResponse
	if err = decodeBody(EndpointFileIndex, resp, &out); err != nil {
		return FileIndexResult{}, err
	}
	if out.MasterVersion == nil {
		return FileIndexResult{}, fmt.Errorf("%s: %w", EndpointFileIndex.Name, ErrNoExpectedResultKey)
	}

	return FileIndexResult{Files: out.FileIndex, MasterVersion: *out.MasterVersion}, nil
}

// UploadFile implements [ServerAPI].
func (h *httpServerAPI) UploadFile(ctx context.Context, params UploadFileParams) (UploadFileResult, error) {
	if err := params.validate(); err != nil {
		return UploadFileResult{}, err
	}

	content, err := os.ReadFile(params.LocalPath)
	if err != nil {
		return UploadFileResult{}, fmt.Errorf("%w: read %s: %w", ErrCouldNotCreateRequest, params.LocalPath, err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, params.values()).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(content).
		Execute(EndpointUploadFile.Method, EndpointUploadFile.Path)
	if err = h.classify(ctx, EndpointUploadFile, resp, err); err != nil {
		return UploadFileResult{}, err
	}

	var out models.UploadFileResponse
	if err = decodeHeader(EndpointUploadFile, resp, &out); err != nil {
		return UploadFileResult{}, err
	}
	if out.MasterVersionUpdate != nil {
		return UploadFileResult{MasterVersionUpdate: out.MasterVersionUpdate}, nil
	}
	if out.Size == nil || out.CreationDate == nil || out.UpdateDate == nil {
		return UploadFileResult{}, fmt.Errorf("%s: %w", EndpointUploadFile.Name, ErrNoExpectedResultKey)
	}

	return UploadFileResult{Uploaded: &UploadedFile{
		SizeBytes:    *out.Size,
		CreationDate: *out.CreationDate,
		UpdateDate:   *out.UpdateDate,
	}}, nil
}

// DoneUploads implements [ServerAPI].
func (h *httpServerAPI) DoneUploads(ctx context.Context, params DoneUploadsParams) (DoneUploadsResult, error) {
	if err := params.validate(); err != nil {
		return DoneUploadsResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.doneUploadsTimeout(params.NumberOfDeletions))
	defer cancel()

	resp, err := h.request(ctx, params.values()).Execute(EndpointDoneUploads.Method, EndpointDoneUploads.Path)
	if err = h.classify(ctx, EndpointDoneUploads, resp, err); err != nil {
		return DoneUploadsResult{}, err
	}

	var out models.DoneUploadsResponse
	if err = decodeBody(EndpointDoneUploads, resp, &out); err != nil {
		return DoneUploadsResult{}, err
	}
	if out.MasterVersionUpdate != nil {
		return DoneUploadsResult{MasterVersionUpdate: out.MasterVersionUpdate}, nil
	}
	if out.NumberUploadsTransferred == nil {
		return DoneUploadsResult{}, fmt.Errorf("%s: %w", EndpointDoneUploads.Name, ErrNoExpectedResultKey)
	}

	return DoneUploadsResult{NumberUploadsTransferred: out.NumberUploadsTransferred}, nil
}

func (h *httpServerAPI) doneUploadsTimeout(numberOfDeletions uint) time.Duration {
	return h.requestTimeout + time.Duration(numberOfDeletions)*h.deletionTimeoutStep
}

// DownloadFile implements [ServerAPI]. The body is streamed into a
// temporary file in params.DestDir which is renamed to
// "<fileUUID>.v<fileVersion>" once the response is classified as a
// download. Any other outcome removes it.
func (h *httpServerAPI) DownloadFile(ctx context.Context, params DownloadFileParams) (DownloadFileResult, error) {
	if err := params.validate(); err != nil {
		return DownloadFileResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	tmpPath := filepath.Join(params.DestDir, h.uuids.Generate()+".download")
	defer os.Remove(tmpPath)

	resp, err := h.request(ctx, params.values()).
		SetOutput(tmpPath).
		Execute(EndpointDownloadFile.Method, EndpointDownloadFile.Path)
	if err = h.classify(ctx, EndpointDownloadFile, resp, err); err != nil {
		return DownloadFileResult{}, err
	}

	var out models.DownloadFileResponse
	if err = decodeHeader(EndpointDownloadFile, resp, &out); err != nil {
		return DownloadFileResult{}, err
	}
	if out.MasterVersionUpdate != nil {
		return DownloadFileResult{MasterVersionUpdate: out.MasterVersionUpdate}, nil
	}
	if out.FileSizeBytes == nil {
		return DownloadFileResult{}, fmt.Errorf("%s: %w", EndpointDownloadFile.Name, ErrNoExpectedResultKey)
	}

	localPath := filepath.Join(params.DestDir, fmt.Sprintf("%s.v%d", params.FileUUID, params.FileVersion))
	if err = os.Rename(tmpPath, localPath); err != nil {
		return DownloadFileResult{}, fmt.Errorf("%s: store downloaded file: %w", EndpointDownloadFile.Name, err)
	}

	return DownloadFileResult{Downloaded: &DownloadedFile{
		LocalPath:     localPath,
		FileSizeBytes: *out.FileSizeBytes,
		AppMetaData:   out.AppMetaData,
	}}, nil
}

// GetUploads implements [ServerAPI].
func (h *httpServerAPI) GetUploads(ctx context.Context, sharingGroupID models.SharingGroupID) ([]models.FileInfo, error) {
	if err := validateSharingGroup(sharingGroupID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, sharingGroupValues(sharingGroupID)).Execute(EndpointGetUploads.Method, EndpointGetUploads.Path)
	if err = h.classify(ctx, EndpointGetUploads, resp, err); err != nil {
		return nil, err
	}

	var out models.GetUploadsResponse
	if err = decodeBody(EndpointGetUploads, resp, &out); err != nil {
		return nil, err
	}

	return out.Uploads, nil
}

// UploadDeletion implements [ServerAPI].
func (h *httpServerAPI) UploadDeletion(ctx context.Context, params UploadDeletionParams) (UploadDeletionResult, error) {
	if err := params.validate(); err != nil {
		return UploadDeletionResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, params.values()).Execute(EndpointUploadDeletion.Method, EndpointUploadDeletion.Path)
	if err = h.classify(ctx, EndpointUploadDeletion, resp, err); err != nil {
		return UploadDeletionResult{}, err
	}

	var out models.UploadDeletionResponse
	if err = decodeBody(EndpointUploadDeletion, resp, &out); err != nil {
		return UploadDeletionResult{}, err
	}

	return UploadDeletionResult{MasterVersionUpdate: out.MasterVersionUpdate}, nil
}

// UploadAppMetaData implements [ServerAPI].
func (h *httpServerAPI) UploadAppMetaData(ctx context.Context, params UploadAppMetaDataParams) (UploadAppMetaDataResult, error) {
	if err := params.validate(); err != nil {
		return UploadAppMetaDataResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, params.values()).Execute(EndpointUploadAppMetaData.Method, EndpointUploadAppMetaData.Path)
	if err = h.classify(ctx, EndpointUploadAppMetaData, resp, err); err != nil {
		return UploadAppMetaDataResult{}, err
	}

	var out models.UploadAppMetaDataResponse
	if err = decodeBody(EndpointUploadAppMetaData, resp, &out); err != nil {
		return UploadAppMetaDataResult{}, err
	}

	return UploadAppMetaDataResult{MasterVersionUpdate: out.MasterVersionUpdate}, nil
}

// DownloadAppMetaData implements [ServerAPI].
func (h *httpServerAPI) DownloadAppMetaData(ctx context.Context, params DownloadAppMetaDataParams) (DownloadAppMetaDataResult, error) {
	if err := params.validate(); err != nil {
		return DownloadAppMetaDataResult{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	resp, err := h.request(ctx, params.values()).Execute(EndpointDownloadAppMetaData.Method, EndpointDownloadAppMetaData.Path)
	if err = h.classify(ctx, EndpointDownloadAppMetaData, resp, err); err != nil {
		return DownloadAppMetaDataResult{}, err
	}

	var out models.DownloadAppMetaDataResponse
	if err = decodeBody(EndpointDownloadAppMetaData, resp, &out); err != nil {
		return DownloadAppMetaDataResult{}, err
	}
	if out.MasterVersionUpdate != nil {
		return DownloadAppMetaDataResult{MasterVersionUpdate: out.MasterVersionUpdate}, nil
	}
	if out.AppMetaData == nil {
		return DownloadAppMetaDataResult{}, fmt.Errorf("%s: %w", EndpointDownloadAppMetaData.Name, ErrNoExpectedResultKey)
	}

	return DownloadAppMetaDataResult{AppMetaData: out.AppMetaData}, nil
}

// CreateSharingInvitation implements [ServerAPI].
func (h *httpServerAPI) CreateSharingInvitation(ctx context.Context, permission models.Permission, sharingGroupID models.SharingGroupID) (string, error) {
	if !permission.Valid() {
		return "", invalidParam("permission", string(permission))
	}
	if err := validateSharingGroup(sharingGroupID); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	values := sharingGroupValues(sharingGroupID)
	values.Set(models.KeyPermission, string(permission))

	resp, err := h.request(ctx, values).Execute(EndpointCreateSharingInvitation.Method, EndpointCreateSharingInvitation.Path)
	if err = h.classify(ctx, EndpointCreateSharingInvitation, resp, err); err != nil {
		return "", err
	}

	var out models.CreateSharingInvitationResponse
	if err = decodeBody(EndpointCreateSharingInvitation, resp, &out); err != nil {
		return "", err
	}
	if out.SharingInvitationUUID == "" {
		return "", fmt.Errorf("%s: %w", EndpointCreateSharingInvitation.Name, ErrCouldNotCreateResponse)
	}

	return out.SharingInvitationUUID, nil
}

// RedeemSharingInvitation implements [ServerAPI].
func (h *httpServerAPI) RedeemSharingInvitation(ctx context.Context, invitationUUID, cloudFolderName string) (RedeemResult, error) {
	if !utils.IsUUID(invitationUUID) {
		return RedeemResult{}, invalidParam("sharing invitation UUID", invitationUUID)
	}

	ctx, cancel := context.WithTimeout(ctx, h.requestTimeout)
	defer cancel()

	values := url.Values{}
	values.Set(models.KeySharingInvitationUUID, invitationUUID)
	if cloudFolderName != "" {
		values.Set(models.KeyCloudFolderName, cloudFolderName)
	}

	resp, err := h.request(ctx, values).Execute(EndpointRedeemSharingInvitation.Method, EndpointRedeemSharingInvitation.Path)
	if err = h.classify(ctx, EndpointRedeemSharingInvitation, resp, err); err != nil {
		return RedeemResult{}, err
	}

	var out models.RedeemSharingInvitationResponse
	if err = decodeBody(EndpointRedeemSharingInvitation, resp, &out); err != nil {
		return RedeemResult{}, err
	}
	if out.SharingGroupID == nil {
		return RedeemResult{}, fmt.Errorf("%s: %w", EndpointRedeemSharingInvitation.Name, ErrCouldNotCreateResponse)
	}

	return RedeemResult{SharingGroupID: *out.SharingGroupID, AccessToken: out.AccessToken}, nil
}

// request builds a request carrying a fresh header snapshot and the
// URL-encoded values.
func (h *httpServerAPI) request(ctx context.Context, values url.Values) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.headers != nil {
		req.SetHeaders(h.headers.Headers())
	}
	if len(values) > 0 {
		req.SetQueryParamsFromValues(values)
	}
	return req
}

// classify maps a transport outcome to nil for 200 or to an error.
func (h *httpServerAPI) classify(ctx context.Context, ep Endpoint, resp *resty.Response, err error) error {
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "httpServerAPI.classify").Str("endpoint", ep.Name).Msg("request failed without response")
		return fmt.Errorf("%s: %w: %w", ep.Name, ErrNilResponse, err)
	}
	if resp == nil || resp.RawResponse == nil {
		return fmt.Errorf("%s: %w", ep.Name, ErrNilResponse)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized:
		h.logger.Warn().Str("func", "httpServerAPI.classify").Str("endpoint", ep.Name).Msg("server answered unauthorized")
		if h.unauthorized != nil {
			h.unauthorized.UserWasUnauthorized(ctx)
		}
		return fmt.Errorf("%s: %w", ep.Name, ErrUnauthorized)
	case code == http.StatusGone && ep == EndpointUploadFile:
		return fmt.Errorf("%s: %w", ep.Name, ErrInvitingUserRemoved)
	default:
		h.logger.Debug().Str("func", "httpServerAPI.classify").Str("endpoint", ep.Name).Int("status", code).Msg("unexpected status code")
		return fmt.Errorf("%s: %w", ep.Name, &StatusError{Code: code, Body: strings.TrimSpace(string(resp.Body()))})
	}
}

func decodeBody(ep Endpoint, resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%s: %w: %w", ep.Name, ErrCouldNotCreateResponse, err)
	}
	return nil
}

// decodeHeader reads the JSON response of endpoints that return file
// content in the body.
func decodeHeader(ep Endpoint, resp *resty.Response, v any) error {
	raw := resp.Header().Get(models.HeaderMessageParams)
	if raw == "" {
		return fmt.Errorf("%s: %w", ep.Name, ErrCouldNotObtainHeaderParameters)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%s: %w: %w", ep.Name, ErrCouldNotObtainHeaderParameters, err)
	}
	return nil
}
