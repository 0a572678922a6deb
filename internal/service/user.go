package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/internal/events"
	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/internal/store"
	"github.com/MKhiriev/go-sync-client/models"
)

// SettingSharingGroups is the settings key of the stored sharing group ids.
const SettingSharingGroups = "sharing_group_ids"

type userService struct {
	api      adapter.ServerAPI
	settings store.SettingsRepository
	tokens   AccessTokenHolder
	reporter events.Reporter
	desired  events.Desired
	logger   *logger.Logger
}

func NewUserService(
	api adapter.ServerAPI,
	settings store.SettingsRepository,
	tokens AccessTokenHolder,
	reporter events.Reporter,
	desired events.Desired,
	logger *logger.Logger,
) UserService {
	return &userService{
		api:      api,
		settings: settings,
		tokens:   tokens,
		reporter: reporter,
		desired:  desired,
		logger:   logger,
	}
}

// CheckForExistingUser implements UserService. A long-lived token handed out
// by the server replaces the configured one.
func (s *userService) CheckForExistingUser(ctx context.Context) (adapter.CheckCredsResult, error) {
	res, err := s.api.CheckCreds(ctx)
	if err != nil {
		return adapter.CheckCredsResult{}, err
	}

	if !res.NoUser && res.User.AccessToken != "" {
		s.tokens.SetAccessToken("", res.User.AccessToken)
	}

	return res, nil
}

func (s *userService) AddUser(ctx context.Context, cloudFolderName string) (adapter.AddUserResult, error) {
	res, err := s.api.AddUser(ctx, cloudFolderName)
	if err != nil {
		return adapter.AddUserResult{}, err
	}

	if err = s.storeSharingGroups(ctx, []models.SharingGroupID{res.SharingGroupID}); err != nil {
		return adapter.AddUserResult{}, err
	}

	return res, nil
}

// RemoveUser implements UserService. Local credentials are dropped even
// though the stored directory is kept.
func (s *userService) RemoveUser(ctx context.Context) error {
	if err := s.api.RemoveUser(ctx); err != nil {
		return err
	}

	s.tokens.Clear()
	return s.storeSharingGroups(ctx, nil)
}

func (s *userService) SetupSharingGroups(ctx context.Context) ([]models.SharingGroupID, error) {
	ids, err := s.api.GetSharingGroups(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ErrNoSharingGroups
	}

	if err = s.storeSharingGroups(ctx, ids); err != nil {
		return nil, err
	}

	events.Report(events.HaveSharingGroupIDs(ids), s.desired, s.reporter)
	return ids, nil
}

func (s *userService) SharingGroups(ctx context.Context) ([]models.SharingGroupID, error) {
	raw, err := s.settings.GetSetting(ctx, SettingSharingGroups)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoSharingGroups
	}
	if err != nil {
		return nil, err
	}

	var ids []models.SharingGroupID
	if err = json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Err(err).Str("func", "userService.SharingGroups").Msg("stored sharing groups are corrupt")
		return nil, fmt.Errorf("%w: %w", ErrInternalInconsistency, err)
	}
	if len(ids) == 0 {
		return nil, ErrNoSharingGroups
	}

	return ids, nil
}

func (s *userService) storeSharingGroups(ctx context.Context, ids []models.SharingGroupID) error {
	if ids == nil {
		ids = []models.SharingGroupID{}
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	return s.settings.SetSetting(ctx, SettingSharingGroups, string(raw))
}

func (s *userService) CreateSharingInvitation(ctx context.Context, permission models.Permission, sharingGroupID models.SharingGroupID) (string, error) {
	if !permission.Valid() {
		return "", fmt.Errorf("%w: permission %q", ErrInvalidDataProvided, permission)
	}
	return s.api.CreateSharingInvitation(ctx, permission, sharingGroupID)
}

// RedeemSharingInvitation implements UserService. The redeemed sharing group
// is added to the stored ones.
func (s *userService) RedeemSharingInvitation(ctx context.Context, invitationUUID, cloudFolderName string) (adapter.RedeemResult, error) {
	res, err := s.api.RedeemSharingInvitation(ctx, invitationUUID, cloudFolderName)
	if err != nil {
		return adapter.RedeemResult{}, err
	}

	if res.AccessToken != "" {
		s.tokens.SetAccessToken("", res.AccessToken)
	}

	ids, err := s.SharingGroups(ctx)
	if err != nil && !errors.Is(err, ErrNoSharingGroups) {
		return adapter.RedeemResult{}, err
	}
	for _, id := range ids {
		if id == res.SharingGroupID {
			return res, nil
		}
	}

	if err = s.storeSharingGroups(ctx, append(ids, res.SharingGroupID)); err != nil {
		return adapter.RedeemResult{}, err
	}

	return res, nil
}
