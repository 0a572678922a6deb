package devserver

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-sync-client/internal/utils"
	"github.com/MKhiriev/go-sync-client/models"
)

type account struct {
	id              int64
	token           string
	cloudFolderName string
}

type storedFile struct {
	info        models.FileInfo
	content     []byte
	appMetaData *string
}

// stagedUpload is an upload, deletion or app meta data change waiting for
// DoneUploads of the device that sent it.
type stagedUpload struct {
	operation      models.Operation
	info           models.FileInfo
	content        []byte
	appMetaData    *string
	undelete       bool
	actualDeletion bool
}

type sharingGroup struct {
	id            models.SharingGroupID
	masterVersion models.MasterVersion
	files         map[string]*storedFile
	members       map[int64]models.Permission
	staged        map[string][]stagedUpload
}

type invitation struct {
	sharingGroupID models.SharingGroupID
	permission     models.Permission
}

// state is the whole server. Every method takes the mutex, so handlers
// never see a half applied DoneUploads.
type state struct {
	mu sync.Mutex

	nextUserID  int64
	nextGroupID models.SharingGroupID

	accounts    map[int64]*account
	byToken     map[string]int64
	groups      map[models.SharingGroupID]*sharingGroup
	invitations map[string]invitation

	uuids *utils.UUIDGenerator
	now   func() time.Time
}

func newState() *state {
	return &state{
		accounts:    make(map[int64]*account),
		byToken:     make(map[string]int64),
		groups:      make(map[models.SharingGroupID]*sharingGroup),
		invitations: make(map[string]invitation),
		uuids:       utils.NewUUIDGenerator(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *state) userByToken(token string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byToken[token]
	return id, ok
}

// accountToken returns the provider token the account was created with.
func (s *state) accountToken(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.accounts[userID]; ok {
		return a.token
	}
	return ""
}

func (s *state) userExists(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.accounts[userID]
	return ok
}

// addUser creates an owning account together with its first sharing group.
func (s *state) addUser(token, cloudFolderName string) (int64, models.SharingGroupID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byToken[token]; ok {
		return 0, 0, ErrUserExists
	}

	userID := s.createAccountLocked(token, cloudFolderName)
	sg := s.createGroupLocked()
	sg.members[userID] = models.PermissionAdmin

	return userID, sg.id, nil
}

func (s *state) createAccountLocked(token, cloudFolderName string) int64 {
	s.nextUserID++
	a := &account{id: s.nextUserID, token: token, cloudFolderName: cloudFolderName}
	s.accounts[a.id] = a
	s.byToken[token] = a.id

	return a.id
}

func (s *state) createGroupLocked() *sharingGroup {
	s.nextGroupID++
	sg := &sharingGroup{
		id:      s.nextGroupID,
		files:   make(map[string]*storedFile),
		members: make(map[int64]models.Permission),
		staged:  make(map[string][]stagedUpload),
	}
	s.groups[sg.id] = sg

	return sg
}

// permission returns the strongest permission the user holds in any group.
func (s *state) permission(userID int64) (models.Permission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[userID]; !ok {
		return "", ErrUnknownUser
	}

	best := models.PermissionRead
	for _, sg := range s.groups {
		if p, ok := sg.members[userID]; ok && rank(p) > rank(best) {
			best = p
		}
	}

	return best, nil
}

func rank(p models.Permission) int {
	switch p {
	case models.PermissionAdmin:
		return 2
	case models.PermissionWrite:
		return 1
	}
	return 0
}

func (s *state) removeUser(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[userID]
	if !ok {
		return ErrUnknownUser
	}

	for _, sg := range s.groups {
		delete(sg.members, userID)
	}
	delete(s.byToken, a.token)
	delete(s.accounts, userID)

	return nil
}

func (s *state) sharingGroups(userID int64) []models.SharingGroupID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]models.SharingGroupID, 0)
	for id, sg := range s.groups {
		if _, ok := sg.members[userID]; ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return ids
}

// memberGroupLocked returns the group if userID belongs to it.
func (s *state) memberGroupLocked(userID int64, id models.SharingGroupID) (*sharingGroup, models.Permission, error) {
	sg, ok := s.groups[id]
	if !ok {
		return nil, "", ErrSharingGroupUnknown
	}
	p, ok := sg.members[userID]
	if !ok {
		return nil, "", ErrNotAMember
	}

	return sg, p, nil
}

func (sg *sharingGroup) hasOwner() bool {
	for _, p := range sg.members {
		if p == models.PermissionAdmin {
			return true
		}
	}
	return false
}

// stale returns the group master version when it differs from mv.
func (sg *sharingGroup) stale(mv models.MasterVersion) *models.MasterVersion {
	if mv == sg.masterVersion {
		return nil
	}
	current := sg.masterVersion
	return &current
}

func (s *state) fileIndex(userID int64, id models.SharingGroupID) ([]models.FileInfo, models.MasterVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, _, err := s.memberGroupLocked(userID, id)
	if err != nil {
		return nil, 0, err
	}

	index := make([]models.FileInfo, 0, len(sg.files))
	for _, f := range sg.files {
		index = append(index, f.info)
	}
	slices.SortFunc(index, func(a, b models.FileInfo) int { return cmp.Compare(a.FileUUID, b.FileUUID) })

	return index, sg.masterVersion, nil
}

// stage validates u against the committed state of the group and keeps it
// until DoneUploads. A stale master version is returned instead of an error.
func (s *state) stage(userID int64, deviceUUID string, mv models.MasterVersion, u stagedUpload) (*models.MasterVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, perm, err := s.memberGroupLocked(userID, u.info.SharingGroupID)
	if err != nil {
		return nil, err
	}
	if perm == models.PermissionRead {
		return nil, ErrPermissionDenied
	}
	if mvu := sg.stale(mv); mvu != nil {
		return mvu, nil
	}

	existing := sg.files[u.info.FileUUID]
	switch u.operation {
	case models.OperationFile:
		if !sg.hasOwner() {
			return nil, ErrNoOwningUser
		}
		if err = checkFileUpload(existing, u); err != nil {
			return nil, err
		}
	case models.OperationDeletion:
		if existing == nil {
			return nil, ErrFileNotFound
		}
		if existing.info.Deleted {
			return nil, ErrFileDeleted
		}
		if existing.info.FileVersion != u.info.FileVersion {
			return nil, ErrVersionConflict
		}
	case models.OperationAppMetaData:
		if existing == nil {
			return nil, ErrFileNotFound
		}
		if !nextMetaDataVersion(existing.info.AppMetaDataVersion, u.info.AppMetaDataVersion) {
			return nil, ErrVersionConflict
		}
	}

	staged := slices.DeleteFunc(sg.staged[deviceUUID], func(p stagedUpload) bool {
		return p.info.FileUUID == u.info.FileUUID && p.operation == u.operation
	})
	sg.staged[deviceUUID] = append(staged, u)

	return nil, nil
}

func checkFileUpload(existing *storedFile, u stagedUpload) error {
	if existing == nil {
		if u.info.FileVersion != 0 {
			return ErrVersionConflict
		}
		return nil
	}

	if existing.info.Deleted && !u.undelete {
		return ErrFileDeleted
	}
	if u.info.FileVersion != existing.info.FileVersion+1 {
		return ErrVersionConflict
	}
	if u.info.AppMetaDataVersion != nil && !nextMetaDataVersion(existing.info.AppMetaDataVersion, u.info.AppMetaDataVersion) {
		return ErrVersionConflict
	}

	return nil
}

func nextMetaDataVersion(current, next *models.AppMetaDataVersion) bool {
	if next == nil {
		return false
	}
	if current == nil {
		return *next == 0
	}
	return *next == *current+1
}

// doneUploads commits the staged changes of the device and advances the
// master version of the group.
func (s *state) doneUploads(userID int64, deviceUUID string, id models.SharingGroupID, mv models.MasterVersion) (int64, *models.MasterVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, perm, err := s.memberGroupLocked(userID, id)
	if err != nil {
		return 0, nil, err
	}
	if perm == models.PermissionRead {
		return 0, nil, ErrPermissionDenied
	}
	if mvu := sg.stale(mv); mvu != nil {
		return 0, mvu, nil
	}

	now := s.now()
	staged := sg.staged[deviceUUID]
	for _, u := range staged {
		sg.apply(deviceUUID, u, now)
	}
	delete(sg.staged, deviceUUID)
	sg.masterVersion++

	return int64(len(staged)), nil, nil
}

func (sg *sharingGroup) apply(deviceUUID string, u stagedUpload, now time.Time) {
	f := sg.files[u.info.FileUUID]

	switch u.operation {
	case models.OperationFile:
		info := u.info
		info.Deleted = false
		info.DeviceUUID = deviceUUID
		info.UpdateDate = &now
		info.CreationDate = &now
		if f != nil && f.info.CreationDate != nil {
			info.CreationDate = f.info.CreationDate
		}
		appMetaData := u.appMetaData
		if appMetaData == nil && f != nil {
			appMetaData = f.appMetaData
			info.AppMetaDataVersion = f.info.AppMetaDataVersion
		}
		sg.files[info.FileUUID] = &storedFile{info: info, content: u.content, appMetaData: appMetaData}
	case models.OperationDeletion:
		if u.actualDeletion || f == nil {
			delete(sg.files, u.info.FileUUID)
			return
		}
		f.info.Deleted = true
		f.info.UpdateDate = &now
		f.content = nil
	case models.OperationAppMetaData:
		if f == nil {
			return
		}
		f.appMetaData = u.appMetaData
		f.info.AppMetaDataVersion = u.info.AppMetaDataVersion
		f.info.UpdateDate = &now
	}
}

func (s *state) uploads(userID int64, deviceUUID string, id models.SharingGroupID) ([]models.FileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, _, err := s.memberGroupLocked(userID, id)
	if err != nil {
		return nil, err
	}

	infos := make([]models.FileInfo, 0, len(sg.staged[deviceUUID]))
	for _, u := range sg.staged[deviceUUID] {
		info := u.info
		info.DeviceUUID = deviceUUID
		info.Deleted = u.operation == models.OperationDeletion
		infos = append(infos, info)
	}

	return infos, nil
}

// file returns a copy of a committed, not deleted file at version fv.
func (s *state) file(userID int64, id models.SharingGroupID, mv models.MasterVersion, fileUUID string, fv models.FileVersion) (storedFile, *models.MasterVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, _, err := s.memberGroupLocked(userID, id)
	if err != nil {
		return storedFile{}, nil, err
	}
	if mvu := sg.stale(mv); mvu != nil {
		return storedFile{}, mvu, nil
	}

	f, ok := sg.files[fileUUID]
	if !ok {
		return storedFile{}, nil, ErrFileNotFound
	}
	if f.info.Deleted {
		return storedFile{}, nil, ErrFileDeleted
	}
	if f.info.FileVersion != fv {
		return storedFile{}, nil, ErrVersionConflict
	}

	return *f, nil, nil
}

// appMetaData returns the meta data of a file at version v.
func (s *state) appMetaData(userID int64, id models.SharingGroupID, mv models.MasterVersion, fileUUID string, v models.AppMetaDataVersion) (*string, *models.MasterVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, _, err := s.memberGroupLocked(userID, id)
	if err != nil {
		return nil, nil, err
	}
	if mvu := sg.stale(mv); mvu != nil {
		return nil, mvu, nil
	}

	f, ok := sg.files[fileUUID]
	if !ok || f.appMetaData == nil {
		return nil, nil, ErrFileNotFound
	}
	if f.info.AppMetaDataVersion == nil || *f.info.AppMetaDataVersion != v {
		return nil, nil, ErrVersionConflict
	}

	meta := *f.appMetaData
	return &meta, nil, nil
}

func (s *state) createInvitation(userID int64, id models.SharingGroupID, permission models.Permission) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, perm, err := s.memberGroupLocked(userID, id)
	if err != nil {
		return "", err
	}
	if perm != models.PermissionAdmin {
		return "", ErrPermissionDenied
	}

	code := s.uuids.Generate()
	s.invitations[code] = invitation{sharingGroupID: id, permission: permission}

	return code, nil
}

// redeem consumes the invitation. Tokens without an account get one.
func (s *state) redeem(token, cloudFolderName, code string) (int64, models.SharingGroupID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invitations[code]
	if !ok {
		return 0, 0, ErrInvitationNotFound
	}
	sg, ok := s.groups[inv.sharingGroupID]
	if !ok {
		return 0, 0, ErrSharingGroupUnknown
	}

	userID, ok := s.byToken[token]
	if !ok {
		userID = s.createAccountLocked(token, cloudFolderName)
	}
	if rank(inv.permission) > rank(sg.members[userID]) || sg.members[userID] == "" {
		sg.members[userID] = inv.permission
	}
	delete(s.invitations, code)

	return userID, sg.id, nil
}
