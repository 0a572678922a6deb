package adapter

import "net/http"

// Endpoint describes one remote operation of the sync server.
type Endpoint struct {
	Name   string
	Path   string
	Method string
}

var (
	EndpointHealthCheck             = Endpoint{Name: "healthCheck", Path: "HealthCheck/", Method: http.MethodGet}
	EndpointAddUser                 = Endpoint{Name: "addUser", Path: "AddUser/", Method: http.MethodPost}
	EndpointCheckCreds              = Endpoint{Name: "checkCreds", Path: "CheckCreds/", Method: http.MethodGet}
	EndpointRemoveUser              = Endpoint{Name: "removeUser", Path: "RemoveUser/", Method: http.MethodPost}
	EndpointGetSharingGroups        = Endpoint{Name: "getSharingGroups", Path: "GetSharingGroups/", Method: http.MethodGet}
	EndpointFileIndex               = Endpoint{Name: "fileIndex", Path: "FileIndex/", Method: http.MethodGet}
	EndpointUploadFile              = Endpoint{Name: "uploadFile", Path: "UploadFile/", Method: http.MethodPost}
	EndpointDoneUploads             = Endpoint{Name: "doneUploads", Path: "DoneUploads/", Method: http.MethodPost}
	EndpointDownloadFile            = Endpoint{Name: "downloadFile", Path: "DownloadFile/", Method: http.MethodGet}
	EndpointGetUploads              = Endpoint{Name: "getUploads", Path: "GetUploads/", Method: http.MethodGet}
	EndpointUploadDeletion          = Endpoint{Name: "uploadDeletion", Path: "UploadDeletion/", Method: http.MethodDelete}
	EndpointUploadAppMetaData       = Endpoint{Name: "uploadAppMetaData", Path: "UploadAppMetaData/", Method: http.MethodPost}
	EndpointDownloadAppMetaData     = Endpoint{Name: "downloadAppMetaData", Path: "DownloadAppMetaData/", Method: http.MethodGet}
	EndpointCreateSharingInvitation = Endpoint{Name: "createSharingInvitation", Path: "CreateSharingInvitation/", Method: http.MethodPost}
	EndpointRedeemSharingInvitation = Endpoint{Name: "redeemSharingInvitation", Path: "RedeemSharingInvitation/", Method: http.MethodPost}
)

// Endpoints returns the full catalog in a stable order.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointHealthCheck,
		EndpointAddUser,
		EndpointCheckCreds,
		EndpointRemoveUser,
		EndpointGetSharingGroups,
		EndpointFileIndex,
		EndpointUploadFile,
		EndpointDoneUploads,
		EndpointDownloadFile,
		EndpointGetUploads,
		EndpointUploadDeletion,
		EndpointUploadAppMetaData,
		EndpointDownloadAppMetaData,
		EndpointCreateSharingInvitation,
		EndpointRedeemSharingInvitation,
	}
}
