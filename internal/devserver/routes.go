package devserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
)

// Init builds the router. Paths and methods come from the protocol client
// endpoint catalog, so both sides always agree on them.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		route(r, adapter.EndpointHealthCheck, h.healthCheck)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withDevice, h.withAccessToken)

		// the token may not belong to an account yet
		route(r, adapter.EndpointAddUser, h.addUser)
		route(r, adapter.EndpointRedeemSharingInvitation, h.redeemSharingInvitation)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			route(r, adapter.EndpointCheckCreds, h.checkCreds)
			route(r, adapter.EndpointRemoveUser, h.removeUser)
			route(r, adapter.EndpointGetSharingGroups, h.getSharingGroups)
			route(r, adapter.EndpointCreateSharingInvitation, h.createSharingInvitation)

			route(r, adapter.EndpointFileIndex, h.fileIndex)
			route(r, adapter.EndpointUploadFile, h.uploadFile)
			route(r, adapter.EndpointDoneUploads, h.doneUploads)
			route(r, adapter.EndpointDownloadFile, h.downloadFile)
			route(r, adapter.EndpointGetUploads, h.getUploads)
			route(r, adapter.EndpointUploadDeletion, h.uploadDeletion)
			route(r, adapter.EndpointUploadAppMetaData, h.uploadAppMetaData)
			route(r, adapter.EndpointDownloadAppMetaData, h.downloadAppMetaData)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func route(r chi.Router, ep adapter.Endpoint, fn http.HandlerFunc) {
	r.Method(ep.Method, "/"+ep.Path, fn)
}
