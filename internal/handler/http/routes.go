package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getVersion)

	// kept on the root mux: a mounted sub-router answers Match for every
	// method, which would break the Allow header
	router.Get("/api/clients/", h.listClients)
	router.Get("/api/clients/{serviceKey}", h.getClient)
	router.Post("/api/clients/{serviceKey}/probe", h.probeClient)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
