package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/internal/utils"
	"github.com/MKhiriev/go-web-api-sdk/models"
	"github.com/go-chi/chi/v5"
)

const defaultProbePath = "/"

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients := h.services.ClientService.Clients(r.Context())

	utils.WriteJSON(w, models.ClientsResponse{Clients: clients, Length: len(clients)}, http.StatusOK)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	serviceKey := chi.URLParam(r, "serviceKey")

	info, err := h.services.ClientService.Client(r.Context(), serviceKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

// probeClient sends GET ?path= (default "/") through the named client and
// reports the upstream status.
func (h *Handler) probeClient(w http.ResponseWriter, r *http.Request) {
	serviceKey := chi.URLParam(r, "serviceKey")

	path := r.URL.Query().Get("path")
	if path == "" {
		path = defaultProbePath
	}

	result, err := h.services.ClientService.Probe(r.Context(), serviceKey, path)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: ErrNoRoute.Error()}, http.StatusNotFound)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
