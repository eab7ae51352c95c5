package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/internal/utils"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

// getVersion serves GET /api/version/.
func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := models.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(r.Context())}

	if _, err := utils.WriteJSON(w, version, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}
