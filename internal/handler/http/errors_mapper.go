package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-api-sdk/internal/adapter"
	"github.com/MKhiriev/go-web-api-sdk/internal/registry"
	"github.com/MKhiriev/go-web-api-sdk/internal/schema"
	"github.com/MKhiriev/go-web-api-sdk/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrClientNotFound:          http.StatusNotFound,
	service.ErrRegistryNotLoaded:       http.StatusServiceUnavailable,
	service.ErrNotAPIClient:            http.StatusConflict,
	service.ErrValidationNoServiceKey:  http.StatusBadRequest,
	service.ErrValidationInvalidPath:   http.StatusBadRequest,
	service.ErrValidationNoBundleGiven: http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	schema.ErrValidation:              http.StatusUnprocessableEntity,
	registry.ErrNotFound:              http.StatusNotFound,
	registry.ErrUnknownImplementation: http.StatusUnprocessableEntity,
	registry.ErrInvalidArguments:      http.StatusUnprocessableEntity,

	adapter.ErrEmptyBaseURL:     http.StatusUnprocessableEntity,
	adapter.ErrInvalidTransport: http.StatusUnprocessableEntity,
	adapter.ErrSigning:          http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadGateway
}
