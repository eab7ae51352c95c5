package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-web-api-sdk/internal/registry"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

// ClientValidationService rejects malformed requests before they reach the
// wrapped ClientService.
type ClientValidationService struct {
	inner ClientService
}

func NewClientValidationService() ClientServiceWrapper {
	return &ClientValidationService{}
}

func (v *ClientValidationService) Load(ctx context.Context, raw map[string]any) (*registry.Registry, error) {
	if raw == nil {
		return nil, ErrValidationNoBundleGiven
	}
	return v.inner.Load(ctx, raw)
}

func (v *ClientValidationService) Clients(ctx context.Context) []models.ClientInfo {
	return v.inner.Clients(ctx)
}

func (v *ClientValidationService) Client(ctx context.Context, serviceKey string) (models.ClientInfo, error) {
	if strings.TrimSpace(serviceKey) == "" {
		return models.ClientInfo{}, ErrValidationNoServiceKey
	}
	return v.inner.Client(ctx, serviceKey)
}

func (v *ClientValidationService) Probe(ctx context.Context, serviceKey, path string) (models.ProbeResult, error) {
	if strings.TrimSpace(serviceKey) == "" {
		return models.ProbeResult{}, ErrValidationNoServiceKey
	}
	if !strings.HasPrefix(path, "/") {
		return models.ProbeResult{}, fmt.Errorf("%w: %q", ErrValidationInvalidPath, path)
	}
	return v.inner.Probe(ctx, serviceKey, path)
}

func (v *ClientValidationService) Wrap(inner ClientService) ClientService {
	v.inner = inner
	return v
}
