package service

import (
	"github.com/MKhiriev/go-web-api-sdk/internal/config"
	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/internal/registry"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

type Services struct {
	ClientService  ClientService
	AppInfoService AppInfoService
}

// NewServices builds every service. factories may be nil when no endpoint
// uses wrapped_by.
func NewServices(cfg config.StructuredConfig, factories map[models.ImplementationType]registry.Factory, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	clients := NewClientValidationService().Wrap(NewClientService(cfg.App, factories, logger))

	return &Services{
		ClientService:  clients,
		AppInfoService: appInfo,
	}, nil
}
