package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-web-api-sdk/internal/adapter"
	"github.com/MKhiriev/go-web-api-sdk/internal/config"
	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/internal/registry"
	"github.com/MKhiriev/go-web-api-sdk/internal/resolver"
	"github.com/MKhiriev/go-web-api-sdk/internal/schema"
	"github.com/MKhiriev/go-web-api-sdk/internal/utils"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

type clientService struct {
	resolver  *resolver.Resolver
	factories map[models.ImplementationType]registry.Factory

	mu       sync.RWMutex
	registry *registry.Registry

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewClientService creates a ClientService for the configured namespace.
// factories supplies the constructors of wrapped_by implementation types.
func NewClientService(cfg config.App, factories map[models.ImplementationType]registry.Factory, logger *logger.Logger) ClientService {
	return &clientService{
		resolver:  resolver.NewResolver(cfg.Namespace, logger),
		factories: factories,
		traceIDs:  utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *clientService) Load(ctx context.Context, raw map[string]any) (*registry.Registry, error) {
	transport, endpoints, err := schema.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("error normalizing bundle configuration: %w", err)
	}

	reg := registry.New(s.logger)
	for implementationType, factory := range s.factories {
		if err = reg.RegisterFactory(implementationType, factory); err != nil {
			return nil, fmt.Errorf("error registering factory: %w", err)
		}
	}

	for _, desc := range s.resolver.ResolveAll(transport, endpoints) {
		if err = reg.Register(desc); err != nil {
			return nil, fmt.Errorf("error registering client: %w", err)
		}

		s.logger.Info().
			Str("service_key", desc.ServiceKey).
			Str("endpoint", desc.EndpointName).
			Stringer("strategy", desc.Strategy).
			Str("implementation_type", string(desc.ImplementationType)).
			Msg("client registered")
	}

	s.mu.Lock()
	s.registry = reg
	s.mu.Unlock()

	return reg, nil
}

func (s *clientService) Clients(ctx context.Context) []models.ClientInfo {
	reg := s.current()
	if reg == nil {
		return []models.ClientInfo{}
	}

	descriptors := reg.Descriptors()
	clients := make([]models.ClientInfo, 0, len(descriptors))
	for _, desc := range descriptors {
		clients = append(clients, desc.Info())
	}
	return clients
}

func (s *clientService) Client(ctx context.Context, serviceKey string) (models.ClientInfo, error) {
	reg := s.current()
	if reg == nil {
		return models.ClientInfo{}, ErrRegistryNotLoaded
	}

	desc, ok := reg.Descriptor(serviceKey)
	if !ok {
		return models.ClientInfo{}, fmt.Errorf("%w: %s", ErrClientNotFound, serviceKey)
	}
	return desc.Info(), nil
}

func (s *clientService) Probe(ctx context.Context, serviceKey, path string) (models.ProbeResult, error) {
	reg := s.current()
	if reg == nil {
		return models.ProbeResult{}, ErrRegistryNotLoaded
	}

	client, err := registry.Lookup[adapter.APIClient](reg, serviceKey)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return models.ProbeResult{}, fmt.Errorf("%w: %s", ErrClientNotFound, serviceKey)
	case errors.Is(err, registry.ErrTypeMismatch):
		return models.ProbeResult{}, fmt.Errorf("%w: %s", ErrNotAPIClient, serviceKey)
	case err != nil:
		return models.ProbeResult{}, err
	}

	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = s.traceIDs.Generate()
		ctx = utils.WithTraceID(ctx, traceID)
	}

	start := time.Now()
	resp, err := client.Get(ctx, path)
	result := models.ProbeResult{
		ServiceKey: serviceKey,
		Path:       path,
		Duration:   time.Since(start),
		TraceID:    traceID,
	}
	if resp != nil {
		result.StatusCode = resp.StatusCode()
	}
	if err != nil {
		return result, fmt.Errorf("probe %s: %w", serviceKey, err)
	}

	s.logger.Info().
		Str("service_key", serviceKey).
		Str("path", path).
		Int("status", result.StatusCode).
		Dur("duration", result.Duration).
		Str("trace_id", traceID).
		Msg("probe done")

	return result, nil
}

func (s *clientService) current() *registry.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry
}
