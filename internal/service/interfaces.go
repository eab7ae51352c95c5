package service

import (
	"context"

	"github.com/MKhiriev/go-web-api-sdk/internal/registry"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientService loads the bundle configuration into a client registry and
// exposes the registered clients.
type ClientService interface {
	// Load normalizes raw, resolves every endpoint and registers the
	// resulting descriptors in a new registry, which replaces the current one.
	Load(ctx context.Context, raw map[string]any) (*registry.Registry, error)

	// Clients lists the credential-free view of every registered client,
	// sorted by service key.
	Clients(ctx context.Context) []models.ClientInfo

	// Client returns one registered client, or ErrClientNotFound.
	Client(ctx context.Context, serviceKey string) (models.ClientInfo, error)

	// Probe sends GET path through the client registered under serviceKey.
	Probe(ctx context.Context, serviceKey, path string) (models.ProbeResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ClientServiceWrapper defines middleware composition for ClientService.
// Implementations wrap an existing ClientService to add behavior such as
// validating.
type ClientServiceWrapper interface {
	Wrap(ClientService) ClientService // returns a decorated ClientService applying additional behavior
}
