package adapter

import (
	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

// SimpleClient sends unauthenticated requests, optionally carrying an API key.
//
// It is also the base for wrapping clients: a wrapped_by implementation
// receives the same constructor arguments and usually embeds a SimpleClient.
type SimpleClient struct {
	*baseClient
}

// NewSimpleClient builds a [SimpleClient]. apiKey may be empty.
func NewSimpleClient(baseURL, apiKey string, transport models.TransportConfig, log *logger.Logger) (*SimpleClient, error) {
	base, err := newBaseClient(baseURL, apiKey, transport, models.StrategySimple, log)
	if err != nil {
		return nil, err
	}

	return &SimpleClient{baseClient: base}, nil
}
