package adapter

import (
	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

// BasicClient authenticates every request with HTTP Basic credentials.
type BasicClient struct {
	*baseClient

	username string
}

// NewBasicClient builds a [BasicClient].
func NewBasicClient(baseURL, username, password, apiKey string, transport models.TransportConfig, log *logger.Logger) (*BasicClient, error) {
	base, err := newBaseClient(baseURL, apiKey, transport, models.StrategyBasic, log)
	if err != nil {
		return nil, err
	}

	base.client.SetBasicAuth(username, password)

	return &BasicClient{baseClient: base, username: username}, nil
}

// Username returns the Basic auth user name.
func (c *BasicClient) Username() string {
	return c.username
}
