package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies outgoing API client requests.
const UserAgent = "go-web-api-sdk"

// HTTPClient is the resty client every strategy client is built on. Each
// instance owns its transport, so per-endpoint options never leak between
// clients.
type HTTPClient struct {
	*resty.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		Client: resty.New().SetHeader("User-Agent", UserAgent),
	}
}
