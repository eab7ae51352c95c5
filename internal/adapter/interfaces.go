// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the API clients built for configured endpoints.
//
// Every client implements [APIClient] on top of a resty HTTP client and
// differs only in how requests are authenticated: [SimpleClient] sends none,
// [JwtClient] a bearer token, [BasicClient] HTTP Basic credentials and
// [AwsApiGatewayClient] an AWS Signature Version 4.
//
// The shared transport options (see models.TransportConfig) are applied to
// each client at construction time. When http_errors is enabled, 4xx/5xx
// responses are mapped to the sentinel errors in errors.go so callers can use
// [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-web-api-sdk/models"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient is the common surface of every endpoint client.
//
// Paths are resolved against BaseURL by the underlying HTTP client. The
// returned response is never nil when err is nil.
type APIClient interface {
	// BaseURL returns the base URL exactly as configured.
	BaseURL() string

	// APIKey returns the API gateway key, or "" when none is configured.
	APIKey() string

	// Strategy returns the authentication strategy the client applies.
	Strategy() models.StrategyTag

	// Do sends a request with an optional body (nil for none).
	Do(ctx context.Context, method, path string, body any) (*resty.Response, error)

	Get(ctx context.Context, path string) (*resty.Response, error)
	Post(ctx context.Context, path string, body any) (*resty.Response, error)
	Put(ctx context.Context, path string, body any) (*resty.Response, error)
	Patch(ctx context.Context, path string, body any) (*resty.Response, error)
	Delete(ctx context.Context, path string) (*resty.Response, error)
}
