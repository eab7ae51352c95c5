package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/internal/utils"
	"github.com/MKhiriev/go-web-api-sdk/models"
	"github.com/go-resty/resty/v2"
)

// Header names set on every outgoing request.
const (
	APIKeyHeader  = "x-api-key"
	TraceIDHeader = "X-Trace-ID"
)

// baseClient holds what every strategy client shares: the configured resty
// client, the API key and error mapping policy.
type baseClient struct {
	client *utils.HTTPClient

	baseURL    string
	apiKey     string
	strategy   models.StrategyTag
	httpErrors bool

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func newBaseClient(baseURL, apiKey string, transport models.TransportConfig, strategy models.StrategyTag, log *logger.Logger) (*baseClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrEmptyBaseURL
	}
	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient()
	if err := applyTransport(client.Client, transport); err != nil {
		return nil, fmt.Errorf("error applying transport options: %w", err)
	}

	client.SetBaseURL(baseURL)
	if apiKey != "" {
		client.SetHeader(APIKeyHeader, apiKey)
	}

	return &baseClient{
		client:     client,
		baseURL:    baseURL,
		apiKey:     apiKey,
		strategy:   strategy,
		httpErrors: transport.Bool(models.TransportHTTPErrors, false),
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     log.WithField("strategy", strategy.String()),
	}, nil
}

// BaseURL implements [APIClient].
func (c *baseClient) BaseURL() string {
	return c.baseURL
}

// APIKey implements [APIClient].
func (c *baseClient) APIKey() string {
	return c.apiKey
}

// Strategy implements [APIClient].
func (c *baseClient) Strategy() models.StrategyTag {
	return c.strategy
}

// R returns a new request bound to ctx with the trace ID header set. The
// trace ID is taken from ctx, or generated when ctx has none.
func (c *baseClient) R(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = c.traceIDs.Generate()
	}

	return c.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
}

// Do implements [APIClient].
func (c *baseClient) Do(ctx context.Context, method, path string, body any) (*resty.Response, error) {
	req := c.R(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return resp, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api request done")

	if c.httpErrors {
		if err = mapHTTPError(resp); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

// Get implements [APIClient].
func (c *baseClient) Get(ctx context.Context, path string) (*resty.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post implements [APIClient].
func (c *baseClient) Post(ctx context.Context, path string, body any) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Put implements [APIClient].
func (c *baseClient) Put(ctx context.Context, path string, body any) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

// Patch implements [APIClient].
func (c *baseClient) Patch(ctx context.Context, path string, body any) (*resty.Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

// Delete implements [APIClient].
func (c *baseClient) Delete(ctx context.Context, path string) (*resty.Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}
