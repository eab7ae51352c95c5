// Package http implements the inspection HTTP API of sdkctl.
//
// It exposes the application version and a read-only view of the client
// registry (service key, endpoint, strategy, implementation type and base
// URL, never credentials), plus a probe route that sends one GET request
// through a registered client. Request tracing, access logging and response
// compression are handled by middleware before requests reach the service
// layer.
package http
