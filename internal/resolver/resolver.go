// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns normalized endpoint definitions into client
// descriptors: it selects one authentication strategy per endpoint and
// assembles the service key, implementation type and positional constructor
// arguments a service registry needs to build the client.
//
// Resolution is a total, deterministic function of its input. The only side
// effect is a warning log entry for ambiguous endpoint definitions.
package resolver

import (
	"fmt"

	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

// DefaultNamespace prefixes every service key when no namespace is configured.
const DefaultNamespace = "nab.web_api_sdk"

// Resolver builds [models.ClientDescriptor] values for one service key
// namespace.
type Resolver struct {
	namespace string
	logger    *logger.Logger
}

// NewResolver creates a Resolver for namespace. An empty namespace falls back
// to [DefaultNamespace].
func NewResolver(namespace string, logger *logger.Logger) *Resolver {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Resolver{namespace: namespace, logger: logger}
}

// Namespace returns the service key prefix used by r.
func (r *Resolver) Namespace() string {
	return r.namespace
}

// Select returns the authentication strategy honored for ep: the first
// enabled block in the order AWS, JWT, Basic, or NoAuth when none is enabled.
func (r *Resolver) Select(ep models.EndpointConfig) models.AuthStrategy {
	return selectStrategy(ep.Auth).auth()
}

// ServiceKey derives "<namespace>.<endpoint>.<tag>_client".
func (r *Resolver) ServiceKey(endpointName string, tag models.StrategyTag) string {
	return fmt.Sprintf("%s.%s.%s_client", r.namespace, endpointName, tag)
}

// Resolve builds the descriptor of one endpoint.
//
// When ep.WrappedBy is set the implementation type is replaced by it and the
// constructor arguments always take the simple shape (base_url, api_key,
// transport), whatever strategy was selected. The service key always carries
// the selected strategy tag.
func (r *Resolver) Resolve(transport models.TransportConfig, ep models.EndpointConfig) models.ClientDescriptor {
	selected := selectStrategy(ep.Auth)
	tag := selected.auth().Tag()

	r.warnAmbiguous(ep, tag)

	descriptor := models.ClientDescriptor{
		ServiceKey:         r.ServiceKey(ep.Name, tag),
		EndpointName:       ep.Name,
		Strategy:           tag,
		ImplementationType: selected.implementation(),
		ConstructorArgs:    selected.args(ep, transport),
	}

	if ep.WrappedBy != "" {
		descriptor.ImplementationType = models.ImplementationType(ep.WrappedBy)
		descriptor.ConstructorArgs = simpleStrategy{}.args(ep, transport)
	}

	return descriptor
}

// ResolveAll resolves every endpoint, in ascending endpoint name order.
func (r *Resolver) ResolveAll(transport models.TransportConfig, endpoints models.Endpoints) []models.ClientDescriptor {
	descriptors := make([]models.ClientDescriptor, 0, len(endpoints))
	for _, name := range endpoints.Names() {
		descriptors = append(descriptors, r.Resolve(transport, endpoints[name]))
	}
	return descriptors
}

func (r *Resolver) warnAmbiguous(ep models.EndpointConfig, selected models.StrategyTag) {
	if r.logger == nil {
		return
	}

	if enabled := ep.Auth.Enabled(); len(enabled) > 1 {
		r.logger.Warn().
			Str("endpoint", ep.Name).
			Stringer("selected", selected).
			Any("ignored", enabled[1:]).
			Msg("several auth blocks are enabled, only the highest priority one is used")
	}

	if ep.WrappedBy != "" && selected != models.StrategySimple {
		r.logger.Warn().
			Str("endpoint", ep.Name).
			Str("wrapped_by", ep.WrappedBy).
			Stringer("strategy", selected).
			Msg("wrapped client receives simple constructor arguments, auth settings are not passed")
	}
}
