// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry is a small service container for resolved endpoint
// clients.
//
// A [Registry] stores one [models.ClientDescriptor] per service key and
// builds the client on first [Registry.Get] through the [Factory] registered
// for the descriptor's implementation type. The four built-in client types
// are available out of the box; types named by an endpoint's wrapped_by
// option must be added with [Registry.RegisterFactory] before the
// descriptors are registered.
//
//	reg := registry.New(log)
//	if err := reg.Register(desc); err != nil { ... }
//	client, err := registry.Lookup[adapter.APIClient](reg, desc.ServiceKey)
package registry
