// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-web-api-sdk/models"
)

// Top-level keys of the configuration tree.
const (
	KeyTransport = "transport"
	KeyEndpoints = "endpoints"

	// KeyGuzzleConfiguration is accepted in place of KeyTransport.
	KeyGuzzleConfiguration = "guzzle_configuration"
)

// Endpoint option keys.
const (
	keyName         = "name"
	keyBaseEndpoint = "base_endpoint"
	keyAPIKey       = "api_key"
	keyWrappedBy    = "wrapped_by"
	keyJWT          = "jwt"
	keyBasic        = "basic"
	keyAWS          = "aws"
	keyEnabled      = "enabled"
	keyToken        = "token"
	keyUsername     = "username"
	keyPassword     = "password"
	keyAWSRegion    = "aws_region"
	keyAWSService   = "aws_service"
	keyCredentials  = "credentials"
	keyAccessKey    = "access_key"
	keySecretKey    = "secret_key"
)

// Normalize validates the raw configuration tree and converts it into the
// shared transport options and the typed endpoint set.
//
// Defaults are filled in for every recognized option that is absent.
// Unrecognized transport options are passed through; unrecognized endpoint
// options are rejected. Every problem found is reported: the returned error
// joins one [*ValidationError] per problem and matches [ErrValidation].
// On error neither the transport nor the endpoints are returned.
//
// raw is never modified.
func Normalize(raw map[string]any) (models.TransportConfig, models.Endpoints, error) {
	n := &normalizer{}

	for _, key := range sortedKeys(raw) {
		switch key {
		case KeyTransport, KeyGuzzleConfiguration, KeyEndpoints:
		default:
			n.fail(key, reasonUnrecognized)
		}
	}

	transportRaw, hasTransport := raw[KeyTransport]
	if guzzle, ok := raw[KeyGuzzleConfiguration]; ok {
		if hasTransport {
			n.fail(KeyGuzzleConfiguration, reasonConflict+" "+strconv.Quote(KeyTransport))
		} else {
			transportRaw = guzzle
		}
	}

	transport := n.transport(transportRaw)
	endpoints := n.endpoints(raw[KeyEndpoints])

	if len(n.errs) > 0 {
		return nil, nil, errors.Join(n.errs...)
	}

	return transport, endpoints, nil
}

// normalizer accumulates validation errors across a single Normalize call.
type normalizer struct {
	errs []error
}

func (n *normalizer) fail(path, reason string) {
	n.errs = append(n.errs, &ValidationError{Path: path, Reason: reason})
}

func (n *normalizer) transport(v any) models.TransportConfig {
	transport := models.DefaultTransportConfig()
	if v == nil {
		return transport
	}

	options, ok := toMapping(v)
	if !ok {
		n.fail(KeyTransport, reasonNotMapping)
		return transport
	}

	maps.Copy(transport, options)
	return transport
}

func (n *normalizer) endpoints(v any) models.Endpoints {
	endpoints := make(models.Endpoints)
	seen := 0
	// names claimed in the list form, valid entries or not
	names := make(map[string]struct{})

	switch raw := v.(type) {
	case nil:
	case []any:
		// attribute-as-key form: every entry names itself
		for i, item := range raw {
			seen++
			path := fmt.Sprintf("%s[%d]", KeyEndpoints, i)
			options, ok := toMapping(item)
			if !ok {
				n.fail(path, reasonNotMapping)
				continue
			}

			name, ok := n.requiredString(path, options, keyName)
			if !ok {
				continue
			}
			if _, exists := names[name]; exists {
				n.fail(path+"."+keyName, reasonDuplicate+" "+strconv.Quote(name))
				continue
			}
			names[name] = struct{}{}

			options = maps.Clone(options)
			delete(options, keyName)
			if endpoint, ok := n.endpoint(KeyEndpoints+"."+name, name, options); ok {
				endpoints[name] = endpoint
			}
		}
	default:
		mapping, ok := toMapping(raw)
		if !ok {
			n.fail(KeyEndpoints, reasonNotMapping)
			return endpoints
		}
		for _, name := range sortedKeys(mapping) {
			seen++
			path := KeyEndpoints + "." + name
			options, ok := toMapping(mapping[name])
			if !ok {
				n.fail(path, reasonNotMapping)
				continue
			}
			if endpoint, ok := n.endpoint(path, name, options); ok {
				endpoints[name] = endpoint
			}
		}
	}

	if seen == 0 {
		n.fail(KeyEndpoints, reasonNoEndpoints)
	}

	return endpoints
}

func (n *normalizer) endpoint(path, name string, options map[string]any) (models.EndpointConfig, bool) {
	errsBefore := len(n.errs)

	n.checkKeys(path, options, keyBaseEndpoint, keyAPIKey, keyWrappedBy, keyJWT, keyBasic, keyAWS)

	endpoint := models.EndpointConfig{Name: name}
	endpoint.BaseURL, _ = n.requiredString(path, options, keyBaseEndpoint)

	if apiKey, ok := n.optionalString(path, options, keyAPIKey); ok {
		endpoint.APIKey = &apiKey
	}
	endpoint.WrappedBy, _ = n.optionalString(path, options, keyWrappedBy)

	endpoint.Auth.JWT = n.jwtBlock(path+"."+keyJWT, options)
	endpoint.Auth.Basic = n.basicBlock(path+"."+keyBasic, options)
	endpoint.Auth.AWS = n.awsBlock(path+"."+keyAWS, options)

	return endpoint, len(n.errs) == errsBefore
}

func (n *normalizer) jwtBlock(path string, endpoint map[string]any) *models.JWTAuth {
	options, enabled := n.authBlock(path, endpoint, keyJWT)
	if !enabled {
		return nil
	}

	n.checkKeys(path, options, keyToken)
	token, _ := n.requiredString(path, options, keyToken)

	return &models.JWTAuth{Token: token}
}

func (n *normalizer) basicBlock(path string, endpoint map[string]any) *models.BasicAuth {
	options, enabled := n.authBlock(path, endpoint, keyBasic)
	if !enabled {
		return nil
	}

	n.checkKeys(path, options, keyUsername, keyPassword)
	username, _ := n.requiredString(path, options, keyUsername)
	password, _ := n.requiredString(path, options, keyPassword)

	return &models.BasicAuth{Username: username, Password: password}
}

func (n *normalizer) awsBlock(path string, endpoint map[string]any) *models.AWSAuth {
	options, enabled := n.authBlock(path, endpoint, keyAWS)
	if !enabled {
		return nil
	}

	n.checkKeys(path, options, keyAWSRegion, keyAWSService, keyCredentials)

	auth := &models.AWSAuth{Region: models.DefaultAWSRegion, Service: models.DefaultAWSService}
	if region, ok := n.optionalString(path, options, keyAWSRegion); ok && region != "" {
		auth.Region = region
	}
	if service, ok := n.optionalString(path, options, keyAWSService); ok && service != "" {
		auth.Service = service
	}

	credsPath := path + "." + keyCredentials
	rawCreds, ok := options[keyCredentials]
	if !ok || rawCreds == nil {
		n.fail(credsPath, reasonRequired)
		return auth
	}
	creds, ok := toMapping(rawCreds)
	if !ok {
		n.fail(credsPath, reasonNotMapping)
		return auth
	}

	n.checkKeys(credsPath, creds, keyAccessKey, keySecretKey)
	auth.AccessKey, _ = n.requiredString(credsPath, creds, keyAccessKey)
	auth.SecretKey, _ = n.requiredString(credsPath, creds, keySecretKey)

	return auth
}

// authBlock applies "can be enabled" semantics to endpoint[key]: an absent
// block is disabled, a present one (even empty or null) is enabled unless it
// says enabled: false. The returned options never contain the enabled flag.
func (n *normalizer) authBlock(path string, endpoint map[string]any, key string) (map[string]any, bool) {
	v, present := endpoint[key]
	if !present {
		return nil, false
	}

	switch value := v.(type) {
	case nil:
		return map[string]any{}, true
	case bool:
		return map[string]any{}, value
	}

	options, ok := toMapping(v)
	if !ok {
		n.fail(path, reasonNotMapping)
		return nil, false
	}

	options = maps.Clone(options)
	rawEnabled, hasFlag := options[keyEnabled]
	delete(options, keyEnabled)
	if !hasFlag {
		return options, true
	}

	enabled, ok := rawEnabled.(bool)
	if !ok {
		n.fail(path+"."+keyEnabled, reasonNotBool)
		return nil, false
	}

	return options, enabled
}

func (n *normalizer) checkKeys(path string, options map[string]any, allowed ...string) {
	for _, key := range sortedKeys(options) {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			n.fail(path+"."+key, reasonUnrecognized)
		}
	}
}

// requiredString reads a mandatory, non-empty scalar option.
func (n *normalizer) requiredString(path string, options map[string]any, key string) (string, bool) {
	v, ok := options[key]
	if !ok || v == nil {
		n.fail(path+"."+key, reasonRequired)
		return "", false
	}

	s, ok := scalarString(v)
	if !ok {
		n.fail(path+"."+key, reasonNotScalar)
		return "", false
	}
	if s == "" {
		n.fail(path+"."+key, reasonEmpty)
		return "", false
	}

	return s, true
}

// optionalString reads a scalar option. The boolean result is false when the
// option is absent, null or invalid.
func (n *normalizer) optionalString(path string, options map[string]any, key string) (string, bool) {
	v, ok := options[key]
	if !ok || v == nil {
		return "", false
	}

	s, ok := scalarString(v)
	if !ok {
		n.fail(path+"."+key, reasonNotScalar)
		return "", false
	}

	return s, true
}

func scalarString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, true
	case bool:
		return strconv.FormatBool(value), true
	case int:
		return strconv.Itoa(value), true
	case int64:
		return strconv.FormatInt(value, 10), true
	case uint64:
		return strconv.FormatUint(value, 10), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	default:
		return "", false
	}
}

// toMapping accepts the mapping shapes produced by the JSON and YAML decoders.
func toMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case models.TransportConfig:
		return m, true
	case map[any]any:
		converted := make(map[string]any, len(m))
		for key, value := range m {
			converted[fmt.Sprint(key)] = value
		}
		return converted, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
