// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"strconv"
)

// Recognized transport option names. Any other key found in a transport
// block is kept as-is and handed to the HTTP client untouched.
const (
	TransportHTTPErrors     = "http_errors"
	TransportDecodeContent  = "decode_content"
	TransportVerify         = "verify"
	TransportCookies        = "cookies"
	TransportAllowRedirects = "allow_redirects"
	TransportCert           = "cert"
	TransportConnectTimeout = "connect_timeout"
	TransportDebug          = "debug"
	TransportHeaders        = "headers"
	TransportSSLKey         = "ssl_key"
	TransportStream         = "stream"
	TransportTimeout        = "timeout"
)

// TransportConfig is the HTTP transport option set shared by every client
// built from one configuration load.
//
// It is created once by the schema normalizer and is shared by reference
// between all endpoints, so it must be treated as read-only. Use [TransportConfig.Clone]
// when a modified copy is needed.
type TransportConfig map[string]any

// DefaultTransportConfig returns a fresh TransportConfig holding the default
// value of every recognized option.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		TransportHTTPErrors:     false,
		TransportDecodeContent:  true,
		TransportVerify:         true,
		TransportCookies:        false,
		TransportAllowRedirects: true,
		TransportCert:           nil,
		TransportConnectTimeout: 5.0,
		TransportDebug:          false,
		TransportHeaders:        map[string]any{},
		TransportSSLKey:         nil,
		TransportStream:         false,
		TransportTimeout:        5.0,
	}
}

// Clone returns a shallow copy of the option set.
func (t TransportConfig) Clone() TransportConfig {
	if t == nil {
		return nil
	}
	return maps.Clone(t)
}

// Bool reads key as a boolean. Strings such as "true" or "0" are accepted;
// anything else yields def.
func (t TransportConfig) Bool(key string, def bool) bool {
	switch v := t[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return def
	}
}

// Float reads key as a number of seconds (or any float value).
func (t TransportConfig) Float(key string, def float64) float64 {
	switch v := t[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

// String reads key as a string. A nil or missing value yields "".
func (t TransportConfig) String(key string) string {
	if v, ok := t[key].(string); ok {
		return v
	}
	return ""
}

// Headers returns the configured default request headers.
func (t TransportConfig) Headers() map[string]string {
	headers := make(map[string]string)
	switch raw := t[TransportHeaders].(type) {
	case map[string]any:
		for name, value := range raw {
			headers[name] = scalarToString(value)
		}
	case map[string]string:
		maps.Copy(headers, raw)
	}
	return headers
}

func scalarToString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}
