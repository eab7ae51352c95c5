// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImplementationType names the client type a registry must construct for a
// descriptor. Built-in values are listed below; any other value comes from
// an endpoint's wrapped_by option.
type ImplementationType string

const (
	SimpleClientType        ImplementationType = "SimpleClient"
	JwtClientType           ImplementationType = "JwtClient"
	BasicClientType         ImplementationType = "BasicClient"
	AwsApiGatewayClientType ImplementationType = "AwsApiGatewayClient"
)

// ClientDescriptor is a construction plan for one endpoint client: the key it
// is registered under, the type to instantiate and its positional arguments.
//
// Argument order depends on the strategy:
//
//	simple: base_url, api_key, transport
//	basic:  base_url, username, password, api_key, transport
//	jwt:    base_url, token, api_key, transport
//	aws:    base_url, SignatureDescriptor, CredentialsDescriptor, api_key, transport
//
// A wrapped endpoint always uses the simple argument order. An absent api_key
// is passed as an untyped nil.
type ClientDescriptor struct {
	ServiceKey         string
	EndpointName       string
	Strategy           StrategyTag
	ImplementationType ImplementationType
	ConstructorArgs    []any
}

// Wrapped reports whether the implementation type is not one of the
// built-in client types.
func (d ClientDescriptor) Wrapped() bool {
	switch d.ImplementationType {
	case SimpleClientType, JwtClientType, BasicClientType, AwsApiGatewayClientType:
		return false
	default:
		return true
	}
}

// BaseURL returns the first constructor argument.
func (d ClientDescriptor) BaseURL() string {
	if len(d.ConstructorArgs) == 0 {
		return ""
	}
	baseURL, _ := d.ConstructorArgs[0].(string)
	return baseURL
}

// SignatureDescriptor carries the SigV4 signing scope of an AWS client.
type SignatureDescriptor struct {
	Service string
	Region  string
}

// CredentialsDescriptor carries static AWS credentials.
type CredentialsDescriptor struct {
	AccessKey string
	SecretKey string
}

// ClientInfo is the credential-free view of a descriptor exposed by the
// inspection API.
type ClientInfo struct {
	ServiceKey         string `json:"service_key"`
	Endpoint           string `json:"endpoint"`
	Strategy           string `json:"strategy"`
	ImplementationType string `json:"implementation_type"`
	BaseURL            string `json:"base_endpoint"`
	Wrapped            bool   `json:"wrapped"`
}

// Info builds the credential-free view of d.
func (d ClientDescriptor) Info() ClientInfo {
	return ClientInfo{
		ServiceKey:         d.ServiceKey,
		Endpoint:           d.EndpointName,
		Strategy:           d.Strategy.String(),
		ImplementationType: string(d.ImplementationType),
		BaseURL:            d.BaseURL(),
		Wrapped:            d.Wrapped(),
	}
}
